package service

import (
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/shinyyama/forsale/internal/model"
	"github.com/shinyyama/forsale/internal/repository"
	"golang.org/x/text/cases"
)

// Marketplace owns every posted item. Items leave it only as copies.
type Marketplace struct {
	repo   repository.ItemRepository
	logger *slog.Logger
}

// CategoryGroup holds every item of one category, sold ones included.
type CategoryGroup struct {
	Category string
	Items    []model.Item
}

// Available returns the members that are still for sale.
func (g CategoryGroup) Available() []model.Item {
	out := make([]model.Item, 0, len(g.Items))
	for _, item := range g.Items {
		if item.IsAvailable() {
			out = append(out, item)
		}
	}
	return out
}

func NewMarketplace(repo repository.ItemRepository, logger *slog.Logger) *Marketplace {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Marketplace{repo: repo, logger: logger}
}

// AddItem stores a copy of item; later changes through the caller's pointer
// do not reach the marketplace. A nil item is ignored.
func (m *Marketplace) AddItem(item *model.Item) {
	if item == nil {
		return
	}
	stored := *item
	m.repo.Create(&stored)
	m.logger.Debug("item posted",
		slog.String("item_id", item.ID.String()),
		slog.String("category", item.Category),
		slog.Int("position", m.repo.Count()),
	)
}

// Post builds a new item from the given fields and adds it.
func (m *Marketplace) Post(name, description, price, sellerContact, category string) model.Item {
	item := model.NewItem(name, description, price, sellerContact, category)
	m.AddItem(item)
	return *item
}

func (m *Marketplace) Len() int {
	return m.repo.Count()
}

// ListAvailable yields (position, item) for every item still for sale. The
// position is 1-based over the whole collection, sold items included, so it
// matches the number a buyer types when purchasing.
func (m *Marketplace) ListAvailable() iter.Seq2[int, model.Item] {
	return func(yield func(int, model.Item) bool) {
		for i, item := range m.repo.List() {
			if !item.IsAvailable() {
				continue
			}
			if !yield(i+1, *item) {
				return
			}
		}
	}
}

// ListByCategory groups all items by category, in order of first appearance.
func (m *Marketplace) ListByCategory() []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, item := range m.repo.List() {
		pos, ok := index[item.Category]
		if !ok {
			pos = len(groups)
			index[item.Category] = pos
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[pos].Items = append(groups[pos].Items, *item)
	}
	return groups
}

// Search matches keyword against name and description, ignoring case.
// Sold items are part of the result.
func (m *Marketplace) Search(keyword string) []model.Item {
	fold := cases.Fold()
	kw := fold.String(keyword)
	var out []model.Item
	for _, item := range m.repo.List() {
		if strings.Contains(fold.String(item.Name), kw) || strings.Contains(fold.String(item.Description), kw) {
			out = append(out, *item)
		}
	}
	m.logger.Debug("search", slog.String("keyword", keyword), slog.Int("matches", len(out)))
	return out
}

// Purchase sells the item at the 0-based index.
func (m *Marketplace) Purchase(index int) PurchaseResult {
	item, err := m.repo.FindByIndex(index)
	if err != nil {
		m.logger.Info("purchase rejected", slog.Int("index", index), slog.String("outcome", PurchaseOutOfRange.String()))
		return PurchaseResult{Outcome: PurchaseOutOfRange}
	}
	if !item.IsAvailable() {
		m.logger.Info("purchase rejected",
			slog.String("item_id", item.ID.String()),
			slog.String("outcome", PurchaseAlreadySold.String()),
		)
		return PurchaseResult{Outcome: PurchaseAlreadySold, Name: item.Name}
	}
	item.MarkAsSold()
	m.logger.Info("item purchased", slog.String("item_id", item.ID.String()), slog.String("name", item.Name))
	return PurchaseResult{Outcome: PurchaseSucceeded, Name: item.Name}
}
