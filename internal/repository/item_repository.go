package repository

import (
	"errors"

	"github.com/shinyyama/forsale/internal/model"
)

var ErrNotFound = errors.New("not found")

// ItemRepository is an append-only, insertion-ordered item store.
type ItemRepository interface {
	Create(item *model.Item)
	FindByIndex(index int) (*model.Item, error)
	List() []*model.Item
	Count() int
}

type itemRepository struct {
	items []*model.Item
}

func NewItemRepository() ItemRepository {
	return &itemRepository{}
}

func (r *itemRepository) Create(item *model.Item) {
	r.items = append(r.items, item)
}

// FindByIndex looks up a 0-based position.
func (r *itemRepository) FindByIndex(index int) (*model.Item, error) {
	if index < 0 || index >= len(r.items) {
		return nil, ErrNotFound
	}
	return r.items[index], nil
}

// List returns the backing items in insertion order. Callers must not append to it.
func (r *itemRepository) List() []*model.Item {
	return r.items
}

func (r *itemRepository) Count() int {
	return len(r.items)
}
