// Package shell is the interactive text menu in front of the marketplace.
//
// Buyers see 1-based positions; the marketplace takes 0-based indexes. The
// conversion, and parsing the typed number, happen here and nowhere else.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/shinyyama/forsale/internal/model"
	"github.com/shinyyama/forsale/internal/service"
)

const menu = `
Welcome to the Forsale App!
1. Post an Item
2. View Items
3. View Items by Category
4. Search for an Item
5. Purchase an Item
6. Exit
`

// Market is the part of the marketplace the menu drives.
type Market interface {
	Post(name, description, price, sellerContact, category string) model.Item
	ListAvailable() iter.Seq2[int, model.Item]
	ListByCategory() []service.CategoryGroup
	Search(keyword string) []model.Item
	Purchase(index int) service.PurchaseResult
}

type Shell struct {
	market Market
	in     *bufio.Scanner
	lines  chan line
	once   sync.Once
	out    io.Writer
	logger *slog.Logger
}

type line struct {
	text string
	err  error
}

// errInputClosed ends the loop when stdin runs out mid-command.
var errInputClosed = errors.New("input closed")

func New(market Market, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	return &Shell{market: market, in: sc, lines: make(chan line, 1), out: out, logger: logger}
}

// read feeds input lines to prompt so a blocked read never holds up
// cancellation. It ends with one line carrying the terminal error.
func (s *Shell) read() {
	for s.in.Scan() {
		s.lines <- line{text: s.in.Text()}
	}
	err := errInputClosed
	if scanErr := s.in.Err(); scanErr != nil {
		err = fmt.Errorf("read input: %w", scanErr)
	}
	s.lines <- line{err: err}
	close(s.lines)
}

// Run shows the menu until the user exits, input ends, or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printf("%s\n", menu)
		choice, err := s.prompt(ctx, "Enter your choice: ")
		if err != nil {
			return s.closed(err)
		}
		switch strings.TrimSpace(choice) {
		case "1":
			err = s.post(ctx)
		case "2":
			s.viewItems()
		case "3":
			s.viewByCategory()
		case "4":
			err = s.search(ctx)
		case "5":
			err = s.purchase(ctx)
		case "6":
			s.printf("\nThank you for using the Forsale App. Goodbye!\n")
			return nil
		default:
			s.printf("\nInvalid choice. Please try again.\n")
		}
		if err != nil {
			return s.closed(err)
		}
	}
}

func (s *Shell) post(ctx context.Context) error {
	var fields [5]string
	prompts := [5]string{
		"Enter the item name: ",
		"Enter the item description: ",
		"Enter the item price: ",
		"Enter your contact information: ",
		"Enter the item category: ",
	}
	for i, p := range prompts {
		v, err := s.prompt(ctx, p)
		if err != nil {
			return err
		}
		fields[i] = v
	}
	s.market.Post(fields[0], fields[1], fields[2], fields[3], fields[4])
	s.printf("\nItem posted successfully!\n")
	return nil
}

func (s *Shell) viewItems() {
	s.printf("\nAvailable Items:\n")
	n := 0
	for pos, item := range s.market.ListAvailable() {
		s.printf("%d. %s\n", pos, item)
		n++
	}
	if n == 0 {
		s.printf("No items available.\n")
	}
	s.printf("\n")
}

func (s *Shell) viewByCategory() {
	s.printf("\nItems by Category:\n")
	groups := s.market.ListByCategory()
	if len(groups) == 0 {
		s.printf("No items available.\n")
	}
	for _, g := range groups {
		s.printf("\nCategory: %s\n", g.Category)
		for _, item := range g.Available() {
			s.printf("  - %s\n", item)
		}
	}
	s.printf("\n")
}

func (s *Shell) search(ctx context.Context) error {
	keyword, err := s.prompt(ctx, "Enter a keyword to search: ")
	if err != nil {
		return err
	}
	s.printf("\nSearch Results for '%s':\n", keyword)
	results := s.market.Search(keyword)
	if len(results) == 0 {
		s.printf("No matching items found.\n")
	}
	for _, item := range results {
		s.printf("%s\n", item)
	}
	s.printf("\n")
	return nil
}

func (s *Shell) purchase(ctx context.Context) error {
	s.viewItems()
	raw, err := s.prompt(ctx, "Enter the item number to purchase: ")
	if err != nil {
		return err
	}
	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		s.printf("\nInvalid input. Please enter a number.\n")
		return nil
	}
	res := s.market.Purchase(number - 1)
	switch res.Outcome {
	case service.PurchaseSucceeded:
		s.printf("\nYou have purchased: %s\n", res.Name)
	case service.PurchaseAlreadySold:
		s.printf("\nThis item is already sold.\n")
	default:
		s.printf("\nInvalid item number.\n")
	}
	return nil
}

// prompt waits for the next line or for ctx to end, whichever comes first.
func (s *Shell) prompt(ctx context.Context, text string) (string, error) {
	s.once.Do(func() { go s.read() })
	s.printf("%s", text)
	select {
	case <-ctx.Done():
		s.printf("\n")
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", errInputClosed
		}
		return l.text, l.err
	}
}

// closed turns end of input into a normal exit.
func (s *Shell) closed(err error) error {
	if errors.Is(err, errInputClosed) {
		s.printf("\n")
		s.logger.Debug("input closed, leaving menu")
		return nil
	}
	return err
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
