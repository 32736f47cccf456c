// Package catalog reads a TOML file of listings to post when the app starts.
// The file is only ever read.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shinyyama/forsale/internal/model"
)

var ErrEmptyPath = errors.New("catalog path is empty")

type Listing struct {
	Name          string `toml:"name"`
	Description   string `toml:"description"`
	Price         string `toml:"price"`
	SellerContact string `toml:"seller_contact"`
	Category      string `toml:"category"`
}

type file struct {
	Listings []Listing `toml:"listing"`
}

// Poster is what Seed posts into.
type Poster interface {
	Post(name, description, price, sellerContact, category string) model.Item
}

func Load(path string) ([]Listing, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return f.Listings, nil
}

// Parse is Load for an in-memory document.
func Parse(doc string) ([]Listing, error) {
	var f file
	md, err := toml.Decode(doc, &f)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return f.Listings, nil
}

// checkUndecoded rejects misspelled keys instead of silently dropping them.
func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		keys = append(keys, k.String())
	}
	return fmt.Errorf("unknown keys %s", strings.Join(keys, ", "))
}

// Seed posts listings in order and returns how many were posted.
func Seed(p Poster, listings []Listing) int {
	for _, l := range listings {
		p.Post(l.Name, l.Description, l.Price, l.SellerContact, l.Category)
	}
	return len(listings)
}
