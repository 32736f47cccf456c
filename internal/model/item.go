package model

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	StatusAvailable = "Available"
	StatusSold      = "Sold"
)

// Item is a single listing. Price is kept as the text the seller typed.
type Item struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         string
	SellerContact string
	Category      string
	sold          bool
}

func NewItem(name, description, price, sellerContact, category string) *Item {
	return &Item{
		ID:            uuid.New(),
		Name:          name,
		Description:   description,
		Price:         price,
		SellerContact: sellerContact,
		Category:      category,
	}
}

func (i Item) IsAvailable() bool {
	return !i.sold
}

// MarkAsSold is one-way; there is no way back to available.
func (i *Item) MarkAsSold() {
	i.sold = true
}

func (i Item) Status() string {
	if i.sold {
		return StatusSold
	}
	return StatusAvailable
}

func (i Item) String() string {
	return fmt.Sprintf("%s - %s - $%s - Contact: %s - Category: %s (%s)",
		i.Name, i.Description, i.Price, i.SellerContact, i.Category, i.Status())
}
