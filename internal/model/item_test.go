package model

import "testing"

func TestNewItemIsAvailable(t *testing.T) {
	item := NewItem("", "", "", "", "")
	if !item.IsAvailable() {
		t.Fatalf("new item should be available")
	}
	if item.Status() != StatusAvailable {
		t.Fatalf("status=%q want %q", item.Status(), StatusAvailable)
	}
}

func TestNewItemAssignsDistinctIDs(t *testing.T) {
	a := NewItem("Bike", "Red mountain bike", "150", "a@x.com", "Vehicles")
	b := NewItem("Bike", "Red mountain bike", "150", "a@x.com", "Vehicles")
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both %s", a.ID)
	}
}

func TestMarkAsSoldIsIdempotent(t *testing.T) {
	item := NewItem("Lamp", "Desk lamp", "20", "b@x.com", "Furniture")
	item.MarkAsSold()
	item.MarkAsSold()
	if item.IsAvailable() {
		t.Fatalf("item should stay sold")
	}
	if item.Status() != StatusSold {
		t.Fatalf("status=%q want %q", item.Status(), StatusSold)
	}
}

func TestItemString(t *testing.T) {
	tests := []struct {
		name string
		sold bool
		want string
	}{
		{"available", false, "Bike - Red mountain bike - $150 - Contact: a@x.com - Category: Vehicles (Available)"},
		{"sold", true, "Bike - Red mountain bike - $150 - Contact: a@x.com - Category: Vehicles (Sold)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewItem("Bike", "Red mountain bike", "150", "a@x.com", "Vehicles")
			if tt.sold {
				item.MarkAsSold()
			}
			if got := item.String(); got != tt.want {
				t.Fatalf("got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestPriceKeptVerbatim(t *testing.T) {
	item := NewItem("Chair", "Oak", "about 30 bucks", "c@x.com", "Furniture")
	if item.Price != "about 30 bucks" {
		t.Fatalf("price=%q", item.Price)
	}
}
