// Package catalog holds the static list of fines and add-on services that staff can
// attach to an order. The catalog is loaded once at start-up and never mutated.
package catalog

import (
	"paperwork/internal/core/domain/model/kernel"
)

// ItemID identifies a catalog entry. Ids are stable strings so that selections stored
// with an order keep their meaning across catalog revisions.
type ItemID string

// Category separates regulatory fines from optional add-on services.
type Category string

const (
	CategoryFine         Category = "fine"
	CategoryAddonService Category = "addon-service"
)

// Item is one line of the catalog.
//
// Flags:
//   - Manual: the amount is typed by staff when the item is selected; Amount is unused
//   - Automatic: the fee engine adds and removes the item on its own
//   - VisibleCharge: the fine's Amount is billed as its own line
//   - LostReport: the fine triggers the lost-report service line instead of a surcharge
type Item struct {
	ID            ItemID
	Name          string
	Category      Category
	Amount        kernel.Money
	Manual        bool
	Automatic     bool
	VisibleCharge bool
	LostReport    bool
}

// IsFine reports whether the item is a regulatory fine.
func (i Item) IsFine() bool {
	return i.Category == CategoryFine
}

// IsAddon reports whether the item is an add-on service.
func (i Item) IsAddon() bool {
	return i.Category == CategoryAddonService
}

// Catalog is a read-only, ordered lookup of items.
type Catalog struct {
	items []Item
	byID  map[ItemID]Item
}

// New builds a catalog from items, keeping their order. A later duplicate id
// replaces the earlier entry in lookups but both stay in Items.
func New(items ...Item) Catalog {
	c := Catalog{
		items: make([]Item, len(items)),
		byID:  make(map[ItemID]Item, len(items)),
	}
	copy(c.items, items)
	for _, item := range items {
		c.byID[item.ID] = item
	}
	return c
}

// Find returns the item with the given id. A missing id is not an error:
// callers treat it as contributing nothing.
func (c Catalog) Find(id ItemID) (Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Items returns a copy of the catalog in declaration order.
func (c Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ByCategory returns the items of one category in declaration order.
func (c Catalog) ByCategory(category Category) []Item {
	out := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Automatic returns the engine-managed item, if the catalog has one.
func (c Catalog) Automatic() (Item, bool) {
	for _, item := range c.items {
		if item.Automatic {
			return item, true
		}
	}
	return Item{}, false
}

// LostReportFine returns the fine that triggers the lost-report service line.
func (c Catalog) LostReportFine() (Item, bool) {
	for _, item := range c.items {
		if item.IsFine() && item.LostReport {
			return item, true
		}
	}
	return Item{}, false
}
