package models

// MenuItem is a single purchasable catalog entry. Food and drink share one
// type; Size is only set for drinks.
type MenuItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
	Size  string  `json:"size,omitempty"`
}

// Menu holds the available catalog items in insertion order. Items are shared
// by reference: order lines point at the same entries the menu holds.
type Menu struct {
	items []*MenuItem
}

func NewMenu() *Menu {
	return &Menu{}
}

// Add inserts an item. Duplicate ids are not rejected; Find returns the
// earliest match.
func (m *Menu) Add(item *MenuItem) {
	m.items = append(m.items, item)
}

// Remove deletes every entry with the given id.
func (m *Menu) Remove(id int) {
	kept := m.items[:0]
	for _, item := range m.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	m.items = kept
}

// Find looks an item up by id. The second return value reports whether it
// exists; an unknown id is not an error.
func (m *Menu) Find(id int) (*MenuItem, bool) {
	for _, item := range m.items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// Items returns the catalog in insertion order for display.
func (m *Menu) Items() []*MenuItem {
	return m.items
}
