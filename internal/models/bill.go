package models

import (
	"github.com/lucsky/cuid"
)

// BillLine is one rendered line of a bill, copied from the order at
// construction time. Size is empty for food items.
type BillLine struct {
	Name     string
	Size     string
	Quantity int
	Subtotal float64
}

// Bill is a point-in-time snapshot of an order's lines and VAT-inclusive
// total. Mutating the source order after the bill is issued does not change
// it; rendering never recomputes from the live order.
type Bill struct {
	ID    string
	Order *Order

	lines []BillLine
	total float64
}

// NewBill captures the order's current lines and total under a fresh bill id.
func NewBill(order *Order) *Bill {
	bill := &Bill{
		ID:    cuid.New(),
		Order: order,
		total: order.Total(),
	}
	for _, line := range order.Lines() {
		if line.Item == nil {
			continue
		}
		captured := BillLine{
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Subtotal: line.Subtotal(),
		}
		if line.Item.Type == ItemTypeDrink {
			captured.Size = line.Item.Size
		}
		bill.lines = append(bill.lines, captured)
	}
	return bill
}

// Lines returns the captured line summaries in order.
func (b *Bill) Lines() []BillLine {
	return b.lines
}

// Total returns the total frozen at construction.
func (b *Bill) Total() float64 {
	return b.total
}
