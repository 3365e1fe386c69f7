package models

import (
	"log"
	"math"
	"time"
)

// logf reports fail-soft total calculation faults; tests swap it out to
// capture the log line.
var logf = log.Printf

// OrderLine is one catalog item reference plus a quantity. Quantity stays
// positive for as long as the line exists; a line driven to zero is removed
// from its order, never retained.
type OrderLine struct {
	ID       int       `json:"id"`
	Item     *MenuItem `json:"item"`
	Quantity int       `json:"quantity"`
}

// Subtotal is the line's price times quantity, before tax.
func (l *OrderLine) Subtotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// Order is the aggregate for one customer session: an ordered sequence of
// lines, a status, and an embedded notifier fanning mutation events out to
// observers. The status is only ever set by staff, never by the order itself.
type Order struct {
	ID     int
	Date   time.Time
	Status string

	lines      []*OrderLine
	nextLineID int

	Notifier
}

func NewOrder(id int, date time.Time, status string) *Order {
	return &Order{ID: id, Date: date, Status: status}
}

// AddLine appends a new line for item with the next sequential line id and
// notifies observers. Screening out zero or negative quantities is the
// caller's job; the order does not reject them.
func (o *Order) AddLine(item *MenuItem, quantity int) *OrderLine {
	o.nextLineID++
	line := &OrderLine{ID: o.nextLineID, Item: item, Quantity: quantity}
	o.lines = append(o.lines, line)
	o.Notify("Item added to order")
	return line
}

// RemoveLine takes a 1-based position into the current line sequence.
// Removing at least the line's current quantity deletes the line; removing
// fewer only decrements it. An out-of-range position is silently ignored.
func (o *Order) RemoveLine(position, quantity int) {
	index := position - 1
	if index < 0 || index >= len(o.lines) {
		return
	}
	line := o.lines[index]
	if quantity >= line.Quantity {
		o.lines = append(o.lines[:index], o.lines[index+1:]...)
		o.Notify("Item has been removed from your order")
		return
	}
	line.Quantity -= quantity
	o.Notify("the item quantity has been updated")
}

// Lines returns the current line sequence in insertion order.
func (o *Order) Lines() []*OrderLine {
	return o.lines
}

// Empty reports whether the order has no lines.
func (o *Order) Empty() bool {
	return len(o.lines) == 0
}

// Total sums the line subtotals, applies VAT and rounds to pennies. An empty
// order totals zero. A line with a missing item reference is logged and the
// whole total masked to zero, so one bad line cannot take down the session.
func (o *Order) Total() float64 {
	var subtotal float64
	for _, line := range o.lines {
		if line.Item == nil {
			logf("order %d: cannot calculate total, line %d has no menu item", o.ID, line.ID)
			return 0
		}
		subtotal += line.Subtotal()
	}
	return roundPennies(subtotal * (1 + TaxRate))
}

func roundPennies(v float64) float64 {
	return math.Round(v*100) / 100
}
