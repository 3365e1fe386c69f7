package models

import (
	"errors"
	"fmt"
)

var ErrEmptyOrder = errors.New("cannot place an empty order")

// Customer places an order once it holds at least one line.
type Customer struct {
	ID   int
	Name string
}

func (c *Customer) PlaceOrder(order *Order) error {
	if order.Empty() {
		return ErrEmptyOrder
	}
	return nil
}

// Staff is the external authority that moves an order between statuses.
type Staff struct {
	ID   int
	Name string
}

func (s *Staff) UpdateOrderStatus(order *Order, status string) {
	order.Status = status
	order.Notify(fmt.Sprintf("Order status updated to '%s'", status))
}
