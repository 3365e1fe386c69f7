package cafe

import (
	"fmt"
	"io"

	"github.com/Arshadali10614941/cafe-system/internal/models"
)

// Renderer formats menus, orders, bills and payment confirmations for the
// terminal. Everything goes through the injected writer so tests can capture
// it; the domain types themselves never print.
type Renderer struct {
	out      io.Writer
	currency string
}

func NewRenderer(out io.Writer, currency string) *Renderer {
	return &Renderer{out: out, currency: currency}
}

func (r *Renderer) Menu(menu *models.Menu) {
	items := menu.Items()
	if len(items) == 0 {
		fmt.Fprintln(r.out, "Menu is empty.")
		return
	}
	fmt.Fprintln(r.out, "\n===== Cafe Menu =====")
	for _, item := range items {
		if item.Type == models.ItemTypeDrink {
			fmt.Fprintf(r.out, "%d. %s (%s%.2f) - Drink [%s]\n", item.ID, item.Name, r.currency, item.Price, item.Size)
		} else {
			fmt.Fprintf(r.out, "%d. %s (%s%.2f) - Food\n", item.ID, item.Name, r.currency, item.Price)
		}
	}
	fmt.Fprintln(r.out, "=====================")
}

func (r *Renderer) Order(order *models.Order) {
	if order.Empty() {
		fmt.Fprintln(r.out, "\nOrder is currently empty.")
		return
	}
	fmt.Fprintln(r.out, "\nYour order:")
	for position, line := range order.Lines() {
		fmt.Fprintf(r.out, "%d. %s x%d - %s%.2f\n", position+1, itemLabel(line.Item), line.Quantity, r.currency, line.Subtotal())
	}
	fmt.Fprintf(r.out, "Order Total (including VAT): %s%.2f\n", r.currency, order.Total())
}

func (r *Renderer) Bill(bill *models.Bill) {
	fmt.Fprintln(r.out, "\n===== Cafe Bill =====")
	fmt.Fprintf(r.out, "Bill ID: %s\n", bill.ID)
	fmt.Fprintf(r.out, "Order ID: %d\n", bill.Order.ID)
	fmt.Fprintf(r.out, "Date: %s\n", bill.Order.Date.Format("02/01/2006"))
	fmt.Fprintln(r.out, "---------------------")
	for _, line := range bill.Lines() {
		name := line.Name
		if line.Size != "" {
			name = fmt.Sprintf("%s (%s)", name, line.Size)
		}
		fmt.Fprintf(r.out, "%s x%d - %s%.2f\n", name, line.Quantity, r.currency, line.Subtotal)
	}
	fmt.Fprintln(r.out, "---------------------")
	fmt.Fprintf(r.out, "Total (including VAT): %s%.2f\n", r.currency, bill.Total())
	fmt.Fprintln(r.out, "=====================")
}

func (r *Renderer) Payment(payment *models.Payment) {
	fmt.Fprintf(r.out, "Payment of %s%.2f received via %s\n", r.currency, payment.Amount, payment.Method)
}

func itemLabel(item *models.MenuItem) string {
	if item.Type == models.ItemTypeDrink {
		return fmt.Sprintf("%s (%s)", item.Name, item.Size)
	}
	return item.Name
}

// ConsoleObserver prints order notifications as they arrive.
type ConsoleObserver struct {
	out io.Writer
}

func NewConsoleObserver(out io.Writer) *ConsoleObserver {
	return &ConsoleObserver{out: out}
}

func (c *ConsoleObserver) Update(message string) {
	fmt.Fprintf(c.out, "[Notification] %s\n", message)
}
