package cafe

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Arshadali10614941/cafe-system/internal/models"
)

func testMenu() *models.Menu {
	menu := models.NewMenu()
	menu.Add(&models.MenuItem{ID: 1, Name: "Chuna Sandwich", Price: 3.50, Type: models.ItemTypeFood})
	menu.Add(&models.MenuItem{ID: 4, Name: "Latte", Price: 2.80, Type: models.ItemTypeDrink, Size: "Medium"})
	return menu
}

func TestRendererMenu(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out, "£").Menu(testMenu())

	got := out.String()
	for _, want := range []string{
		"===== Cafe Menu =====",
		"1. Chuna Sandwich (£3.50) - Food",
		"4. Latte (£2.80) - Drink [Medium]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("menu output missing %q:\n%s", want, got)
		}
	}
}

func TestRendererEmptyMenu(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out, "£").Menu(models.NewMenu())

	if !strings.Contains(out.String(), "Menu is empty.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRendererOrder(t *testing.T) {
	menu := testMenu()
	order := models.NewOrder(1, time.Now(), models.OrderStatusPending)
	item, _ := menu.Find(1)
	order.AddLine(item, 2)
	drink, _ := menu.Find(4)
	order.AddLine(drink, 1)

	var out bytes.Buffer
	NewRenderer(&out, "£").Order(order)

	got := out.String()
	for _, want := range []string{
		"1. Chuna Sandwich x2 - £7.00",
		"2. Latte (Medium) x1 - £2.80",
		"Order Total (including VAT): £11.76",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("order output missing %q:\n%s", want, got)
		}
	}
}

func TestRendererEmptyOrder(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out, "£").Order(models.NewOrder(1, time.Now(), models.OrderStatusPending))

	if !strings.Contains(out.String(), "Order is currently empty.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRendererBill(t *testing.T) {
	order := models.NewOrder(7, time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), models.OrderStatusPending)
	item, _ := testMenu().Find(1)
	order.AddLine(item, 2)
	bill := models.NewBill(order)

	var out bytes.Buffer
	NewRenderer(&out, "£").Bill(bill)

	got := out.String()
	for _, want := range []string{
		"===== Cafe Bill =====",
		"Bill ID: " + bill.ID,
		"Order ID: 7",
		"Date: 26/08/2026",
		"Chuna Sandwich x2 - £7.00",
		"Total (including VAT): £8.40",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("bill output missing %q:\n%s", want, got)
		}
	}
}

func TestConsoleObserver(t *testing.T) {
	var out bytes.Buffer
	NewConsoleObserver(&out).Update("Item added to order")

	if got := out.String(); got != "[Notification] Item added to order\n" {
		t.Errorf("output = %q", got)
	}
}
