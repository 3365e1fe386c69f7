package models

import "testing"

func TestBillTotalIsFrozen(t *testing.T) {
	order := newTestOrder()
	order.AddLine(sandwich(), 2)

	bill := NewBill(order)
	if got := bill.Total(); !almostEqual(got, 8.40) {
		t.Fatalf("bill total = %v, want 8.40", got)
	}

	// Push the live order to 10.00 * 1.20 = 12.00.
	order.AddLine(&MenuItem{ID: 2, Name: "Flapjack", Price: 3.00, Type: ItemTypeFood}, 1)
	if got := order.Total(); !almostEqual(got, 12.00) {
		t.Fatalf("order total = %v, want 12.00", got)
	}

	if got := bill.Total(); !almostEqual(got, 8.40) {
		t.Errorf("bill total = %v after source mutation, want frozen 8.40", got)
	}
}

func TestBillLinesAreSnapshots(t *testing.T) {
	order := newTestOrder()
	order.AddLine(&MenuItem{ID: 4, Name: "Latte", Price: 2.80, Type: ItemTypeDrink, Size: "Medium"}, 2)

	bill := NewBill(order)
	order.RemoveLine(1, 2)

	lines := bill.Lines()
	if len(lines) != 1 {
		t.Fatalf("bill has %d lines after source mutation, want 1", len(lines))
	}
	line := lines[0]
	if line.Name != "Latte" || line.Size != "Medium" || line.Quantity != 2 || !almostEqual(line.Subtotal, 5.60) {
		t.Errorf("captured line = %+v", line)
	}
}

func TestBillLineOmitsSizeForFood(t *testing.T) {
	order := newTestOrder()
	order.AddLine(sandwich(), 1)

	if size := NewBill(order).Lines()[0].Size; size != "" {
		t.Errorf("food line size = %q, want empty", size)
	}
}

func TestBillIDsAreUnique(t *testing.T) {
	order := newTestOrder()
	order.AddLine(sandwich(), 1)

	first := NewBill(order)
	second := NewBill(order)
	if first.ID == "" || first.ID == second.ID {
		t.Errorf("bill ids %q and %q should be distinct and non-empty", first.ID, second.ID)
	}
}
