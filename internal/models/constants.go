package models

const (
	ItemTypeFood  = "food"
	ItemTypeDrink = "drink"

	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"

	PaymentMethodCash = "Cash"
	PaymentMethodCard = "Card"
)

// TaxRate is the VAT surcharge applied once to an order's summed subtotal,
// never per line.
const TaxRate = 0.20
