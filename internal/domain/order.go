package domain

import "strings"

// Placeholder used when a line item references neither catalog.
const UnnamedItemName = "ບໍ່ລະບຸຊື່"

// Order is the commercial transaction a delivery fulfills.
// Read-only from the courier agent's perspective.
type Order struct {
	ID         int64
	OrderCode  string
	CustomerID *int64
	CreatedAt  string
	TotalPrice float64
	Customer   *Customer
	LineItems  []LineItem
}

// Customer is the ordering user attached to an order.
type Customer struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// FullName returns the customer's display name.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// LineItem is a single priced position within an order.
// ProductName is resolved from either the food or the beverage catalog;
// exactly one reference is non-null on the wire, and the name falls back
// to UnnamedItemName when both are absent.
type LineItem struct {
	ID          int64
	Quantity    int
	UnitPrice   float64
	Notes       string
	ProductName string
}
