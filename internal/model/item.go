package model

import "github.com/shopspring/decimal"

// LineItem is one weighed/priced entry on a bill. Total is computed when
// the item is created and never recomputed: items have no edit path, only
// whole-item deletion. (Possible product gap, preserved as designed.)
type LineItem struct {
	ID       string          `json:"id"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

// NewLineItem freezes total = quantity x price at creation.
func NewLineItem(id string, quantity, price decimal.Decimal) LineItem {
	return LineItem{
		ID:       id,
		Quantity: quantity,
		Price:    price,
		Total:    quantity.Mul(price),
	}
}

// Totals is the derived view of one bill. It is recomputed on every read
// and never persisted.
type Totals struct {
	TotalQuantity  decimal.Decimal
	ItemTotal      decimal.Decimal
	DharaDeduction decimal.Decimal
	BankCharges    decimal.Decimal
	SubTotal       decimal.Decimal
	// GrandTotal is rendered text with two decimal places. The literal
	// "0.00" sentinel marks a bill with no items and no deduction fields
	// entered; it short-circuits before the item-derived subtotal applies.
	GrandTotal string
	Balance    decimal.Decimal
}
