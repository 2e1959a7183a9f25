// Package derive turns a bill's raw entered fields into totals. Every
// function here is pure: totals are recomputed on demand and never stored,
// and a malformed or missing numeric field silently degrades to zero so a
// half-filled bill always derives.
package derive

import (
	"github.com/shopspring/decimal"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
)

// Deduction rates and fees. BankCharge is a fixed, currency-unit-agnostic
// fee; the dhara rate differs by bill kind.
var (
	dharaRateScrap = decimal.NewFromFloat(0.015)
	dharaRateIngot = decimal.NewFromFloat(0.01)

	// BankCharge is the flat bank fee applied when the toggle is on.
	BankCharge = decimal.NewFromInt(67)
)

// DharaRate returns the percentage deduction rate for a bill kind.
func DharaRate(kind model.BillKind) decimal.Decimal {
	if kind == model.KindIngot {
		return dharaRateIngot
	}
	return dharaRateScrap
}

// Numeric converts free-form field text to a decimal, degrading to zero on
// empty or unparseable input. Stored text is never mutated.
func Numeric(text string) decimal.Decimal {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// round0 drops everything after the integer magnitude. Lossy on purpose:
// output parity with printed bills depends on this exact policy.
func round0(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(0)
}

// ItemTotal sums the frozen per-item totals. Recomputed on every read,
// never cached.
func ItemTotal(items []model.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total)
	}
	return sum
}

// Totals derives the full totals view for one bill.
func Totals(form model.FormData, items []model.LineItem, settings model.GlobalSettings, kind model.BillKind) model.Totals {
	totalQuantity := Numeric(form.QuantityRecv).Sub(Numeric(form.Dust))
	itemTotal := ItemTotal(items)

	dhara := decimal.Zero
	if settings.IncludeDhara {
		dhara = round0(itemTotal.Mul(DharaRate(kind)))
	}

	bank := decimal.Zero
	if settings.IncludeBankCharges {
		bank = BankCharge
	}

	subTotal := round0(itemTotal.Sub(dhara).Sub(bank))

	// A bill with no items and none of the deduction fields entered keeps
	// the literal "0.00" sentinel instead of deriving from the subtotal.
	grandTotal := "0.00"
	if len(items) > 0 || form.GST != "" || form.BillingExcess != "" ||
		form.TDS2 != "" || form.TDS01 != "" || form.Dalla != "" {
		grandTotal = subTotal.
			Add(Numeric(form.GST)).
			Sub(Numeric(form.BillingExcess)).
			Sub(Numeric(form.TDS2)).
			Sub(Numeric(form.TDS01)).
			Sub(Numeric(form.Dalla)).
			StringFixed(2)
	}

	balance := Numeric(form.Amount).Sub(Numeric(grandTotal))

	return model.Totals{
		TotalQuantity:  totalQuantity,
		ItemTotal:      itemTotal,
		DharaDeduction: dhara,
		BankCharges:    bank,
		SubTotal:       subTotal,
		GrandTotal:     grandTotal,
		Balance:        balance,
	}
}
