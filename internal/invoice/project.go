package invoice

import (
	"time"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/derive"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
)

// Layout selects the page grid for the rendered document.
type Layout int

const (
	LayoutSingle Layout = iota
	LayoutTwoCell
	LayoutFourCell
)

// LayoutFor maps the page capacity to a grid. Three bills share the
// four-cell grid, as the print stylesheet always did.
func LayoutFor(capacity int) Layout {
	switch {
	case capacity <= 1:
		return LayoutSingle
	case capacity == 2:
		return LayoutTwoCell
	default:
		return LayoutFourCell
	}
}

// WeightLine is the received-minus-dust breakdown, present only when
// either weight field was entered.
type WeightLine struct {
	Received string
	Dust     string
	Net      string
}

// ItemRow is one printed line-item row.
type ItemRow struct {
	Index    int
	Quantity string
	Price    string
	Total    string
}

// TotalLine is one optional footer line. Additive marks the single line
// (GST) that adds to the subtotal instead of deducting from it.
type TotalLine struct {
	Label    string
	Amount   string
	Additive bool
}

// Section is the renderable view of one bill.
type Section struct {
	BillID        string
	PartyName     string
	BillTo        string
	Date          string
	VehicleNumber string
	BillNumber    string
	Weight        *WeightLine
	Items         []ItemRow
	ItemTotal     string
	Lines         []TotalLine
	GrandTotal    string
	Balance       string
}

// Document is the projector's output: per-bill sections, a page layout,
// and a suggested filename for the print/PDF collaborator.
type Document struct {
	Layout   Layout
	Sections []Section
	Filename string
}

// Project validates the set and builds the export document. The gate
// failing is the only error path.
func Project(kind model.BillKind, bills []model.Bill, capacity, currentIndex int, settings model.GlobalSettings) (Document, error) {
	if err := ValidateForExport(kind, bills, currentIndex); err != nil {
		return Document{}, err
	}

	doc := Document{
		Layout:   LayoutFor(capacity),
		Filename: Filename(kind, bills[0].FormData, len(bills) > 1, time.Now()),
	}
	for _, b := range bills {
		doc.Sections = append(doc.Sections, projectSection(kind, b, settings))
	}
	return doc, nil
}

func projectSection(kind model.BillKind, bill model.Bill, settings model.GlobalSettings) Section {
	form := bill.FormData
	totals := derive.Totals(form, bill.Items, settings, kind)

	s := Section{
		BillID:        bill.ID,
		PartyName:     form.PartyName,
		Date:          form.Date,
		VehicleNumber: form.VehicleNumber,
		BillNumber:    form.BillNumber,
		ItemTotal:     totals.ItemTotal.StringFixed(2),
		GrandTotal:    totals.GrandTotal,
	}
	if kind == model.KindIngot {
		s.BillTo = form.BillTo
	}

	if form.QuantityRecv != "" || form.Dust != "" {
		s.Weight = &WeightLine{
			Received: form.QuantityRecv,
			Dust:     form.Dust,
			Net:      totals.TotalQuantity.String(),
		}
	}

	for i, item := range bill.Items {
		s.Items = append(s.Items, ItemRow{
			Index:    i + 1,
			Quantity: item.Quantity.String(),
			Price:    item.Price.String(),
			Total:    item.Total.StringFixed(2),
		})
	}

	s.Lines = footerLines(kind, form, totals, settings)

	if form.Amount != "" {
		s.Balance = totals.Balance.StringFixed(2)
	}
	return s
}

// footerLines includes each deduction line only when its source value is
// entered or its toggle is enabled.
func footerLines(kind model.BillKind, form model.FormData, totals model.Totals, settings model.GlobalSettings) []TotalLine {
	var lines []TotalLine

	if settings.IncludeDhara {
		label := "Dhara (1.5%)"
		if kind == model.KindIngot {
			label = "Dhara (1%)"
		}
		lines = append(lines, TotalLine{Label: label, Amount: totals.DharaDeduction.String()})
	}
	if settings.IncludeBankCharges {
		lines = append(lines, TotalLine{Label: "Bank Charges", Amount: totals.BankCharges.String()})
	}
	if form.GST != "" {
		lines = append(lines, TotalLine{Label: "GST", Amount: form.GST, Additive: true})
	}
	if form.TDS2 != "" {
		lines = append(lines, TotalLine{Label: model.FieldTDS2.Label(kind), Amount: form.TDS2})
	}
	if form.TDS01 != "" {
		lines = append(lines, TotalLine{Label: "TDS (0.1%)", Amount: form.TDS01})
	}
	if form.BillingExcess != "" {
		lines = append(lines, TotalLine{Label: "B.E", Amount: form.BillingExcess})
	}
	if form.Dalla != "" {
		lines = append(lines, TotalLine{Label: "Dalla", Amount: form.Dalla})
	}
	return lines
}
