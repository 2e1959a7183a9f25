package invoice

import (
	"fmt"
	"strings"
)

// Render writes the document as plain text for terminal preview. The
// print/PDF collaborators consume the Document itself, not this view.
func Render(doc Document) string {
	var b strings.Builder

	for i, s := range doc.Sections {
		if i > 0 {
			b.WriteString("\n" + strings.Repeat("=", 44) + "\n\n")
		}
		renderSection(&b, s)
	}
	fmt.Fprintf(&b, "\nSuggested filename: %s\n", doc.Filename)
	return b.String()
}

func renderSection(b *strings.Builder, s Section) {
	fmt.Fprintf(b, "Bill From: %s\n", orNA(s.PartyName))
	if s.BillTo != "" {
		fmt.Fprintf(b, "Bill To:   %s\n", s.BillTo)
	}
	fmt.Fprintf(b, "Date:      %s\n", orNA(s.Date))
	fmt.Fprintf(b, "Vehicle:   %s\n", orNA(s.VehicleNumber))
	if s.BillNumber != "" {
		fmt.Fprintf(b, "Bill No:   %s\n", s.BillNumber)
	}

	if s.Weight != nil {
		fmt.Fprintf(b, "Weight:    %s - %s = %s\n",
			orZero(s.Weight.Received), orZero(s.Weight.Dust), s.Weight.Net)
	}

	b.WriteString("\n  #      Qty    Price      Total\n")
	for _, row := range s.Items {
		fmt.Fprintf(b, "%3d %8s %8s %10s\n", row.Index, row.Quantity, row.Price, row.Total)
	}

	fmt.Fprintf(b, "\nSubtotal: %s\n", s.ItemTotal)
	for _, line := range s.Lines {
		sign := "-"
		if line.Additive {
			sign = "+"
		}
		fmt.Fprintf(b, "%s: %s%s\n", line.Label, sign, line.Amount)
	}
	fmt.Fprintf(b, "Grand Total: %s\n", s.GrandTotal)
	if s.Balance != "" {
		fmt.Fprintf(b, "Balance: %s\n", s.Balance)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
