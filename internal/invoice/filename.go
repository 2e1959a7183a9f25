package invoice

import (
	"regexp"
	"time"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	nonWordRE    = regexp.MustCompile(`[^\w\s]`)
)

// sanitize collapses whitespace runs to underscores and strips the
// remaining non-word characters.
func sanitize(s string) string {
	s = whitespaceRE.ReplaceAllString(s, "_")
	return nonWordRE.ReplaceAllString(s, "")
}

const dateLayout = "2006-01-02"

// Filename derives the suggested export name from the first bill: the
// sanitized party name, the vehicle number (scrap) or counterparty
// (ingot), and a DD.MM.YYYY date suffix. Multi-bill exports get a Bills_
// prefix. now supplies the scrap fallback when no date was entered.
func Filename(kind model.BillKind, first model.FormData, multi bool, now time.Time) string {
	if kind == model.KindIngot {
		return ingotFilename(first, multi)
	}
	return scrapFilename(first, multi, now)
}

func scrapFilename(form model.FormData, multi bool, now time.Time) string {
	date := now
	if parsed, err := time.Parse(dateLayout, form.Date); err == nil {
		date = parsed
	}
	formatted := date.Format("02.01.2006")

	party := form.PartyName
	if party == "" {
		party = "Unknown"
	}
	party = sanitize(party)

	if multi {
		return "Bills_" + party + "_" + formatted + ".pdf"
	}
	return party + "_" + sanitize(form.VehicleNumber) + "_" + formatted + ".pdf"
}

func ingotFilename(form model.FormData, multi bool) string {
	formatted := "date"
	if parsed, err := time.Parse(dateLayout, form.Date); err == nil {
		formatted = parsed.Format("02.01.2006")
	}

	party := form.PartyName
	if party == "" {
		party = "Bills"
	}
	name := sanitize(party)
	if form.BillTo != "" {
		name += "_" + sanitize(form.BillTo)
	}

	if multi {
		return "Bills_" + name + "_" + formatted + ".pdf"
	}
	return name + "_" + formatted + ".pdf"
}
