package nav

import "github.com/krishgarg-code/BILL-GENRATOR/internal/model"

// Intent is what a key press asks the application to do. Carrying the
// intent out (moving focus, producing a document) is the UI layer's job.
type Intent int

const (
	IntentNone Intent = iota
	IntentFocusNext
	IntentFocusPrev
	IntentAddItem
	IntentGenerate
	IntentSaveDraft
)

// KeyEvent is a decoded key press. Key holds the lowercase key name
// ("enter", "down", "up", "shift", "s").
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Shift bool
}

// IntentFor maps a key press to an intent for the given bill kind.
// Ctrl+Enter generates, a bare Shift press stages an item add,
// Enter/Down move forward, Up moves back, and Ctrl+S saves a draft on
// scrap bills only.
func IntentFor(kind model.BillKind, ev KeyEvent) Intent {
	if ev.Ctrl && ev.Key == "enter" {
		return IntentGenerate
	}
	if ev.Key == "shift" {
		return IntentAddItem
	}
	if (ev.Key == "enter" || ev.Key == "down") && !ev.Shift {
		return IntentFocusNext
	}
	if ev.Key == "up" {
		return IntentFocusPrev
	}
	if ev.Ctrl && ev.Key == "s" && kind == model.KindScrap {
		return IntentSaveDraft
	}
	return IntentNone
}
