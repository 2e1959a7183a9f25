package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the terminal binding surface. Field navigation and the
// item/generate/draft shortcuts follow the navigation contract; the rest
// (bill tabs, toggles, capacity) are extra bindings for actions that have
// no form-level chord.
type KeyMap struct {
	NextField  key.Binding
	PrevField  key.Binding
	AddItem    key.Binding
	Generate   key.Binding
	SaveDraft  key.Binding
	DropItem   key.Binding
	NextBill   key.Binding
	PrevBill   key.Binding
	AddBill    key.Binding
	DeleteBill key.Binding
	Dhara      key.Binding
	Bank       key.Binding
	Capacity   key.Binding
	Reset      key.Binding
	Quit       key.Binding
}

// DefaultKeyMap is used by the entry screen.
var DefaultKeyMap = KeyMap{
	NextField:  key.NewBinding(key.WithKeys("enter", "down"), key.WithHelp("enter/↓", "next field")),
	PrevField:  key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev field")),
	AddItem:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "add item")),
	Generate:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
	SaveDraft:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save draft")),
	DropItem:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "drop last item")),
	NextBill:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next bill")),
	PrevBill:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev bill")),
	AddBill:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "add bill")),
	DeleteBill: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete bill")),
	Dhara:      key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "toggle dhara")),
	Bank:       key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "toggle bank charges")),
	Capacity:   key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "bills per page")),
	Reset:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
	Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}
