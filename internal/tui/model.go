// Package tui is the interactive bill entry screen. It owns input widgets
// and key handling only; every state change goes through the bill set
// service, and totals are re-derived from it on each frame.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/billset"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/draft"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/invoice"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/nav"
)

// Model is the bubbletea model for one bill kind's entry screen.
type Model struct {
	svc    *billset.Service
	drafts *draft.Log
	policy nav.Policy
	keys   KeyMap

	inputs map[model.Field]*textinput.Model
	focus  int

	status  string
	statusE bool

	confirmReset bool
	preview      string

	width int
}

// New builds the entry screen over a restored bill set. drafts may be nil
// for kinds without a draft shortcut.
func New(svc *billset.Service, drafts *draft.Log) Model {
	policy := nav.ForKind(svc.Kind())

	inputs := make(map[model.Field]*textinput.Model, len(policy.Order()))
	for _, f := range policy.Order() {
		in := textinput.New()
		in.Placeholder = f.Label(svc.Kind())
		in.CharLimit = 64
		in.Width = 32
		inputs[f] = &in
	}

	m := Model{
		svc:    svc,
		drafts: drafts,
		policy: policy,
		keys:   DefaultKeyMap,
		inputs: inputs,
	}
	m.loadInputs()
	m.setFocus(0)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// loadInputs refills every widget from the current bill and the staging
// fields. Called after switching or resetting bills.
func (m *Model) loadInputs() {
	form := m.svc.Current().FormData
	quantity, price := m.svc.Staged()
	for _, f := range m.policy.Order() {
		switch f {
		case model.FieldQuantity:
			m.inputs[f].SetValue(quantity)
		case model.FieldPrice:
			m.inputs[f].SetValue(price)
		default:
			value, err := form.Get(f)
			if err == nil {
				m.inputs[f].SetValue(value)
			}
		}
	}
}

func (m *Model) setFocus(i int) {
	order := m.policy.Order()
	m.focus = (i + len(order)) % len(order)
	for j, f := range order {
		if j == m.focus {
			m.inputs[f].Focus()
		} else {
			m.inputs[f].Blur()
		}
	}
}

func (m *Model) focusedField() model.Field {
	return m.policy.Order()[m.focus]
}

// pushFocused mirrors the focused widget's text back into the service.
func (m *Model) pushFocused() {
	f := m.focusedField()
	value := m.inputs[f].Value()
	switch f {
	case model.FieldQuantity:
		m.svc.StageQuantity(value)
	case model.FieldPrice:
		m.svc.StagePrice(value)
	default:
		if err := m.svc.UpdateField(m.svc.CurrentIndex(), f, value); err != nil {
			m.fail(err.Error())
		}
	}
}

func (m *Model) ok(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusE = false
}

func (m *Model) fail(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusE = true
}

// keyEvent adapts a terminal key press to the navigation contract.
// Terminals report neither a bare Shift press nor Ctrl+Enter, so Tab and
// Ctrl+G stand in for the item-add and generate chords.
func keyEvent(msg tea.KeyMsg) nav.KeyEvent {
	switch msg.String() {
	case "tab":
		return nav.KeyEvent{Key: "shift"}
	case "ctrl+g":
		return nav.KeyEvent{Key: "enter", Ctrl: true}
	case "ctrl+s":
		return nav.KeyEvent{Key: "s", Ctrl: true}
	case "enter":
		return nav.KeyEvent{Key: "enter"}
	case "down":
		return nav.KeyEvent{Key: "down"}
	case "up":
		return nav.KeyEvent{Key: "up"}
	}
	return nav.KeyEvent{Key: msg.String()}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		if m.preview != "" {
			if msg.String() == "esc" {
				m.preview = ""
			}
			return m, nil
		}

		if m.confirmReset {
			switch msg.String() {
			case "y", "Y":
				m.svc.Reset()
				m.loadInputs()
				m.setFocus(0)
				m.ok("All bills cleared")
			default:
				m.ok("Reset cancelled")
			}
			m.confirmReset = false
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Reset):
			m.confirmReset = true
			return m, nil
		case key.Matches(msg, m.keys.NextBill):
			m.selectBill(m.svc.CurrentIndex() + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevBill):
			m.selectBill(m.svc.CurrentIndex() - 1)
			return m, nil
		case key.Matches(msg, m.keys.AddBill):
			m.addBill()
			return m, nil
		case key.Matches(msg, m.keys.DeleteBill):
			m.deleteBill()
			return m, nil
		case key.Matches(msg, m.keys.DropItem):
			m.dropLastItem()
			return m, nil
		case key.Matches(msg, m.keys.Dhara):
			s := m.svc.Settings()
			s.IncludeDhara = !s.IncludeDhara
			m.svc.SetSettings(s)
			m.ok("Dhara deduction: %s", onOff(s.IncludeDhara))
			return m, nil
		case key.Matches(msg, m.keys.Bank):
			s := m.svc.Settings()
			s.IncludeBankCharges = !s.IncludeBankCharges
			m.svc.SetSettings(s)
			m.ok("Bank charges: %s", onOff(s.IncludeBankCharges))
			return m, nil
		case key.Matches(msg, m.keys.Capacity):
			m.cycleCapacity()
			return m, nil
		}

		switch nav.IntentFor(m.svc.Kind(), keyEvent(msg)) {
		case nav.IntentFocusNext:
			m.setFocus(m.focus + 1)
			return m, nil
		case nav.IntentFocusPrev:
			m.setFocus(m.focus - 1)
			return m, nil
		case nav.IntentAddItem:
			m.addItem()
			return m, nil
		case nav.IntentGenerate:
			m.generate()
			return m, nil
		case nav.IntentSaveDraft:
			m.saveDraft()
			return m, nil
		}
	}

	f := m.focusedField()
	updated, cmd := m.inputs[f].Update(msg)
	*m.inputs[f] = updated
	// Only key input can change the widget's text; blink ticks and other
	// frame messages must not trigger a state write.
	if _, ok := msg.(tea.KeyMsg); ok {
		m.pushFocused()
	}
	return m, cmd
}

func (m *Model) selectBill(i int) {
	if err := m.svc.SelectCurrent(i); err != nil {
		return
	}
	m.loadInputs()
	m.setFocus(0)
}

func (m *Model) addBill() {
	if err := m.svc.AddRecord(); err != nil {
		m.fail(err.Error())
		return
	}
	m.loadInputs()
	m.setFocus(0)
	m.ok("Bill %d added", m.svc.CurrentIndex()+1)
}

func (m *Model) deleteBill() {
	index := m.svc.CurrentIndex()
	if err := m.svc.RemoveRecord(index); err != nil {
		m.fail(err.Error())
		return
	}
	m.loadInputs()
	m.setFocus(0)
}

func (m *Model) dropLastItem() {
	items := m.svc.Current().Items
	if len(items) == 0 {
		return
	}
	m.svc.DeleteItem(items[len(items)-1].ID)
	m.ok("Item removed")
}

func (m *Model) cycleCapacity() {
	next := m.svc.Capacity()%4 + 1
	if err := m.svc.SetCapacity(next); err != nil {
		m.fail(err.Error())
		return
	}
	m.loadInputs()
	m.ok("Bills per page: %d", next)
}

func (m *Model) addItem() {
	item, err := m.svc.AddItem()
	if err != nil {
		m.fail(err.Error())
		return
	}
	m.inputs[model.FieldQuantity].SetValue("")
	m.inputs[model.FieldPrice].SetValue("")
	m.ok("Item added: %s x %s = %s",
		item.Quantity.String(), item.Price.String(), item.Total.StringFixed(2))
}

func (m *Model) generate() {
	doc, err := invoice.Project(
		m.svc.Kind(), m.svc.Bills(), m.svc.Capacity(), m.svc.CurrentIndex(), m.svc.Settings())
	if err != nil {
		m.fail(err.Error())
		return
	}
	rendered := invoice.Render(doc)
	if err := os.WriteFile(doc.Filename, []byte(rendered), 0o644); err != nil {
		m.fail("writing %s: %v", doc.Filename, err)
		return
	}
	m.preview = rendered
	m.ok("Generated %s", doc.Filename)
}

func (m *Model) saveDraft() {
	if m.drafts == nil {
		return
	}
	d := draft.New(m.svc.Current(), time.Now())
	if err := m.drafts.Append(d); err != nil {
		m.fail("saving draft: %v", err)
		return
	}
	m.ok("Draft saved: %s", d.Name)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := "SCRAP BILL"
	if m.svc.Kind() == model.KindIngot {
		title = "INGOT BILL"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.preview != "" {
		b.WriteString(m.preview)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc: back to entry"))
		return b.String()
	}

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(m.viewFields())
	b.WriteString("\n")
	b.WriteString(m.viewItems())
	b.WriteString("\n")
	b.WriteString(m.viewTotals())
	b.WriteString("\n")

	if m.confirmReset {
		b.WriteString(errStyle.Render("Clear all bills? (y/n)"))
	} else if m.status != "" {
		style := okStyle
		if m.statusE {
			style = errStyle
		}
		b.WriteString(style.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) viewTabs() string {
	parts := make([]string, 0, len(m.svc.Bills()))
	for i, bill := range m.svc.Bills() {
		name := bill.FormData.PartyName
		if name == "" {
			name = fmt.Sprintf("Bill %d", i+1)
		}
		style := tabStyle
		if i == m.svc.CurrentIndex() {
			style = activeTabStyle
		}
		parts = append(parts, style.Render(name))
	}
	return strings.Join(parts, " ") +
		helpStyle.Render(fmt.Sprintf("  (%d/%d per page)", len(m.svc.Bills()), m.svc.Capacity()))
}

func (m Model) viewFields() string {
	var b strings.Builder
	for i, f := range m.policy.Order() {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(f.Label(m.svc.Kind())))
		b.WriteString(" ")
		b.WriteString(m.inputs[f].View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewItems() string {
	items := m.svc.Current().Items
	if len(items) == 0 {
		return helpStyle.Render("no items yet")
	}
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%2d. %s x %s = %s\n",
			i+1, item.Quantity.String(), item.Price.String(), item.Total.StringFixed(2))
	}
	return b.String()
}

func (m Model) viewTotals() string {
	t := m.svc.Totals()
	var b strings.Builder
	fmt.Fprintf(&b, "Item Total   %s\n", t.ItemTotal.StringFixed(2))
	fmt.Fprintf(&b, "Sub Total    %s\n", t.SubTotal.StringFixed(2))
	fmt.Fprintf(&b, "Grand Total  %s\n", t.GrandTotal)
	fmt.Fprintf(&b, "Balance      %s", t.Balance.StringFixed(2))
	return totalsStyle.Render(b.String())
}

func (m Model) helpLine() string {
	bindings := []key.Binding{
		m.keys.NextField, m.keys.AddItem, m.keys.Generate,
	}
	if m.svc.Kind() == model.KindScrap {
		bindings = append(bindings, m.keys.SaveDraft, m.keys.Capacity)
	} else {
		bindings = append(bindings, m.keys.AddBill, m.keys.DeleteBill)
	}
	bindings = append(bindings, m.keys.Reset, m.keys.Quit)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s: %s", b.Help().Key, b.Help().Desc))
	}
	return strings.Join(parts, " • ")
}
