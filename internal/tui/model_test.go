package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/billset"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/nav"
)

func newModel(t *testing.T, kind model.BillKind) Model {
	t.Helper()
	svc := billset.NewService(kind, billset.PolicyFor(kind), nil)
	return New(svc, nil)
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want nav.KeyEvent
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, nav.KeyEvent{Key: "enter"}},
		{tea.KeyMsg{Type: tea.KeyDown}, nav.KeyEvent{Key: "down"}},
		{tea.KeyMsg{Type: tea.KeyUp}, nav.KeyEvent{Key: "up"}},
		{tea.KeyMsg{Type: tea.KeyTab}, nav.KeyEvent{Key: "shift"}},
		{tea.KeyMsg{Type: tea.KeyCtrlG}, nav.KeyEvent{Key: "enter", Ctrl: true}},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, nav.KeyEvent{Key: "s", Ctrl: true}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keyEvent(tt.msg), tt.msg.String())
	}
}

func TestFocusCycle(t *testing.T) {
	m := newModel(t, model.KindScrap)
	assert.Equal(t, model.FieldPartyName, m.focusedField())

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, model.FieldBillNumber, m.focusedField())

	m = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, model.FieldPrice, m.focusedField(), "wraps from first to last")
}

func TestTypingUpdatesService(t *testing.T) {
	m := newModel(t, model.KindScrap)
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Acme")})
	assert.Equal(t, "Acme", m.svc.Current().FormData.PartyName)
}

func TestAddItemViaTab(t *testing.T) {
	m := newModel(t, model.KindScrap)
	m.svc.StageQuantity("2")
	m.svc.StagePrice("80")
	m.loadInputs()

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})

	require.Len(t, m.svc.Current().Items, 1)
	assert.False(t, m.statusE)
	assert.Empty(t, m.inputs[model.FieldQuantity].Value())
}

func TestAddItemRejectedKeepsStatus(t *testing.T) {
	m := newModel(t, model.KindScrap)
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})

	assert.Empty(t, m.svc.Current().Items)
	assert.True(t, m.statusE)
	assert.Equal(t, billset.ErrInvalidInput.Error(), m.status)
}

func TestResetNeedsConfirmation(t *testing.T) {
	m := newModel(t, model.KindScrap)
	require.NoError(t, m.svc.UpdateField(0, model.FieldPartyName, "Acme"))
	m.loadInputs()

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, m.confirmReset)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.False(t, m.confirmReset)
	assert.Equal(t, "Acme", m.svc.Current().FormData.PartyName)

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlR}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Empty(t, m.svc.Current().FormData.PartyName)
}

type countingPersister struct {
	snapshots int
}

func (p *countingPersister) Snapshot(bills []model.Bill, capacity int) error {
	p.snapshots++
	return nil
}

func (p *countingPersister) Reset() error { return nil }

func TestIdleMessagesDoNotSnapshot(t *testing.T) {
	persist := &countingPersister{}
	svc := billset.NewService(model.KindScrap, billset.ResizeAuto, persist)
	m := New(svc, nil)

	next, _ := m.Update(cursor.BlinkMsg{})
	m = next.(Model)
	next, _ = m.Update(cursor.BlinkMsg{})
	m = next.(Model)
	assert.Zero(t, persist.snapshots, "blink ticks must not write state")

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("A")})
	assert.Equal(t, 1, persist.snapshots)
}

func TestIngotBillTabs(t *testing.T) {
	m := newModel(t, model.KindIngot)
	require.NoError(t, m.svc.SetCapacity(3))

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, 1, m.svc.CurrentIndex())
	assert.Len(t, m.svc.Bills(), 2)

	m = press(m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, m.svc.CurrentIndex())
}
