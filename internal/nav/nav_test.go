package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
)

func TestOrderLength(t *testing.T) {
	assert.Len(t, ForKind(model.KindScrap).Order(), 15)
	assert.Len(t, ForKind(model.KindIngot).Order(), 16)
}

func TestNext_WrapsAround(t *testing.T) {
	p := ForKind(model.KindScrap)

	next, ok := p.Next(model.FieldPartyName)
	require.True(t, ok)
	assert.Equal(t, model.FieldBillNumber, next)

	// Last field wraps to the first.
	next, ok = p.Next(model.FieldPrice)
	require.True(t, ok)
	assert.Equal(t, model.FieldPartyName, next)
}

func TestPrev_WrapsAround(t *testing.T) {
	p := ForKind(model.KindScrap)

	prev, ok := p.Prev(model.FieldPartyName)
	require.True(t, ok)
	assert.Equal(t, model.FieldPrice, prev)
}

func TestIngotOrderIncludesBillTo(t *testing.T) {
	p := ForKind(model.KindIngot)

	next, ok := p.Next(model.FieldPartyName)
	require.True(t, ok)
	assert.Equal(t, model.FieldBillTo, next)

	// billTo is not a scrap field.
	_, ok = ForKind(model.KindScrap).Next(model.FieldBillTo)
	assert.False(t, ok)
}

func TestNext_UnknownField(t *testing.T) {
	p := ForKind(model.KindScrap)
	_, ok := p.Next(model.Field("bogus"))
	assert.False(t, ok)
	_, ok = p.Prev(model.Field("bogus"))
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	p := ForKind(model.KindIngot)
	for _, f := range p.Order() {
		next, ok := p.Next(f)
		require.True(t, ok)
		back, ok := p.Prev(next)
		require.True(t, ok)
		assert.Equal(t, f, back)
	}
}

func TestIntentFor(t *testing.T) {
	cases := []struct {
		name string
		kind model.BillKind
		ev   KeyEvent
		want Intent
	}{
		{"enter moves next", model.KindScrap, KeyEvent{Key: "enter"}, IntentFocusNext},
		{"down moves next", model.KindScrap, KeyEvent{Key: "down"}, IntentFocusNext},
		{"shift+enter does not navigate", model.KindScrap, KeyEvent{Key: "enter", Shift: true}, IntentNone},
		{"up moves prev", model.KindScrap, KeyEvent{Key: "up"}, IntentFocusPrev},
		{"bare shift adds item", model.KindScrap, KeyEvent{Key: "shift"}, IntentAddItem},
		{"ctrl+enter generates", model.KindScrap, KeyEvent{Key: "enter", Ctrl: true}, IntentGenerate},
		{"ctrl+s saves draft on scrap", model.KindScrap, KeyEvent{Key: "s", Ctrl: true}, IntentSaveDraft},
		{"ctrl+s ignored on ingot", model.KindIngot, KeyEvent{Key: "s", Ctrl: true}, IntentNone},
		{"plain key ignored", model.KindScrap, KeyEvent{Key: "a"}, IntentNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IntentFor(tc.kind, tc.ev))
		})
	}
}
