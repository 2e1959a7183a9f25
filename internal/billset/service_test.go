package billset

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newScrap() *Service {
	return NewService(model.KindScrap, ResizeAuto, nil)
}

func newIngot() *Service {
	return NewService(model.KindIngot, ResizeExplicit, nil)
}

func addItem(t *testing.T, s *Service, quantity, price string) model.LineItem {
	t.Helper()
	s.StageQuantity(quantity)
	s.StagePrice(price)
	item, err := s.AddItem()
	require.NoError(t, err)
	return item
}

func TestNewService_SingleEmptyBill(t *testing.T) {
	s := newScrap()
	require.Len(t, s.Bills(), 1)
	assert.Equal(t, 1, s.Capacity())
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Empty(t, s.Current().Items)
	assert.NotEmpty(t, s.Current().ID)
}

func TestAddItem(t *testing.T) {
	s := newScrap()
	item := addItem(t, s, "2", "50")

	assert.True(t, item.Total.Equal(dec("100")))
	require.Len(t, s.Current().Items, 1)

	// Staging fields are cleared on success.
	q, p := s.Staged()
	assert.Empty(t, q)
	assert.Empty(t, p)
}

func TestAddItem_Rejected(t *testing.T) {
	cases := []struct {
		name            string
		quantity, price string
	}{
		{"empty quantity", "", "10"},
		{"empty price", "3", ""},
		{"bad quantity", "abc", "10"},
		{"bad price", "3", "x"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newScrap()
			s.StageQuantity(tc.quantity)
			s.StagePrice(tc.price)

			_, err := s.AddItem()
			require.ErrorIs(t, err, ErrInvalidInput)

			// No mutation: item list and staging unchanged.
			assert.Empty(t, s.Current().Items)
			q, p := s.Staged()
			assert.Equal(t, tc.quantity, q)
			assert.Equal(t, tc.price, p)
		})
	}
}

func TestDeleteItem(t *testing.T) {
	s := newScrap()
	first := addItem(t, s, "2", "50")
	second := addItem(t, s, "3", "20")

	s.DeleteItem(first.ID)
	require.Len(t, s.Current().Items, 1)
	assert.Equal(t, second.ID, s.Current().Items[0].ID)

	// Unknown token is ignored.
	s.DeleteItem("missing")
	assert.Len(t, s.Current().Items, 1)
}

func TestSum_InvariantUnderDeleteReAdd(t *testing.T) {
	s := newScrap()
	addItem(t, s, "2", "50")
	extra := addItem(t, s, "1", "7")
	before := s.Totals().ItemTotal

	s.DeleteItem(extra.ID)
	addItem(t, s, "1", "7")
	assert.True(t, s.Totals().ItemTotal.Equal(before))
}

func TestSetCapacity_AutoGrowsAndShrinks(t *testing.T) {
	s := newScrap()
	require.NoError(t, s.UpdateField(0, model.FieldPartyName, "Acme"))

	require.NoError(t, s.SetCapacity(4))
	require.Len(t, s.Bills(), 4)

	// Existing content untouched by the resize.
	assert.Equal(t, "Acme", s.Bills()[0].FormData.PartyName)

	require.NoError(t, s.SelectCurrent(3))
	require.NoError(t, s.SetCapacity(2))
	require.Len(t, s.Bills(), 2)
	assert.Equal(t, 0, s.CurrentIndex(), "selection clamps to first bill")
	assert.Equal(t, "Acme", s.Bills()[0].FormData.PartyName)
}

func TestSetCapacity_Invariant(t *testing.T) {
	s := newScrap()
	for _, n := range []int{3, 1, 4, 2, 2, 1} {
		require.NoError(t, s.SetCapacity(n))
		assert.LessOrEqual(t, len(s.Bills()), s.Capacity())
		assert.Len(t, s.Bills(), n)
	}
}

func TestSetCapacity_Rejected(t *testing.T) {
	s := newScrap()
	require.ErrorIs(t, s.SetCapacity(0), ErrInvalidCapacity)
	require.ErrorIs(t, s.SetCapacity(5), ErrInvalidCapacity)
	assert.Equal(t, 1, s.Capacity())
}

func TestSetCapacity_ExplicitLeavesBills(t *testing.T) {
	s := newIngot()
	require.NoError(t, s.SetCapacity(4))
	require.NoError(t, s.AddRecord())
	require.NoError(t, s.AddRecord())
	require.Len(t, s.Bills(), 3)

	// Lowering the ceiling does not trim ingot bills.
	require.NoError(t, s.SetCapacity(2))
	assert.Len(t, s.Bills(), 3)
}

func TestAddRecord_CapacityGated(t *testing.T) {
	s := newIngot()
	require.NoError(t, s.SetCapacity(2))

	require.NoError(t, s.AddRecord())
	assert.Equal(t, 1, s.CurrentIndex(), "new bill becomes current")

	err := s.AddRecord()
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Len(t, s.Bills(), 2)
}

func TestAddRecord_AutoManaged(t *testing.T) {
	s := newScrap()
	require.ErrorIs(t, s.AddRecord(), ErrAutoManaged)
}

func TestRemoveRecord(t *testing.T) {
	s := newIngot()
	require.NoError(t, s.SetCapacity(3))
	require.NoError(t, s.AddRecord())
	require.NoError(t, s.AddRecord())
	require.Equal(t, 2, s.CurrentIndex())

	require.NoError(t, s.RemoveRecord(2))
	assert.Len(t, s.Bills(), 2)
	assert.Equal(t, 1, s.CurrentIndex(), "selection reclamps to last bill")
}

func TestRemoveRecord_LastBillNoOp(t *testing.T) {
	s := newIngot()
	require.NoError(t, s.RemoveRecord(0))
	assert.Len(t, s.Bills(), 1)
}

func TestUpdateField(t *testing.T) {
	s := newScrap()
	require.NoError(t, s.UpdateField(0, model.FieldQuantityRecv, "100"))
	require.NoError(t, s.UpdateField(0, model.FieldDust, "5"))
	assert.True(t, s.Totals().TotalQuantity.Equal(dec("95")))

	require.ErrorIs(t, s.UpdateField(3, model.FieldDust, "1"), ErrIndexOutOfRange)
	require.Error(t, s.UpdateField(0, model.FieldQuantity, "1"), "staging fields are not form fields")
}

func TestSelectCurrent_OutOfRange(t *testing.T) {
	s := newScrap()
	require.ErrorIs(t, s.SelectCurrent(1), ErrIndexOutOfRange)
	require.ErrorIs(t, s.SelectCurrent(-1), ErrIndexOutOfRange)
	assert.Equal(t, 0, s.CurrentIndex())
}

func TestReset_Auto(t *testing.T) {
	s := newScrap()
	require.NoError(t, s.SetCapacity(3))
	require.NoError(t, s.UpdateField(1, model.FieldPartyName, "Acme"))
	addItem(t, s, "2", "50")
	s.StageQuantity("9")

	s.Reset()

	require.Len(t, s.Bills(), 3, "auto reset keeps the page capacity")
	for _, b := range s.Bills() {
		assert.Empty(t, b.FormData.PartyName)
		assert.Empty(t, b.Items)
	}
	q, _ := s.Staged()
	assert.Empty(t, q)
}

func TestReset_Explicit(t *testing.T) {
	s := newIngot()
	require.NoError(t, s.SetCapacity(4))
	require.NoError(t, s.AddRecord())

	s.Reset()

	assert.Len(t, s.Bills(), 1)
	assert.Equal(t, 1, s.Capacity())
	assert.Equal(t, 0, s.CurrentIndex())
}

type failingPersister struct{ calls int }

func (f *failingPersister) Snapshot([]model.Bill, int) error {
	f.calls++
	return errors.New("disk full")
}

func (f *failingPersister) Reset() error { return nil }

func TestSnapshotFailure_SilentDegrade(t *testing.T) {
	persist := &failingPersister{}
	s := NewService(model.KindScrap, ResizeAuto, persist)
	var warnings bytes.Buffer
	s.SetWarnWriter(&warnings)

	addItem(t, s, "2", "50")

	// Mutation succeeded despite the write failure.
	assert.Len(t, s.Current().Items, 1)
	assert.Equal(t, 1, persist.calls)
	assert.Contains(t, warnings.String(), "failed to write snapshot")
}
