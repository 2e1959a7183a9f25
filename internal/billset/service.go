// Package billset owns the ordered collection of in-progress bills for one
// bill kind: the current selection, the page capacity, item staging, and
// the snapshot-after-every-mutation persistence contract.
package billset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/derive"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/id"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
)

// Recoverable failures surfaced to the operator. None of them mutate the
// set; every failure path leaves it in its prior valid state.
var (
	ErrInvalidInput     = errors.New("please enter valid quantity and price")
	ErrCapacityExceeded = errors.New("bill limit reached for this page")
	ErrInvalidCapacity  = errors.New("bills per page must be between 1 and 4")
	ErrIndexOutOfRange  = errors.New("bill index out of range")
	ErrAutoManaged      = errors.New("bill count is managed by the page capacity")
)

// ResizePolicy says how the record count tracks the page capacity.
type ResizePolicy int

const (
	// ResizeAuto grows and shrinks the set to exactly the capacity
	// (scrap behavior).
	ResizeAuto ResizePolicy = iota
	// ResizeExplicit leaves records alone; the capacity only gates
	// explicit add/remove (ingot behavior).
	ResizeExplicit
)

// PolicyFor returns the historical resize policy for a bill kind.
func PolicyFor(kind model.BillKind) ResizePolicy {
	if kind == model.KindIngot {
		return ResizeExplicit
	}
	return ResizeAuto
}

// Persister receives the whole set after each mutation and clears the
// persisted snapshot on reset.
type Persister interface {
	Snapshot(bills []model.Bill, capacity int) error
	Reset() error
}

// Service is the bill set manager. Not safe for concurrent use: every
// mutation is a synchronous reaction to one user input event.
type Service struct {
	kind     model.BillKind
	policy   ResizePolicy
	persist  Persister
	warn     io.Writer
	bills    []model.Bill
	capacity int
	current  int
	settings model.GlobalSettings

	stagedQuantity string
	stagedPrice    string
}

// NewService creates a set with a single empty bill. Persister may be nil
// for a purely in-memory set (tests).
func NewService(kind model.BillKind, policy ResizePolicy, persist Persister) *Service {
	return &Service{
		kind:     kind,
		policy:   policy,
		persist:  persist,
		warn:     os.Stderr,
		bills:    []model.Bill{model.NewBill(id.New())},
		capacity: 1,
		settings: model.DefaultSettings(),
	}
}

// Restore replaces the in-memory state with a loaded snapshot. Empty input
// falls back to a single empty bill.
func (s *Service) Restore(bills []model.Bill, capacity int) {
	if len(bills) == 0 {
		bills = []model.Bill{model.NewBill(id.New())}
	}
	if capacity < 1 || capacity > 4 {
		capacity = 1
	}
	s.bills = bills
	s.capacity = capacity
	s.current = 0
}

// SetWarnWriter redirects best-effort persistence warnings (tests).
func (s *Service) SetWarnWriter(w io.Writer) { s.warn = w }

func (s *Service) Kind() model.BillKind         { return s.kind }
func (s *Service) Bills() []model.Bill          { return s.bills }
func (s *Service) Capacity() int                { return s.capacity }
func (s *Service) CurrentIndex() int            { return s.current }
func (s *Service) Current() model.Bill          { return s.bills[s.current] }
func (s *Service) Settings() model.GlobalSettings { return s.settings }

// SetSettings replaces the deduction toggles shared across all bills.
func (s *Service) SetSettings(settings model.GlobalSettings) {
	s.settings = settings
}

// Totals derives the current bill's totals. Derivation never fails; a
// half-filled bill simply degrades its malformed fields to zero.
func (s *Service) Totals() model.Totals {
	return s.TotalsAt(s.current)
}

// TotalsAt derives totals for the bill at index.
func (s *Service) TotalsAt(index int) model.Totals {
	b := s.bills[index]
	return derive.Totals(b.FormData, b.Items, s.settings, s.kind)
}

// StageQuantity and StagePrice hold the transient item-entry fields.
func (s *Service) StageQuantity(text string) { s.stagedQuantity = text }
func (s *Service) StagePrice(text string)    { s.stagedPrice = text }

// Staged returns the transient quantity/price texts.
func (s *Service) Staged() (quantity, price string) {
	return s.stagedQuantity, s.stagedPrice
}

// AddItem appends a line item to the current bill from the staged
// quantity/price and clears the staging fields. Empty or unparseable
// input is rejected without any mutation.
func (s *Service) AddItem() (model.LineItem, error) {
	if s.stagedQuantity == "" || s.stagedPrice == "" {
		return model.LineItem{}, ErrInvalidInput
	}
	quantity, err := decimal.NewFromString(s.stagedQuantity)
	if err != nil {
		return model.LineItem{}, ErrInvalidInput
	}
	price, err := decimal.NewFromString(s.stagedPrice)
	if err != nil {
		return model.LineItem{}, ErrInvalidInput
	}

	item := model.NewLineItem(id.New(), quantity, price)
	s.bills[s.current].Items = append(s.bills[s.current].Items, item)
	s.stagedQuantity = ""
	s.stagedPrice = ""
	s.snapshot()
	return item, nil
}

// DeleteItem removes an item from the current bill by token. Unknown
// tokens are silently ignored.
func (s *Service) DeleteItem(itemID string) {
	items := s.bills[s.current].Items
	for i, item := range items {
		if item.ID == itemID {
			s.bills[s.current].Items = append(items[:i], items[i+1:]...)
			s.snapshot()
			return
		}
	}
}

// SetCapacity changes the page capacity (1..4). Under ResizeAuto the set
// grows with empty bills or truncates to exactly n, and the selection is
// reset to the first bill if it falls outside the new bounds. Under
// ResizeExplicit only the ceiling changes; existing bills are untouched.
func (s *Service) SetCapacity(n int) error {
	if n < 1 || n > 4 {
		return ErrInvalidCapacity
	}
	s.capacity = n

	if s.policy == ResizeAuto {
		for len(s.bills) < n {
			s.bills = append(s.bills, model.NewBill(id.New()))
		}
		if len(s.bills) > n {
			s.bills = s.bills[:n]
			if s.current >= n {
				s.current = 0
			}
		}
	}

	s.snapshot()
	return nil
}

// AddRecord appends an empty bill and selects it. Only explicit-resize
// sets support this; the add is rejected once the set is at capacity.
func (s *Service) AddRecord() error {
	if s.policy != ResizeExplicit {
		return ErrAutoManaged
	}
	if len(s.bills) >= s.capacity {
		return ErrCapacityExceeded
	}
	s.bills = append(s.bills, model.NewBill(id.New()))
	s.current = len(s.bills) - 1
	s.snapshot()
	return nil
}

// RemoveRecord deletes the bill at index. Removing the last remaining
// bill is a silent no-op.
func (s *Service) RemoveRecord(index int) error {
	if s.policy != ResizeExplicit {
		return ErrAutoManaged
	}
	if len(s.bills) <= 1 {
		return nil
	}
	if index < 0 || index >= len(s.bills) {
		return ErrIndexOutOfRange
	}
	s.bills = append(s.bills[:index], s.bills[index+1:]...)
	if s.current >= len(s.bills) {
		s.current = len(s.bills) - 1
	}
	s.snapshot()
	return nil
}

// UpdateField replaces one field's text on one bill. No validation at
// this layer; validation is deferred to generation time.
func (s *Service) UpdateField(index int, field model.Field, value string) error {
	if index < 0 || index >= len(s.bills) {
		return ErrIndexOutOfRange
	}
	if err := s.bills[index].FormData.Set(field, value); err != nil {
		return err
	}
	s.snapshot()
	return nil
}

// SelectCurrent switches the current bill. Out-of-range indices are
// rejected so the selection invariant stays machine-checkable.
func (s *Service) SelectCurrent(index int) error {
	if index < 0 || index >= len(s.bills) {
		return ErrIndexOutOfRange
	}
	s.current = index
	return nil
}

// Reset drops all entered data and clears the persisted snapshot. Auto
// sets keep their capacity and come back as that many empty bills;
// explicit sets come back as a single bill at capacity 1.
func (s *Service) Reset() {
	if s.policy == ResizeAuto {
		bills := make([]model.Bill, 0, s.capacity)
		for i := 0; i < s.capacity; i++ {
			bills = append(bills, model.NewBill(id.New()))
		}
		s.bills = bills
	} else {
		s.bills = []model.Bill{model.NewBill(id.New())}
		s.capacity = 1
	}
	s.current = 0
	s.stagedQuantity = ""
	s.stagedPrice = ""

	if s.persist != nil {
		if err := s.persist.Reset(); err != nil {
			fmt.Fprintf(s.warn, "warning: failed to clear snapshot: %v\n", err)
		}
	}
}

// snapshot persists the whole set, best effort. A write failure is logged
// and otherwise ignored; the in-memory state is already updated.
func (s *Service) snapshot() {
	if s.persist == nil {
		return
	}
	if err := s.persist.Snapshot(s.bills, s.capacity); err != nil {
		fmt.Fprintf(s.warn, "warning: failed to write snapshot: %v\n", err)
	}
}
