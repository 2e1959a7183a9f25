package store

import (
	"encoding/json"
	"strconv"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/id"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
)

// Key suffixes within a kind's namespace. The bills key holds the array
// snapshot; capacity is stored as decimal text. The formData/items pair
// are legacy singular-record keys kept for read compatibility only and
// never written once the array form exists.
const (
	suffixBills    = "_bills"
	suffixCapacity = "_billsPerPage"
	suffixFormData = "_formData"
	suffixItems    = "_items"
)

// Source reports which read strategy produced the loaded state.
type Source string

const (
	SourceSnapshot Source = "snapshot"
	SourceLegacy   Source = "legacy"
	SourceDefault  Source = "default"
)

// Adapter snapshots one kind's bill set into its namespace.
type Adapter struct {
	kv   *KV
	kind model.BillKind
}

// NewAdapter returns an adapter bound to the kind's namespace.
func NewAdapter(kv *KV, kind model.BillKind) *Adapter {
	return &Adapter{kv: kv, kind: kind}
}

func (a *Adapter) key(suffix string) string {
	return a.kind.Namespace() + suffix
}

// Load reads the persisted bill set, trying strategies in order: the
// array-shaped snapshot, then the legacy singular-record keys, then a
// single empty record. A missing or malformed snapshot is never fatal.
func (a *Adapter) Load() ([]model.Bill, int, Source) {
	capacity := a.loadCapacity()

	if bills, ok := a.loadSnapshot(); ok {
		return bills, capacity, SourceSnapshot
	}
	if bill, ok := a.loadLegacy(); ok {
		return []model.Bill{bill}, capacity, SourceLegacy
	}
	return []model.Bill{model.NewBill(id.New())}, capacity, SourceDefault
}

func (a *Adapter) loadSnapshot() ([]model.Bill, bool) {
	data, err := a.kv.Get(a.key(suffixBills))
	if err != nil || data == nil {
		return nil, false
	}
	var bills []model.Bill
	if err := json.Unmarshal(data, &bills); err != nil || len(bills) == 0 {
		return nil, false
	}
	for i := range bills {
		if bills[i].Items == nil {
			bills[i].Items = []model.LineItem{}
		}
	}
	return bills, true
}

func (a *Adapter) loadLegacy() (model.Bill, bool) {
	formRaw, err := a.kv.Get(a.key(suffixFormData))
	if err != nil {
		return model.Bill{}, false
	}
	itemsRaw, err := a.kv.Get(a.key(suffixItems))
	if err != nil {
		return model.Bill{}, false
	}
	if formRaw == nil && itemsRaw == nil {
		return model.Bill{}, false
	}

	bill := model.NewBill(id.New())
	if formRaw != nil {
		if err := json.Unmarshal(formRaw, &bill.FormData); err != nil {
			return model.Bill{}, false
		}
	}
	if itemsRaw != nil {
		if err := json.Unmarshal(itemsRaw, &bill.Items); err != nil {
			return model.Bill{}, false
		}
	}
	if bill.Items == nil {
		bill.Items = []model.LineItem{}
	}
	return bill, true
}

func (a *Adapter) loadCapacity() int {
	data, err := a.kv.Get(a.key(suffixCapacity))
	if err != nil || data == nil {
		return 1
	}
	n, err := strconv.Atoi(string(data))
	if err != nil || n < 1 || n > 4 {
		return 1
	}
	return n
}

// Snapshot writes the whole bill set and capacity. Called after every
// mutation; failures are the caller's to log, not to surface.
func (a *Adapter) Snapshot(bills []model.Bill, capacity int) error {
	data, err := json.Marshal(bills)
	if err != nil {
		return err
	}
	if err := a.kv.Put(a.key(suffixBills), data); err != nil {
		return err
	}
	return a.kv.Put(a.key(suffixCapacity), []byte(strconv.Itoa(capacity)))
}

// Reset deletes the namespace's keys. The ingot namespace also drops the
// legacy singular keys left behind for read compatibility.
func (a *Adapter) Reset() error {
	if err := a.kv.Delete(a.key(suffixBills)); err != nil {
		return err
	}
	if err := a.kv.Delete(a.key(suffixCapacity)); err != nil {
		return err
	}
	if a.kind == model.KindIngot {
		if err := a.kv.Delete(a.key(suffixFormData)); err != nil {
			return err
		}
		if err := a.kv.Delete(a.key(suffixItems)); err != nil {
			return err
		}
	}
	return nil
}
