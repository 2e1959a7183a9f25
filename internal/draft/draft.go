// Package draft keeps named snapshots of a single bill, saved on demand
// (Ctrl+S on scrap bills) separately from the live auto-saved set.
package draft

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/id"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/store"
)

const keySuffix = "_drafts"

// Draft is one saved snapshot of a bill.
type Draft struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	FormData  model.FormData   `json:"formData"`
	Items     []model.LineItem `json:"items"`
	CreatedAt time.Time        `json:"createdAt"`
}

// New snapshots a bill into a draft, named after the party and save date.
func New(bill model.Bill, now time.Time) Draft {
	name := bill.FormData.PartyName
	if name == "" {
		name = "Draft"
	}
	return Draft{
		ID:        id.New(),
		Name:      fmt.Sprintf("%s - %s", name, now.Format("02/01/2006")),
		FormData:  bill.FormData,
		Items:     bill.Items,
		CreatedAt: now,
	}
}

// Log is the append-only draft list for one kind's namespace.
type Log struct {
	kv   *store.KV
	kind model.BillKind
}

// NewLog returns the draft log for a kind.
func NewLog(kv *store.KV, kind model.BillKind) *Log {
	return &Log{kv: kv, kind: kind}
}

func (l *Log) key() string {
	return l.kind.Namespace() + keySuffix
}

// Append adds a draft to the persisted list.
func (l *Log) Append(d Draft) error {
	drafts, err := l.List()
	if err != nil {
		return err
	}
	drafts = append(drafts, d)

	data, err := json.Marshal(drafts)
	if err != nil {
		return fmt.Errorf("marshaling drafts: %w", err)
	}
	return l.kv.Put(l.key(), data)
}

// List returns all saved drafts, oldest first. A missing key yields an
// empty list.
func (l *Log) List() ([]Draft, error) {
	data, err := l.kv.Get(l.key())
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var drafts []Draft
	if err := json.Unmarshal(data, &drafts); err != nil {
		return nil, fmt.Errorf("parsing drafts: %w", err)
	}
	return drafts, nil
}
