// Package nav is the field navigation policy: a fixed cyclic ordering over
// field identifiers plus the key-to-intent contract consumed by the UI
// layer. It is pure lookup logic and never touches input widgets itself.
package nav

import "github.com/krishgarg-code/BILL-GENRATOR/internal/model"

var scrapOrder = []model.Field{
	model.FieldPartyName,
	model.FieldBillNumber,
	model.FieldAmount,
	model.FieldBasicPrice,
	model.FieldQuantityRecv,
	model.FieldDust,
	model.FieldDate,
	model.FieldVehicleNumber,
	model.FieldGST,
	model.FieldTDS2,
	model.FieldTDS01,
	model.FieldBillingExcess,
	model.FieldDalla,
	model.FieldQuantity,
	model.FieldPrice,
}

var ingotOrder = []model.Field{
	model.FieldPartyName,
	model.FieldBillTo,
	model.FieldBillNumber,
	model.FieldAmount,
	model.FieldBasicPrice,
	model.FieldQuantityRecv,
	model.FieldDust,
	model.FieldDate,
	model.FieldVehicleNumber,
	model.FieldGST,
	model.FieldTDS2,
	model.FieldTDS01,
	model.FieldBillingExcess,
	model.FieldDalla,
	model.FieldQuantity,
	model.FieldPrice,
}

// Policy is the cyclic field ordering for one bill kind.
type Policy struct {
	order []model.Field
	index map[model.Field]int
}

// ForKind returns the navigation policy for a bill kind.
func ForKind(kind model.BillKind) Policy {
	order := scrapOrder
	if kind == model.KindIngot {
		order = ingotOrder
	}
	index := make(map[model.Field]int, len(order))
	for i, f := range order {
		index[f] = i
	}
	return Policy{order: order, index: index}
}

// Order returns the field identifiers in navigation order.
func (p Policy) Order() []model.Field {
	return p.order
}

// Next returns the field after id, wrapping from last to first. An unknown
// id yields no target.
func (p Policy) Next(id model.Field) (model.Field, bool) {
	i, ok := p.index[id]
	if !ok {
		return "", false
	}
	return p.order[(i+1)%len(p.order)], true
}

// Prev returns the field before id, wrapping from first to last.
func (p Policy) Prev(id model.Field) (model.Field, bool) {
	i, ok := p.index[id]
	if !ok {
		return "", false
	}
	return p.order[(i-1+len(p.order))%len(p.order)], true
}
