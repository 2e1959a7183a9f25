package model

import "fmt"

// Field identifies one input slot on the bill form. The values match the
// persisted formData keys; FieldQuantity and FieldPrice address the
// transient item-staging inputs, which are not part of FormData.
type Field string

const (
	FieldPartyName     Field = "partyName"
	FieldBillTo        Field = "billTo"
	FieldDate          Field = "date"
	FieldVehicleNumber Field = "vehicleNumber"
	FieldBillNumber    Field = "billNumber"
	FieldAmount        Field = "amount"
	FieldBasicPrice    Field = "bill"
	FieldQuantityRecv  Field = "quanrev"
	FieldDust          Field = "dust"
	FieldGST           Field = "gst"
	FieldTDS2          Field = "tds2"
	FieldTDS01         Field = "tds01"
	FieldBillingExcess Field = "be"
	FieldDalla         Field = "dalla"
	FieldQuantity      Field = "quantity"
	FieldPrice         Field = "price"
)

// Get returns the stored text for a form field.
func (f FormData) Get(field Field) (string, error) {
	switch field {
	case FieldPartyName:
		return f.PartyName, nil
	case FieldBillTo:
		return f.BillTo, nil
	case FieldDate:
		return f.Date, nil
	case FieldVehicleNumber:
		return f.VehicleNumber, nil
	case FieldBillNumber:
		return f.BillNumber, nil
	case FieldAmount:
		return f.Amount, nil
	case FieldBasicPrice:
		return f.BasicPrice, nil
	case FieldQuantityRecv:
		return f.QuantityRecv, nil
	case FieldDust:
		return f.Dust, nil
	case FieldGST:
		return f.GST, nil
	case FieldTDS2:
		return f.TDS2, nil
	case FieldTDS01:
		return f.TDS01, nil
	case FieldBillingExcess:
		return f.BillingExcess, nil
	case FieldDalla:
		return f.Dalla, nil
	}
	return "", fmt.Errorf("unknown form field %q", field)
}

// Set replaces the stored text for a form field. No validation happens
// here; validation is deferred to generation time.
func (f *FormData) Set(field Field, value string) error {
	switch field {
	case FieldPartyName:
		f.PartyName = value
	case FieldBillTo:
		f.BillTo = value
	case FieldDate:
		f.Date = value
	case FieldVehicleNumber:
		f.VehicleNumber = value
	case FieldBillNumber:
		f.BillNumber = value
	case FieldAmount:
		f.Amount = value
	case FieldBasicPrice:
		f.BasicPrice = value
	case FieldQuantityRecv:
		f.QuantityRecv = value
	case FieldDust:
		f.Dust = value
	case FieldGST:
		f.GST = value
	case FieldTDS2:
		f.TDS2 = value
	case FieldTDS01:
		f.TDS01 = value
	case FieldBillingExcess:
		f.BillingExcess = value
	case FieldDalla:
		f.Dalla = value
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

// Label returns the on-screen label for a field. The tds2 slot is labeled
// "Finance" on ingot bills.
func (f Field) Label(kind BillKind) string {
	switch f {
	case FieldPartyName:
		return "Party Name"
	case FieldBillTo:
		return "Bill To"
	case FieldDate:
		return "Date"
	case FieldVehicleNumber:
		return "Vehicle Number"
	case FieldBillNumber:
		return "Bill Number"
	case FieldAmount:
		return "Bill Amount"
	case FieldBasicPrice:
		return "Basic Price"
	case FieldQuantityRecv:
		return "Quantity Received"
	case FieldDust:
		return "Dust"
	case FieldGST:
		return "GST"
	case FieldTDS2:
		if kind == KindIngot {
			return "Finance"
		}
		return "TDS (2%)"
	case FieldTDS01:
		return "TDS (0.1%)"
	case FieldBillingExcess:
		return "Billing Excess"
	case FieldDalla:
		return "Dalla"
	case FieldQuantity:
		return "Quantity"
	case FieldPrice:
		return "Price"
	}
	return string(f)
}
