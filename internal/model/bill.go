package model

// BillKind selects the field schema and deduction rates for a bill set.
type BillKind string

const (
	// KindScrap is the primary variant ("SCRAP BILL", 1.5% dhara).
	KindScrap BillKind = "scrap"
	// KindIngot is the secondary variant ("INGOT BILL", adds a bill-to
	// counterparty field, 1% dhara).
	KindIngot BillKind = "ingot"
)

// Namespace returns the persistence namespace for the kind. The two
// namespaces are independent so scrap and ingot snapshots never collide.
func (k BillKind) Namespace() string {
	if k == KindIngot {
		return "billGenerator2"
	}
	return "billGenerator"
}

// FormData holds one bill's raw entered fields. Numeric-looking fields are
// kept as free-form text; parsing happens only during derivation and a
// malformed value degrades to zero there, never here.
type FormData struct {
	PartyName     string `json:"partyName"`
	BillTo        string `json:"billTo,omitempty"` // ingot only
	Date          string `json:"date"`
	VehicleNumber string `json:"vehicleNumber"`
	BillNumber    string `json:"billNumber"`
	Amount        string `json:"amount"`
	BasicPrice    string `json:"bill"`
	QuantityRecv  string `json:"quanrev"`
	Dust          string `json:"dust"`
	GST           string `json:"gst"`
	TDS2          string `json:"tds2"`
	TDS01         string `json:"tds01"`
	BillingExcess string `json:"be"`
	Dalla         string `json:"dalla"`
}

// Bill is one transaction record: raw form fields plus its line items.
type Bill struct {
	ID       string     `json:"id"`
	FormData FormData   `json:"formData"`
	Items    []LineItem `json:"items"`
}

// NewBill returns an empty bill with the given token.
func NewBill(id string) Bill {
	return Bill{ID: id, FormData: FormData{}, Items: []LineItem{}}
}

// GlobalSettings are deduction toggles shared across every bill in a set.
type GlobalSettings struct {
	IncludeDhara       bool
	IncludeBankCharges bool
}

// DefaultSettings enables both deductions, matching a fresh session.
func DefaultSettings() GlobalSettings {
	return GlobalSettings{IncludeDhara: true, IncludeBankCharges: true}
}
