// Package layout is the static field registry for the debt-base dialects and
// the settlement (rendition) record. Positions are 1-based and inclusive, as
// published by the collection network; receivers validate by fixed offset, so
// these tables are the wire contract.
package layout

// Kind tells the codec how a field is padded.
type Kind int

const (
	Numeric      Kind = iota // right-justified, zero-filled
	Alphanumeric             // left-justified, space-filled
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "alphanumeric"
}

// Field is one fixed-width field.
type Field struct {
	Key         string
	Name        string
	Start       int
	End         int
	Kind        Kind
	Description string
}

// Len returns the declared width of the field.
func (f Field) Len() int { return f.End - f.Start + 1 }

// Record is an ordered, contiguous list of fields with a total width.
type Record struct {
	Name   string
	Width  int
	Fields []Field
}

// Field returns the field with the given key.
func (r Record) Field(key string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// MustField is Field for keys known at compile time.
func (r Record) MustField(key string) Field {
	f, ok := r.Field(key)
	if !ok {
		panic("layout: unknown field " + key + " in " + r.Name)
	}
	return f
}

// Widths of every record family.
const (
	FullWidth       = 280
	BasicWidth      = 131
	SettlementWidth = 476
)

// Record-type markers.
const (
	FullHeaderMarker  = "0"
	FullDetailMarker  = "5"
	FullFooterMarker  = "9"
	BasicDetailMarker = "1"

	BasicHeaderID = "HRFACTURACION"
	BasicFooterID = "TRFACTURACION"
)

// Field keys shared across tables.
const (
	KeyRecordType      = "record_type"
	KeyNetworkCode     = "network_code"
	KeyCompanyCode     = "company_code"
	KeyFileDate        = "file_date"
	KeyFiller          = "filler"
	KeyFiller1         = "filler_1"
	KeyFiller2         = "filler_2"
	KeyReferenceNumber = "reference_number"
	KeyInvoiceID       = "invoice_id"
	KeyCurrencyCode    = "currency_code"
	KeyFirstDueDate    = "first_due_date"
	KeyFirstAmount     = "first_amount"
	KeySecondDueDate   = "second_due_date"
	KeySecondAmount    = "second_amount"
	KeyThirdDueDate    = "third_due_date"
	KeyThirdAmount     = "third_amount"
	KeyReferenceRepeat = "reference_repeat"
	KeyTicketMessage   = "ticket_message"
	KeyScreenMessage   = "screen_message"
	KeyBarcode         = "barcode"
	KeyRecordCount     = "record_count"
	KeyTotalAmount     = "total_amount"
	KeyRecordID        = "record_id"
	KeyEntityCode      = "entity_code"
	KeyProcessDate     = "process_date"
	KeyBatch           = "batch"
	KeyDebtID          = "debt_id"
	KeyConcept         = "concept"
	KeyUserID          = "user_id"
	KeyMessages        = "messages"
	KeyFirstTotal      = "first_total"
	KeySecondTotal     = "second_total"
	KeyThirdTotal      = "third_total"
)
