package models

import (
	"github.com/shopspring/decimal"

	"fjacquet/siro-files/internal/layout"
	"fjacquet/siro-files/internal/parsererror"
)

// Header is a parsed FULL header record.
type Header struct {
	Line        int    `csv:"line" yaml:"line"`
	RecordType  string `csv:"record_type" yaml:"record_type"`
	NetworkCode string `csv:"network_code" yaml:"network_code"`
	CompanyCode string `csv:"company_code" yaml:"company_code"`
	FileDate    string `csv:"file_date" yaml:"file_date"`
	Filler      string `csv:"-" yaml:"-"`
}

// NewHeader maps extracted field values onto a Header.
func NewHeader(line int, values map[string]string) *Header {
	return &Header{
		Line:        line,
		RecordType:  values[layout.KeyRecordType],
		NetworkCode: values[layout.KeyNetworkCode],
		CompanyCode: values[layout.KeyCompanyCode],
		FileDate:    values[layout.KeyFileDate],
		Filler:      values[layout.KeyFiller],
	}
}

// Detail is a parsed FULL detail record. Raw keeps the untouched line so the
// rendition builder can reuse positional substrings.
type Detail struct {
	Line            int    `csv:"line" yaml:"line"`
	RecordType      string `csv:"record_type" yaml:"record_type"`
	ReferenceNumber string `csv:"reference_number" yaml:"reference_number"`
	InvoiceID       string `csv:"invoice_id" yaml:"invoice_id"`
	CurrencyCode    string `csv:"currency_code" yaml:"currency_code"`
	FirstDueDate    string `csv:"first_due_date" yaml:"first_due_date"`
	FirstAmount     string `csv:"first_amount" yaml:"first_amount"`
	SecondDueDate   string `csv:"second_due_date" yaml:"second_due_date"`
	SecondAmount    string `csv:"second_amount" yaml:"second_amount"`
	ThirdDueDate    string `csv:"third_due_date" yaml:"third_due_date"`
	ThirdAmount     string `csv:"third_amount" yaml:"third_amount"`
	Filler1         string `csv:"-" yaml:"-"`
	ReferenceRepeat string `csv:"reference_repeat" yaml:"reference_repeat"`
	TicketMessage   string `csv:"ticket_message" yaml:"ticket_message"`
	ScreenMessage   string `csv:"screen_message" yaml:"screen_message"`
	Barcode         string `csv:"barcode" yaml:"barcode"`
	Filler2         string `csv:"-" yaml:"-"`
	Raw             string `csv:"-" yaml:"-"`
}

// NewDetail maps extracted field values onto a Detail.
func NewDetail(line int, raw string, values map[string]string) Detail {
	return Detail{
		Line:            line,
		RecordType:      values[layout.KeyRecordType],
		ReferenceNumber: values[layout.KeyReferenceNumber],
		InvoiceID:       values[layout.KeyInvoiceID],
		CurrencyCode:    values[layout.KeyCurrencyCode],
		FirstDueDate:    values[layout.KeyFirstDueDate],
		FirstAmount:     values[layout.KeyFirstAmount],
		SecondDueDate:   values[layout.KeySecondDueDate],
		SecondAmount:    values[layout.KeySecondAmount],
		ThirdDueDate:    values[layout.KeyThirdDueDate],
		ThirdAmount:     values[layout.KeyThirdAmount],
		Filler1:         values[layout.KeyFiller1],
		ReferenceRepeat: values[layout.KeyReferenceRepeat],
		TicketMessage:   values[layout.KeyTicketMessage],
		ScreenMessage:   values[layout.KeyScreenMessage],
		Barcode:         values[layout.KeyBarcode],
		Filler2:         values[layout.KeyFiller2],
		Raw:             raw,
	}
}

// ClientID returns the 9-digit client id half of the reference number.
func (d Detail) ClientID() string {
	if len(d.ReferenceNumber) < 9 {
		return d.ReferenceNumber
	}
	return d.ReferenceNumber[:9]
}

// ConventionID returns the 10-digit convention id half of the reference number.
func (d Detail) ConventionID() string {
	if len(d.ReferenceNumber) <= 9 {
		return ""
	}
	return d.ReferenceNumber[9:]
}

// FirstAmountValue decodes the first-tier cent field.
func (d Detail) FirstAmountValue() decimal.Decimal {
	return AmountFromCents(d.FirstAmount)
}

// Footer is a parsed FULL footer record.
type Footer struct {
	Line        int    `csv:"line" yaml:"line"`
	RecordType  string `csv:"record_type" yaml:"record_type"`
	NetworkCode string `csv:"network_code" yaml:"network_code"`
	CompanyCode string `csv:"company_code" yaml:"company_code"`
	FileDate    string `csv:"file_date" yaml:"file_date"`
	RecordCount string `csv:"record_count" yaml:"record_count"`
	Filler1     string `csv:"-" yaml:"-"`
	TotalAmount string `csv:"total_amount" yaml:"total_amount"`
	Filler2     string `csv:"-" yaml:"-"`
}

// NewFooter maps extracted field values onto a Footer.
func NewFooter(line int, values map[string]string) *Footer {
	return &Footer{
		Line:        line,
		RecordType:  values[layout.KeyRecordType],
		NetworkCode: values[layout.KeyNetworkCode],
		CompanyCode: values[layout.KeyCompanyCode],
		FileDate:    values[layout.KeyFileDate],
		RecordCount: values[layout.KeyRecordCount],
		Filler1:     values[layout.KeyFiller1],
		TotalAmount: values[layout.KeyTotalAmount],
		Filler2:     values[layout.KeyFiller2],
	}
}

// TotalAmountValue decodes the footer total cent field.
func (f Footer) TotalAmountValue() decimal.Decimal {
	return AmountFromCents(f.TotalAmount)
}

// ParsedFile is the result of parsing one uploaded debt base.
type ParsedFile struct {
	FileName     string                         `yaml:"file_name"`
	Header       *Header                        `yaml:"header,omitempty"`
	Details      []Detail                       `yaml:"details"`
	Footer       *Footer                        `yaml:"footer,omitempty"`
	TotalRecords int                            `yaml:"total_records"`
	Errors       []*parsererror.StructuralError `yaml:"-"`
}

// HasErrors reports whether any structural error was collected.
func (p *ParsedFile) HasErrors() bool {
	return len(p.Errors) > 0
}

// ErrorMessages renders the structural errors, in input order.
func (p *ParsedFile) ErrorMessages() []string {
	out := make([]string, 0, len(p.Errors))
	for _, e := range p.Errors {
		out = append(out, e.Error())
	}
	return out
}

// DetailTotal sums the first-tier amounts of every detail.
func (p *ParsedFile) DetailTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range p.Details {
		total = total.Add(d.FirstAmountValue())
	}
	return total
}
