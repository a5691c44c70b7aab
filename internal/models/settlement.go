package models

import "fjacquet/siro-files/internal/layout"

// SettlementRecord holds the field values of one rendition line before
// encoding. Values are expected pre-formatted; the encoder only pads.
type SettlementRecord struct {
	PaymentDate        string
	AccreditationDate  string
	FirstDueDate       string
	PaidAmount         string
	UserID             string
	ConceptID          string
	Barcode            string
	InvoiceID          string
	Channel            string
	RejectCode         string
	RejectDescription  string
	Installments       string
	CardBrand          string
	PaymentID          string
	ResultID           string
	OperationReference string
	ExternalClientID   string
	TerminalID         string
}

// Values maps the record onto the settlement layout keys.
func (s SettlementRecord) Values() map[string]string {
	return map[string]string{
		layout.KeyPaymentDate:       s.PaymentDate,
		layout.KeyAccreditationDate: s.AccreditationDate,
		layout.KeyFirstDueDate:      s.FirstDueDate,
		layout.KeyPaidAmount:        s.PaidAmount,
		layout.KeyUserID:            s.UserID,
		layout.KeyConceptID:         s.ConceptID,
		layout.KeyBarcode:           s.Barcode,
		layout.KeyInvoiceID:         s.InvoiceID,
		layout.KeyChannel:           s.Channel,
		layout.KeyRejectCode:        s.RejectCode,
		layout.KeyRejectDesc:        s.RejectDescription,
		layout.KeyInstallments:      s.Installments,
		layout.KeyCardBrand:         s.CardBrand,
		layout.KeyPaymentID:         s.PaymentID,
		layout.KeyResultID:          s.ResultID,
		layout.KeyOperationRef:      s.OperationReference,
		layout.KeyExternalClientID:  s.ExternalClientID,
		layout.KeyTerminalID:        s.TerminalID,
	}
}
