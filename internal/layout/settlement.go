package layout

// Settlement field keys.
const (
	KeyPaymentDate       = "payment_date"
	KeyAccreditationDate = "accreditation_date"
	KeyPaidAmount        = "paid_amount"
	KeyConceptID         = "concept_id"
	KeyChannel           = "channel"
	KeyRejectCode        = "reject_code"
	KeyRejectDesc        = "reject_description"
	KeyInstallments      = "installments"
	KeyCardBrand         = "card_brand"
	KeyPaymentID         = "payment_id"
	KeyResultID          = "result_id"
	KeyOperationRef      = "operation_reference"
	KeyExternalClientID  = "external_client_id"
	KeyTerminalID        = "terminal_id"
	KeyReserved          = "reserved"
)

// Settlement is the 476-character rendition record.
var Settlement = Record{
	Name:  "settlement",
	Width: SettlementWidth,
	Fields: []Field{
		{Key: KeyPaymentDate, Name: "Payment Date", Start: 1, End: 8, Kind: Numeric, Description: "Payment date YYYYMMDD"},
		{Key: KeyAccreditationDate, Name: "Accreditation Date", Start: 9, End: 16, Kind: Numeric, Description: "Accreditation date YYYYMMDD"},
		{Key: KeyFirstDueDate, Name: "First Due Date", Start: 17, End: 24, Kind: Numeric, Description: "First due date YYYYMMDD"},
		{Key: KeyPaidAmount, Name: "Paid Amount", Start: 25, End: 35, Kind: Numeric, Description: "Paid amount, cents"},
		{Key: KeyUserID, Name: "User ID", Start: 36, End: 43, Kind: Numeric, Description: "User id"},
		{Key: KeyConceptID, Name: "Concept ID", Start: 44, End: 44, Kind: Numeric, Description: "Concept id"},
		{Key: KeyBarcode, Name: "Barcode", Start: 45, End: 103, Kind: Numeric, Description: "Barcode"},
		{Key: KeyInvoiceID, Name: "Invoice ID", Start: 104, End: 123, Kind: Alphanumeric, Description: "Invoice id from the debt base"},
		{Key: KeyChannel, Name: "Channel", Start: 124, End: 126, Kind: Alphanumeric, Description: "Payment channel code"},
		{Key: KeyRejectCode, Name: "Reject Code", Start: 127, End: 129, Kind: Alphanumeric, Description: "Reject code"},
		{Key: KeyRejectDesc, Name: "Reject Description", Start: 130, End: 149, Kind: Alphanumeric, Description: "Reject description"},
		{Key: KeyInstallments, Name: "Installments", Start: 150, End: 151, Kind: Alphanumeric, Description: "Installment count, blank when not applicable"},
		{Key: KeyCardBrand, Name: "Card Brand", Start: 152, End: 166, Kind: Alphanumeric, Description: "Card brand"},
		{Key: KeyFiller, Name: "Filler", Start: 167, End: 226, Kind: Alphanumeric, Description: "Filler (spaces)"},
		{Key: KeyPaymentID, Name: "Payment ID", Start: 227, End: 236, Kind: Numeric, Description: "Payment id, unique per batch"},
		{Key: KeyResultID, Name: "Result ID", Start: 237, End: 272, Kind: Alphanumeric, Description: "Online result id (UUID)"},
		{Key: KeyOperationRef, Name: "Operation Reference", Start: 273, End: 372, Kind: Alphanumeric, Description: "Online operation reference"},
		{Key: KeyExternalClientID, Name: "External Client ID", Start: 373, End: 387, Kind: Alphanumeric, Description: "External client id"},
		{Key: KeyTerminalID, Name: "Terminal ID", Start: 388, End: 397, Kind: Alphanumeric, Description: "Terminal id"},
		{Key: KeyReserved, Name: "Reserved", Start: 398, End: 476, Kind: Alphanumeric, Description: "Reserved (spaces)"},
	},
}
