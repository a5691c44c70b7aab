package layout

// FullHeader is the FULL (280) header record.
var FullHeader = Record{
	Name:  "FULL header",
	Width: FullWidth,
	Fields: []Field{
		{Key: KeyRecordType, Name: "Record Type", Start: 1, End: 1, Kind: Numeric, Description: "Record type (0)"},
		{Key: KeyNetworkCode, Name: "Network Code", Start: 2, End: 4, Kind: Numeric, Description: "Network code (400)"},
		{Key: KeyCompanyCode, Name: "Company Code", Start: 5, End: 8, Kind: Numeric, Description: "Company code (0000)"},
		{Key: KeyFileDate, Name: "File Date", Start: 9, End: 16, Kind: Numeric, Description: "File date YYYYMMDD"},
		{Key: KeyFiller, Name: "Filler", Start: 17, End: 280, Kind: Alphanumeric, Description: "Filler (17=1, rest=0)"},
	},
}

// FullDetail is the FULL (280) detail record.
var FullDetail = Record{
	Name:  "FULL detail",
	Width: FullWidth,
	Fields: []Field{
		{Key: KeyRecordType, Name: "Record Type", Start: 1, End: 1, Kind: Numeric, Description: "Record type (5)"},
		{Key: KeyReferenceNumber, Name: "Reference Number", Start: 2, End: 20, Kind: Numeric, Description: "Client id (9) + convention id (10)"},
		{Key: KeyInvoiceID, Name: "Invoice ID", Start: 21, End: 40, Kind: Alphanumeric, Description: "Invoice / receipt id"},
		{Key: KeyCurrencyCode, Name: "Currency Code", Start: 41, End: 41, Kind: Numeric, Description: "Currency code (0)"},
		{Key: KeyFirstDueDate, Name: "First Due Date", Start: 42, End: 49, Kind: Numeric, Description: "First due date YYYYMMDD"},
		{Key: KeyFirstAmount, Name: "First Amount", Start: 50, End: 60, Kind: Numeric, Description: "First amount, cents"},
		{Key: KeySecondDueDate, Name: "Second Due Date", Start: 61, End: 68, Kind: Numeric, Description: "Second due date YYYYMMDD"},
		{Key: KeySecondAmount, Name: "Second Amount", Start: 69, End: 79, Kind: Numeric, Description: "Second amount, cents"},
		{Key: KeyThirdDueDate, Name: "Third Due Date", Start: 80, End: 87, Kind: Numeric, Description: "Third due date YYYYMMDD"},
		{Key: KeyThirdAmount, Name: "Third Amount", Start: 88, End: 98, Kind: Numeric, Description: "Third amount, cents"},
		{Key: KeyFiller1, Name: "Filler 1", Start: 99, End: 117, Kind: Numeric, Description: "Filler 1 (zeros)"},
		{Key: KeyReferenceRepeat, Name: "Previous Reference", Start: 118, End: 136, Kind: Alphanumeric, Description: "Reference number repeated"},
		{Key: KeyTicketMessage, Name: "Ticket Message", Start: 137, End: 176, Kind: Alphanumeric, Description: "Primary (15) + secondary (25) message"},
		{Key: KeyScreenMessage, Name: "Screen Message", Start: 177, End: 191, Kind: Alphanumeric, Description: "Screen message"},
		{Key: KeyBarcode, Name: "Barcode", Start: 192, End: 251, Kind: Alphanumeric, Description: "Barcode placeholder"},
		{Key: KeyFiller2, Name: "Filler 2", Start: 252, End: 280, Kind: Numeric, Description: "Filler 2 (zeros)"},
	},
}

// FullFooter is the FULL (280) footer record.
var FullFooter = Record{
	Name:  "FULL footer",
	Width: FullWidth,
	Fields: []Field{
		{Key: KeyRecordType, Name: "Record Type", Start: 1, End: 1, Kind: Numeric, Description: "Record type (9)"},
		{Key: KeyNetworkCode, Name: "Network Code", Start: 2, End: 4, Kind: Numeric, Description: "Network code (400)"},
		{Key: KeyCompanyCode, Name: "Company Code", Start: 5, End: 8, Kind: Numeric, Description: "Company code (0000)"},
		{Key: KeyFileDate, Name: "File Date", Start: 9, End: 16, Kind: Numeric, Description: "File date YYYYMMDD"},
		{Key: KeyRecordCount, Name: "Record Count", Start: 17, End: 23, Kind: Numeric, Description: "Detail record count"},
		{Key: KeyFiller1, Name: "Filler 1", Start: 24, End: 30, Kind: Numeric, Description: "Filler 1 (zeros)"},
		{Key: KeyTotalAmount, Name: "Total Amount", Start: 31, End: 46, Kind: Numeric, Description: "Sum of first amounts, cents"},
		{Key: KeyFiller2, Name: "Filler 2", Start: 47, End: 280, Kind: Numeric, Description: "Filler 2 (zeros)"},
	},
}

// BasicHeader is the BASIC (131) header record.
var BasicHeader = Record{
	Name:  "BASIC header",
	Width: BasicWidth,
	Fields: []Field{
		{Key: KeyRecordID, Name: "Record Identifier", Start: 1, End: 13, Kind: Alphanumeric, Description: "HRFACTURACION"},
		{Key: KeyEntityCode, Name: "Entity Code", Start: 14, End: 16, Kind: Alphanumeric, Description: "Entity code (spaces)"},
		{Key: KeyProcessDate, Name: "Process Date", Start: 17, End: 22, Kind: Numeric, Description: "Process date YYMMDD"},
		{Key: KeyBatch, Name: "Batch", Start: 23, End: 27, Kind: Numeric, Description: "Batch (00001)"},
		{Key: KeyFiller, Name: "Filler", Start: 28, End: 131, Kind: Alphanumeric, Description: "Filler (spaces)"},
	},
}

// BasicDetail is the BASIC (131) detail record.
var BasicDetail = Record{
	Name:  "BASIC detail",
	Width: BasicWidth,
	Fields: []Field{
		{Key: KeyDebtID, Name: "Debt ID", Start: 1, End: 5, Kind: Numeric, Description: "Concept id + period MMYY"},
		{Key: KeyConcept, Name: "Concept", Start: 6, End: 8, Kind: Numeric, Description: "Concept identifier (001)"},
		{Key: KeyUserID, Name: "User ID", Start: 9, End: 27, Kind: Numeric, Description: "Client id (9) + convention id (10)"},
		{Key: KeyFirstDueDate, Name: "First Due Date", Start: 28, End: 33, Kind: Numeric, Description: "First due date YYMMDD"},
		{Key: KeyFirstAmount, Name: "First Amount", Start: 34, End: 45, Kind: Numeric, Description: "First amount, cents"},
		{Key: KeySecondDueDate, Name: "Second Due Date", Start: 46, End: 51, Kind: Numeric, Description: "Second due date YYMMDD"},
		{Key: KeySecondAmount, Name: "Second Amount", Start: 52, End: 63, Kind: Numeric, Description: "Second amount, cents"},
		{Key: KeyThirdDueDate, Name: "Third Due Date", Start: 64, End: 69, Kind: Numeric, Description: "Third due date YYMMDD"},
		{Key: KeyThirdAmount, Name: "Third Amount", Start: 70, End: 81, Kind: Numeric, Description: "Third amount, cents"},
		{Key: KeyMessages, Name: "Messages", Start: 82, End: 131, Kind: Alphanumeric, Description: "Primary (15) + secondary (25) message"},
	},
}

// BasicFooter is the BASIC (131) footer record.
var BasicFooter = Record{
	Name:  "BASIC footer",
	Width: BasicWidth,
	Fields: []Field{
		{Key: KeyRecordID, Name: "Record Identifier", Start: 1, End: 13, Kind: Alphanumeric, Description: "TRFACTURACION"},
		{Key: KeyRecordCount, Name: "Record Count", Start: 14, End: 21, Kind: Numeric, Description: "Details + header + footer"},
		{Key: KeyFirstTotal, Name: "First Total", Start: 22, End: 39, Kind: Numeric, Description: "First amount total, cents"},
		{Key: KeySecondTotal, Name: "Second Total", Start: 40, End: 57, Kind: Numeric, Description: "Second amount total, cents"},
		{Key: KeyThirdTotal, Name: "Third Total", Start: 58, End: 75, Kind: Numeric, Description: "Third amount total, cents"},
		{Key: KeyFiller, Name: "Filler", Start: 76, End: 131, Kind: Alphanumeric, Description: "Filler (spaces)"},
	},
}

// DetailSource locates the values a barcode is derived from inside one
// detail line of either dialect.
type DetailSource struct {
	ClientID   Field
	AccountID  Field
	InvoiceID  Field
	DueDates   [3]Field
	Amounts    [3]Field
	DateDigits int // 8 (YYYYMMDD) or 6 (YYMMDD)
}

// FullDetailSource holds sub-field offsets inside a FULL detail.
var FullDetailSource = DetailSource{
	ClientID:  Field{Key: "client_id", Start: 2, End: 10, Kind: Numeric},
	AccountID: Field{Key: "convention_id", Start: 11, End: 20, Kind: Numeric},
	InvoiceID: FullDetail.MustField(KeyInvoiceID),
	DueDates: [3]Field{
		FullDetail.MustField(KeyFirstDueDate),
		FullDetail.MustField(KeySecondDueDate),
		FullDetail.MustField(KeyThirdDueDate),
	},
	Amounts: [3]Field{
		FullDetail.MustField(KeyFirstAmount),
		FullDetail.MustField(KeySecondAmount),
		FullDetail.MustField(KeyThirdAmount),
	},
	DateDigits: 8,
}

// BasicDetailSource holds sub-field offsets inside a BASIC detail.
var BasicDetailSource = DetailSource{
	ClientID:  Field{Key: "client_id", Start: 9, End: 17, Kind: Numeric},
	AccountID: Field{Key: "convention_id", Start: 18, End: 27, Kind: Numeric},
	InvoiceID: BasicDetail.MustField(KeyDebtID),
	DueDates: [3]Field{
		BasicDetail.MustField(KeyFirstDueDate),
		BasicDetail.MustField(KeySecondDueDate),
		BasicDetail.MustField(KeyThirdDueDate),
	},
	Amounts: [3]Field{
		BasicDetail.MustField(KeyFirstAmount),
		BasicDetail.MustField(KeySecondAmount),
		BasicDetail.MustField(KeyThirdAmount),
	},
	DateDigits: 6,
}
