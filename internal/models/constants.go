package models

// Dialect names.
const (
	DialectFull  Dialect = "FULL"
	DialectBasic Dialect = "BASIC"
)

// Generation modes for receipt numbers and client ids.
const (
	ModeAutomatic = "AUTOMATIC"
	ModeManual    = "MANUAL"
)

// Fixed values written into generated debt bases.
const (
	NetworkCode     = "400"
	CompanyCode     = "0000"
	CurrencyCode    = "0"
	BasicBatch      = "00001"
	BasicConcept    = "001"
	ReceiptPrefix   = "IDFACTURABASE00"
	ReceiptWidth    = 20
	BasicReceiptLen = 5
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionOutputFile = 0644
)
