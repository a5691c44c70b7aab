package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file"
	FieldLine       = "line"
	FieldCount      = "count"
	FieldDialect    = "dialect"
	FieldRecord     = "record"
	FieldChannel    = "channel"
	FieldField      = "field"
	FieldErrorCount = "error_count"
	FieldExpected   = "expected"
	FieldActual     = "actual"
	FieldClientID   = "client_id"
	FieldConvention = "convention_id"
	FieldReceipt    = "receipt_number"
	FieldFormat     = "format"
	FieldOutputFile = "output_file"
)
