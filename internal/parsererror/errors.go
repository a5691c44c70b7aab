// Package parsererror defines the error types raised while reading, generating
// and settling debt-base files.
package parsererror

import (
	"fmt"
	"sort"
	"strings"
)

// StructuralKind classifies a StructuralError.
type StructuralKind string

const (
	KindWrongLength     StructuralKind = "wrong_length"
	KindUnknownRecord   StructuralKind = "unknown_record_type"
	KindDuplicateHeader StructuralKind = "duplicate_header"
	KindDuplicateFooter StructuralKind = "duplicate_footer"
)

// StructuralError is a per-line problem found while parsing. It never aborts
// a parse; the parser collects them alongside the partial result.
type StructuralError struct {
	Line     int // 1-based line number in the input
	Kind     StructuralKind
	Length   int    // observed line length
	Expected int    // expected line length, for KindWrongLength
	Marker   string // leading record-type marker
}

func (e *StructuralError) Error() string {
	switch e.Kind {
	case KindWrongLength:
		return fmt.Sprintf("line %d: wrong length (%d characters, expected %d)", e.Line, e.Length, e.Expected)
	case KindUnknownRecord:
		return fmt.Sprintf("line %d: unknown record type '%s'", e.Line, e.Marker)
	case KindDuplicateHeader:
		return fmt.Sprintf("line %d: multiple header records found", e.Line)
	case KindDuplicateFooter:
		return fmt.Sprintf("line %d: multiple footer records found", e.Line)
	default:
		return fmt.Sprintf("line %d: %s", e.Line, e.Kind)
	}
}

// FieldValidationError is a business-input violation scoped to one form field.
type FieldValidationError struct {
	Field string
	Msg   string
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// ValidationErrors collects every FieldValidationError of one generation
// request. Generation aborts whenever it is non-empty.
type ValidationErrors []*FieldValidationError

// Add appends a field error.
func (v *ValidationErrors) Add(field, msg string) {
	*v = append(*v, &FieldValidationError{Field: field, Msg: msg})
}

// Fields returns the errors keyed by field. When a field has several errors
// the first one wins.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		if _, exists := out[e.Field]; !exists {
			out[e.Field] = e.Msg
		}
	}
	return out
}

// Has reports whether field has an error.
func (v ValidationErrors) Has(field string) bool {
	_, ok := v.Fields()[field]
	return ok
}

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "no validation errors"
	}
	fields := v.Fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return fmt.Sprintf("%d invalid field(s): %s", len(keys), strings.Join(parts, "; "))
}

// InternalConsistencyError reports a computed record whose width does not
// match its declared layout width.
type InternalConsistencyError struct {
	Record   string
	Expected int
	Actual   int
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("invalid %s length: %d (expected %d)", e.Record, e.Actual, e.Expected)
}

// ReadError wraps a failure to read uploaded content.
type ReadError struct {
	FilePath string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read '%s': %v", e.FilePath, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
