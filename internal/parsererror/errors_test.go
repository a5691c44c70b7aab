package parsererror

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuralError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuralError
		expected string
	}{
		{
			name:     "wrong length",
			err:      &StructuralError{Line: 2, Kind: KindWrongLength, Length: 279, Expected: 280},
			expected: "line 2: wrong length (279 characters, expected 280)",
		},
		{
			name:     "unknown marker",
			err:      &StructuralError{Line: 7, Kind: KindUnknownRecord, Marker: "3"},
			expected: "line 7: unknown record type '3'",
		},
		{
			name:     "duplicate header",
			err:      &StructuralError{Line: 3, Kind: KindDuplicateHeader},
			expected: "line 3: multiple header records found",
		},
		{
			name:     "duplicate footer",
			err:      &StructuralError{Line: 9, Kind: KindDuplicateFooter},
			expected: "line 9: multiple footer records found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	errs.Add("period", "invalid format (MMYY)")
	errs.Add("conceptId", "must be a digit from 0 to 9")
	errs.Add("period", "second message ignored")

	assert.Len(t, errs, 3)
	assert.True(t, errs.Has("period"))
	assert.False(t, errs.Has("firstAmount"))
	assert.Equal(t, "invalid format (MMYY)", errs.Fields()["period"])
	assert.Equal(t, "2 invalid field(s): conceptId: must be a digit from 0 to 9; period: invalid format (MMYY)", errs.Error())

	var asErr error = errs
	var target ValidationErrors
	assert.True(t, errors.As(asErr, &target))
}

func TestInternalConsistencyError(t *testing.T) {
	err := &InternalConsistencyError{Record: "FULL detail", Expected: 280, Actual: 281}
	assert.Equal(t, "invalid FULL detail length: 281 (expected 280)", err.Error())
}

func TestReadError_Unwrap(t *testing.T) {
	err := &ReadError{FilePath: "base.txt", Err: io.ErrUnexpectedEOF}
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Contains(t, err.Error(), "base.txt")
}
