package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allRecords() []Record {
	return []Record{FullHeader, FullDetail, FullFooter, BasicHeader, BasicDetail, BasicFooter, Settlement}
}

func TestRecordsAreContiguous(t *testing.T) {
	for _, rec := range allRecords() {
		t.Run(rec.Name, func(t *testing.T) {
			require.NotEmpty(t, rec.Fields)
			next := 1
			total := 0
			for _, f := range rec.Fields {
				assert.Equal(t, next, f.Start, "field %s starts out of order", f.Key)
				assert.GreaterOrEqual(t, f.End, f.Start, "field %s", f.Key)
				next = f.End + 1
				total += f.Len()
			}
			assert.Equal(t, rec.Width, total)
			assert.Equal(t, rec.Width, next-1)
		})
	}
}

func TestRecordKeysAreUnique(t *testing.T) {
	for _, rec := range allRecords() {
		seen := map[string]bool{}
		for _, f := range rec.Fields {
			assert.False(t, seen[f.Key], "%s: duplicate key %s", rec.Name, f.Key)
			seen[f.Key] = true
		}
	}
}

func TestFieldLen(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  int
	}{
		{"single", Field{Start: 1, End: 1}, 1},
		{"reference", FullDetail.MustField(KeyReferenceNumber), 19},
		{"full amount", FullDetail.MustField(KeyFirstAmount), 11},
		{"basic amount", BasicDetail.MustField(KeyFirstAmount), 12},
		{"basic footer total", BasicFooter.MustField(KeyFirstTotal), 18},
		{"barcode", Settlement.MustField(KeyBarcode), 59},
		{"operation ref", Settlement.MustField(KeyOperationRef), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.Len())
		})
	}
}

func TestRecordField(t *testing.T) {
	f, ok := FullFooter.Field(KeyTotalAmount)
	require.True(t, ok)
	assert.Equal(t, 31, f.Start)
	assert.Equal(t, 16, f.Len())
	assert.Equal(t, Numeric, f.Kind)

	_, ok = FullFooter.Field("missing")
	assert.False(t, ok)
	assert.Panics(t, func() { FullFooter.MustField("missing") })
}

func TestDetailSources(t *testing.T) {
	assert.Equal(t, 9, FullDetailSource.ClientID.Len())
	assert.Equal(t, 10, FullDetailSource.AccountID.Len())
	assert.Equal(t, 9, BasicDetailSource.ClientID.Len())
	assert.Equal(t, 10, BasicDetailSource.AccountID.Len())
	assert.Equal(t, 42, FullDetailSource.DueDates[0].Start)
	assert.Equal(t, 28, BasicDetailSource.DueDates[0].Start)
	assert.Equal(t, 70, BasicDetailSource.Amounts[2].Start)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "numeric", Numeric.String())
	assert.Equal(t, "alphanumeric", Alphanumeric.String())
}
