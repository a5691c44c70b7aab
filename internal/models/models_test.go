package models

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/siro-files/internal/layout"
	"fjacquet/siro-files/internal/parsererror"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		input   string
		want    Dialect
		wantErr bool
	}{
		{"FULL", DialectFull, false},
		{"full", DialectFull, false},
		{" BASIC ", DialectBasic, false},
		{"basico", DialectBasic, false},
		{"", "", true},
		{"XML", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDialect(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestDialectWidth(t *testing.T) {
	assert.Equal(t, 280, DialectFull.Width())
	assert.Equal(t, 131, DialectBasic.Width())
	assert.False(t, Dialect("X").Valid())
}

func TestAmounts(t *testing.T) {
	assert.True(t, IsValidAmount("1000"))
	assert.True(t, IsValidAmount("1000.5"))
	assert.True(t, IsValidAmount("1000.50"))
	assert.False(t, IsValidAmount("1000.505"))
	assert.False(t, IsValidAmount("-1"))
	assert.False(t, IsValidAmount("1,5"))
	assert.False(t, IsValidAmount(""))

	d, err := ParseAmount("1000.50")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1000.5")))

	_, err = ParseAmount("abc")
	assert.Error(t, err)

	assert.Equal(t, "1000.50", AmountText(AmountFromCents("00000100050")))
	assert.True(t, AmountFromCents("").IsZero())
	assert.True(t, AmountFromCents("ABC").IsZero())
	assert.Equal(t, "2001.00", AmountText(SumAmounts("1000.50", "1000.50", "bad")))
}

func TestDetailReference(t *testing.T) {
	d := NewDetail(2, "raw", map[string]string{
		layout.KeyRecordType:      "5",
		layout.KeyReferenceNumber: "1234567890000000042",
		layout.KeyFirstAmount:     "00000100050",
	})
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, "raw", d.Raw)
	assert.Equal(t, "123456789", d.ClientID())
	assert.Equal(t, "0000000042", d.ConventionID())
	assert.Equal(t, "1000.50", AmountText(d.FirstAmountValue()))

	short := Detail{ReferenceNumber: "123"}
	assert.Equal(t, "123", short.ClientID())
	assert.Equal(t, "", short.ConventionID())
}

func TestParsedFile(t *testing.T) {
	pf := &ParsedFile{
		Details: []Detail{{FirstAmount: "00000001000"}, {FirstAmount: "00000000050"}},
	}
	assert.False(t, pf.HasErrors())
	assert.Equal(t, "10.50", AmountText(pf.DetailTotal()))

	pf.Errors = append(pf.Errors, &parsererror.StructuralError{Line: 2, Kind: parsererror.KindUnknownRecord, Marker: "3"})
	assert.True(t, pf.HasErrors())
	assert.Equal(t, []string{"line 2: unknown record type '3'"}, pf.ErrorMessages())

	footer := NewFooter(3, map[string]string{layout.KeyTotalAmount: "0000000000200100"})
	assert.Equal(t, "2001.00", AmountText(footer.TotalAmountValue()))
}

func TestConvention(t *testing.T) {
	c := Convention{ID: "0000000001", Clients: []Client{{ID: "1"}, {ID: "2"}, {ID: "1"}}}
	assert.Equal(t, []string{"1", "2", "1"}, c.ClientIDs())
	assert.Equal(t, 2, c.Occurrences("1"))
	assert.Equal(t, 1, c.Occurrences("2"))
	assert.Equal(t, 0, c.Occurrences("3"))
}

func TestSettlementRecordValues(t *testing.T) {
	rec := SettlementRecord{Channel: "PF", PaymentID: "42"}
	values := rec.Values()
	assert.Equal(t, "PF", values[layout.KeyChannel])
	assert.Equal(t, "42", values[layout.KeyPaymentID])
	for _, f := range layout.Settlement.Fields {
		if f.Key == layout.KeyFiller || f.Key == layout.KeyReserved {
			continue
		}
		_, ok := values[f.Key]
		assert.True(t, ok, "missing value for %s", f.Key)
	}
}

func TestGenerationContextBuilder(t *testing.T) {
	ctx, err := NewGenerationContextBuilder().
		WithDialect("basic").
		WithConvention("0000000001", "123456789", "123456789").
		WithReceipt(1, "00001").
		WithDueTier(1, "2030-01-10", "1000.50").
		WithDueDateFromTime(2, time.Date(2030, 1, 20, 0, 0, 0, 0, time.UTC), "1100").
		WithMessages("PAGO", "", "PANTALLA").
		WithPeriod("0130").
		WithConceptID("3").
		WithReceiptMode(ReceiptManual).
		Build()
	require.NoError(t, err)

	assert.Equal(t, DialectBasic, ctx.Dialect)
	require.Len(t, ctx.Conventions, 1)
	assert.Equal(t, 2, ctx.Conventions[0].RecordCount)
	assert.Equal(t, "00001", ctx.Conventions[0].Clients[1].ReceiptNumber)
	assert.Equal(t, "2030-01-20", ctx.SecondDueDate)
	assert.Equal(t, "1100", ctx.SecondAmount)
	assert.Equal(t, "0130", ctx.Period)
	assert.Equal(t, "3", ctx.ConceptID)
	assert.Equal(t, ReceiptManual, ctx.ReceiptMode)
	assert.Equal(t, 2, ctx.DetailCount())
}

func TestGenerationContextBuilderErrors(t *testing.T) {
	tests := []struct {
		name    string
		builder *GenerationContextBuilder
		wantMsg string
	}{
		{"bad dialect", NewGenerationContextBuilder().WithDialect("XML"), "unknown dialect"},
		{"bad tier", NewGenerationContextBuilder().WithDueTier(4, "", ""), "due tier"},
		{"receipt without convention", NewGenerationContextBuilder().WithReceipt(0, "1"), "no convention"},
		{"receipt out of range", NewGenerationContextBuilder().WithConvention("1", "2").WithReceipt(3, "1"), "out of range"},
		{"zero date", NewGenerationContextBuilder().WithDueDateFromTime(1, time.Time{}, "1"), "zero"},
		{"bad mode", NewGenerationContextBuilder().WithReceiptMode("SOMETIMES"), "receipt mode"},
		{"first error sticks", NewGenerationContextBuilder().WithDialect("XML").WithDueTier(9, "", ""), "unknown dialect"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantMsg), err.Error())
		})
	}
}

func TestGenerationContextBuilderDefaults(t *testing.T) {
	ctx, err := NewGenerationContextBuilder().
		FromContext(GenerationContext{Dialect: DialectFull, Period: "1230"}).
		WithDefaults("PAGO DEUDA", "PAGO DEUDA", "5").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "PAGO DEUDA", ctx.TicketMessage)
	assert.Equal(t, "PAGO DEUDA", ctx.ScreenMessage)
	assert.Equal(t, "5", ctx.ConceptID)
	assert.Equal(t, ReceiptAutomatic, ctx.ReceiptMode)
	assert.Equal(t, ClientIDManual, ctx.ClientIDMode)

	ctx, err = NewGenerationContextBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("0106"), ctx.Period)
}

func TestGenerationContextBuilderDefaultsRecordCount(t *testing.T) {
	ctx, err := NewGenerationContextBuilder().
		FromContext(GenerationContext{Conventions: []Convention{
			{ID: "0000000001", Clients: []Client{{ID: "1"}, {ID: "2"}}},
			{ID: "0000000002", RecordCount: 5},
		}}).
		WithDefaults("PAGO DEUDA", "PAGO DEUDA", "0").
		Build()
	require.NoError(t, err)
	assert.Equal(t, 2, ctx.Conventions[0].RecordCount)
	assert.Equal(t, 5, ctx.Conventions[1].RecordCount)
}
