package debtbase

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/siro-files/internal/fixedwidth"
	"fjacquet/siro-files/internal/layout"
	"fjacquet/siro-files/internal/logging"
	"fjacquet/siro-files/internal/models"
	"fjacquet/siro-files/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullHeader(date string) string {
	return fixedwidth.Build(layout.FullHeader, map[string]string{
		layout.KeyRecordType:  "0",
		layout.KeyNetworkCode: "400",
		layout.KeyCompanyCode: "0000",
		layout.KeyFileDate:    date,
		layout.KeyFiller:      "1" + strings.Repeat("0", 263),
	})
}

func fullDetail(client, convention, dueDate, amount string) string {
	ref := fixedwidth.PadLeft(client, 9, '0') + fixedwidth.PadLeft(convention, 10, '0')
	return fixedwidth.Build(layout.FullDetail, map[string]string{
		layout.KeyRecordType:      "5",
		layout.KeyReferenceNumber: ref,
		layout.KeyInvoiceID:       "IDFACTURABASE0000130",
		layout.KeyFirstDueDate:    dueDate,
		layout.KeyFirstAmount:     amount,
		layout.KeySecondDueDate:   dueDate,
		layout.KeySecondAmount:    amount,
		layout.KeyThirdDueDate:    dueDate,
		layout.KeyThirdAmount:     amount,
		layout.KeyReferenceRepeat: ref,
		layout.KeyTicketMessage:   "PAGO DEUDA",
		layout.KeyScreenMessage:   "PAGO DEUDA",
	})
}

func fullFooter(date, count, total string) string {
	return fixedwidth.Build(layout.FullFooter, map[string]string{
		layout.KeyRecordType:  "9",
		layout.KeyNetworkCode: "400",
		layout.KeyCompanyCode: "0000",
		layout.KeyFileDate:    date,
		layout.KeyRecordCount: count,
		layout.KeyTotalAmount: total,
	})
}

func TestParseValidFile(t *testing.T) {
	content := strings.Join([]string{
		fullHeader("20300101"),
		fullDetail("123456789", "42", "20300115", "00000100050"),
		fullDetail("987654321", "42", "20300115", "00000100050"),
		fullFooter("20300101", "2", "0000000000200100"),
	}, "\r\n") + "\r\n"

	logger := logging.NewMockLogger()
	p := NewParser(logger)
	result, err := p.Parse(strings.NewReader(content), "base.txt")
	require.NoError(t, err)

	assert.Equal(t, "base.txt", result.FileName)
	assert.Equal(t, 5, result.TotalRecords)
	assert.Empty(t, result.Errors)

	require.NotNil(t, result.Header)
	assert.Equal(t, "0", result.Header.RecordType)
	assert.Equal(t, "400", result.Header.NetworkCode)
	assert.Equal(t, "0000", result.Header.CompanyCode)
	assert.Equal(t, "20300101", result.Header.FileDate)

	require.Len(t, result.Details, 2)
	d := result.Details[0]
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, "123456789", d.ClientID())
	assert.Equal(t, "0000000042", d.ConventionID())
	assert.Equal(t, "IDFACTURABASE0000130", d.InvoiceID)
	assert.Equal(t, "20300115", d.FirstDueDate)
	assert.Equal(t, "PAGO DEUDA", d.ScreenMessage)
	assert.Len(t, d.Raw, layout.FullWidth)

	require.NotNil(t, result.Footer)
	assert.Equal(t, "0000002", result.Footer.RecordCount)
	assert.True(t, result.Footer.TotalAmountValue().Equal(result.DetailTotal()))

	assert.True(t, logger.HasEntry("INFO", "Parsed debt base"))
}

func TestParseWrongLengthLine(t *testing.T) {
	header := fullHeader("20300101")
	shortDetail := fullDetail("123456789", "42", "20300115", "00000100050")[:279]
	footer := fullFooter("20300101", "1", "100050")
	require.Equal(t, "5", shortDetail[:1])

	logger := logging.NewMockLogger()
	result := NewParser(logger).ParseContent("three.txt", header+"\n"+shortDetail+"\n"+footer)

	assert.NotNil(t, result.Header)
	assert.Empty(t, result.Details)
	assert.NotNil(t, result.Footer)
	require.Len(t, result.Errors, 1)

	e := result.Errors[0]
	assert.Equal(t, 2, e.Line)
	assert.Equal(t, parsererror.KindWrongLength, e.Kind)
	assert.Equal(t, 279, e.Length)
	assert.Contains(t, e.Error(), "line 2")
	assert.Len(t, logger.GetEntriesByLevel("WARN"), 1)
}

func TestParseStructuralErrors(t *testing.T) {
	header := fullHeader("20300101")
	secondHeader := fullHeader("20300202")
	footer := fullFooter("20300101", "0", "0")
	unknown := "3" + strings.Repeat("0", 279)

	result := NewParser(logging.NewMockLogger()).ParseContent("bad.txt",
		strings.Join([]string{header, secondHeader, "", unknown, footer, footer}, "\n"))

	require.Len(t, result.Errors, 3)
	assert.Equal(t, parsererror.KindDuplicateHeader, result.Errors[0].Kind)
	assert.Equal(t, 2, result.Errors[0].Line)
	assert.Equal(t, parsererror.KindUnknownRecord, result.Errors[1].Kind)
	assert.Equal(t, "3", result.Errors[1].Marker)
	assert.Equal(t, 4, result.Errors[1].Line)
	assert.Equal(t, parsererror.KindDuplicateFooter, result.Errors[2].Kind)
	assert.Equal(t, 6, result.Errors[2].Line)

	require.NotNil(t, result.Header)
	assert.Equal(t, "20300101", result.Header.FileDate, "first header is kept")
	assert.Equal(t, 6, result.TotalRecords)
}

func TestParseEmptyContent(t *testing.T) {
	result := NewParser(nil).ParseContent("empty.txt", "")
	assert.Nil(t, result.Header)
	assert.Nil(t, result.Footer)
	assert.Empty(t, result.Details)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 1, result.TotalRecords)
}

func TestParseBasicLinesAreWrongLength(t *testing.T) {
	basic := "HRFACTURACION" + strings.Repeat(" ", 118)
	require.Len(t, basic, layout.BasicWidth)

	result := NewParser(nil).ParseContent("basic.txt", basic)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 131, result.Errors[0].Length)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.txt")
	content := fullHeader("20300101") + "\n" + fullDetail("1", "2", "20300115", "1") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	p := NewParser(nil, WithEncoding("latin1"))
	result, err := p.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.FileName)
	assert.Len(t, result.Details, 1)

	_, err = p.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestParseLatin1Content(t *testing.T) {
	detail := []byte(fullDetail("123456789", "42", "20300115", "00000100050"))
	detail[176] = 0xD1 // Latin-1 'Ñ' opening the screen message
	var raw []byte
	raw = append(raw, fullHeader("20300101")+"\n"...)
	raw = append(raw, detail...)
	raw = append(raw, "\n"+fullFooter("20300101", "1", "0000000000100050")+"\n"...)

	tests := []struct {
		encoding string
		screen   string
	}{
		{"latin1", "ÑAGO DEUDA"},
		{"windows-1252", "ÑAGO DEUDA"},
	}
	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			result, err := NewParser(nil, WithEncoding(tt.encoding)).Parse(bytes.NewReader(raw), "latin1.txt")
			require.NoError(t, err)
			assert.Empty(t, result.Errors)
			require.Len(t, result.Details, 1)
			assert.Equal(t, tt.screen, result.Details[0].ScreenMessage)
			assert.Equal(t, "PAGO DEUDA", result.Details[0].TicketMessage)
			require.NotNil(t, result.Footer)
			assert.True(t, IsFullDetail(result.Details[0].Raw))
		})
	}
}

func TestParseUnknownEncoding(t *testing.T) {
	_, err := NewParser(nil, WithEncoding("ebcdic")).Parse(strings.NewReader("x"), "x.txt")
	require.Error(t, err)
	var readErr *parsererror.ReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestParsedDetailMatchesModel(t *testing.T) {
	line := fullDetail("5", "6", "20300115", "00000000700")
	result := NewParser(nil).ParseContent("one.txt", line)
	require.Len(t, result.Details, 1)
	assert.Equal(t, "7.00", models.AmountText(result.Details[0].FirstAmountValue()))
}
