package rendition

import (
	"math/rand"
	"strconv"
	"strings"

	"fjacquet/siro-files/internal/dateutils"
	"fjacquet/siro-files/internal/debtbase"
	"fjacquet/siro-files/internal/fixedwidth"
	"fjacquet/siro-files/internal/models"
)

// BarcodeWidth is the width of every settlement barcode.
const BarcodeWidth = 59

// Barcode issuer prefixes.
const (
	Issuer0449 = "0449" // 8-digit amounts
	Issuer0447 = "0447" // 7-digit amounts, padded with "000" after position 44
)

// compactSplit is where the 0447 code receives its "000" padding.
const compactSplit = 44

// barcodeFields are the values a debt-derived barcode is assembled from.
type barcodeFields struct {
	userID    string // 9 digits
	accountID string // 10 digits
	firstDate string // YYMMDD
	deltas    [2]string
	amounts   [3]string // raw digits
}

// OperatorBarcode keeps the digits of an operator-supplied barcode,
// truncated or right-padded with zeros to BarcodeWidth.
func OperatorBarcode(value string) string {
	return fixedwidth.PadRight(fixedwidth.OnlyDigits(value), BarcodeWidth, '0')
}

// ZeroBarcode is used when a non-cash channel has no debt base to read.
func ZeroBarcode() string {
	return strings.Repeat("0", BarcodeWidth)
}

// DebtBarcode derives a barcode from a detail line of the uploaded debt
// base. The issuer dialect is drawn from rng.
func DebtBarcode(detail debtbase.DetailLine, rng *rand.Rand) string {
	if rng.Float64() < 0.5 {
		return encodeBarcode(Issuer0449, readBarcodeFields(detail))
	}
	return encodeBarcode(Issuer0447, readBarcodeFields(detail))
}

func readBarcodeFields(detail debtbase.DetailLine) barcodeFields {
	src := detail.Source()
	line := detail.Line

	var dates [3]string
	for i, f := range src.DueDates {
		dates[i] = debtDate(fixedwidth.Slice(line, f), detail.Dialect)
	}

	out := barcodeFields{
		userID:    fixedwidth.PadLeft(fixedwidth.LastN(fixedwidth.OnlyDigits(fixedwidth.Slice(line, src.ClientID)), 9), 9, '0'),
		accountID: fixedwidth.PadLeft(fixedwidth.LastN(fixedwidth.OnlyDigits(fixedwidth.Slice(line, src.AccountID)), 10), 10, '0'),
		firstDate: "000000",
		deltas:    [2]string{"00", "00"},
	}
	if dates[0] != "" {
		out.firstDate = dateutils.CompactToShort(dates[0])
		for i := 1; i < 3; i++ {
			if dates[i] != "" {
				out.deltas[i-1] = dayDelta(dates[0], dates[i])
			}
		}
	}
	for i, f := range src.Amounts {
		out.amounts[i] = fixedwidth.Slice(line, f)
	}
	return out
}

// encodeBarcode assembles the 59-character code of an issuer dialect.
func encodeBarcode(issuer string, f barcodeFields) string {
	amountWidth := 8
	if issuer == Issuer0447 {
		amountWidth = 7
	}

	var sb strings.Builder
	sb.Grow(BarcodeWidth)
	sb.WriteString(issuer)
	sb.WriteString(f.userID)
	sb.WriteString(f.firstDate)
	sb.WriteString(barcodeAmount(f.amounts[0], amountWidth))
	sb.WriteString(f.deltas[0])
	sb.WriteString(barcodeAmount(f.amounts[1], amountWidth))
	sb.WriteString(f.deltas[1])
	sb.WriteString(barcodeAmount(f.amounts[2], amountWidth))
	sb.WriteString(f.accountID)
	sb.WriteString("00") // check digits

	code := sb.String()
	if issuer == Issuer0447 && len(code) > compactSplit {
		code = code[:compactSplit] + "000" + code[compactSplit:]
	}
	return fixedwidth.PadRight(code, BarcodeWidth, '0')
}

// barcodeAmount keeps the trailing width digits of a cent field.
func barcodeAmount(raw string, width int) string {
	digits := fixedwidth.OnlyDigits(raw)
	return fixedwidth.PadLeft(fixedwidth.LastN(digits, width), width, '0')
}

// debtDate reads a due date field as YYYYMMDD, or "" when it holds too few
// digits.
func debtDate(raw string, dialect models.Dialect) string {
	digits := fixedwidth.OnlyDigits(raw)
	if dialect == models.DialectBasic {
		expanded, ok := dateutils.ExpandShort(digits)
		if !ok {
			return ""
		}
		return expanded
	}
	if len(digits) < 8 {
		return ""
	}
	return digits[:8]
}

// dayDelta returns the days from one YYYYMMDD date to another as two digits.
// Negative spans count as zero and longer spans keep the last two digits.
func dayDelta(from, to string) string {
	f, ok1 := dateutils.ParseCompact(from)
	t, ok2 := dateutils.ParseCompact(to)
	if !ok1 || !ok2 {
		return "00"
	}
	days := dateutils.DaysBetween(f, t)
	if days < 0 {
		days = 0
	}
	return fixedwidth.PadLeft(fixedwidth.LastN(strconv.Itoa(days), 2), 2, '0')
}

// ExternalClientID extracts the payer id of a 0448 cash barcode: digits 5
// to 19. Other barcodes yield "".
func ExternalClientID(barcode string) string {
	digits := fixedwidth.OnlyDigits(barcode)
	if !strings.HasPrefix(digits, "0448") || len(digits) < 19 {
		return ""
	}
	return fixedwidth.PadLeft(digits[4:19], 15, '0')
}
