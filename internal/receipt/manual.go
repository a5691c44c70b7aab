package receipt

import (
	"regexp"

	"fjacquet/siro-files/internal/models"
)

var (
	basicManual      = regexp.MustCompile(`^\d{5}$`)
	fullManual       = regexp.MustCompile(`^[A-Z0-9\s]{15}\d{5}$`)
	fullManualUnique = regexp.MustCompile(`^[A-Z0-9\s]{15}0\d{4}$`)
	fullManualRepeat = regexp.MustCompile(`^[A-Z0-9\s]{15}[0-9]\d{4}$`)
)

// Messages returned by ManualError.
const (
	MsgBasicShape   = "in BASIC format the receipt number must have exactly 5 digits"
	MsgFullLength   = "the receipt number must have 20 characters"
	MsgFullRepeated = "for repeated client ids the 16th digit must be between 1 and 9"
	MsgFullUnique   = "for unique client ids the 16th digit must be 0"
	MsgFullShape    = "invalid receipt number for the FULL format"
)

// ValidateManual checks an operator-entered receipt number. BASIC numbers
// are exactly five digits. FULL numbers are 15 uppercase alphanumerics or
// spaces followed by five digits; when siblings (the client ids of the same
// convention) are given and clientID occurs once among them, the first of
// those digits must be '0'.
func ValidateManual(number string, dialect models.Dialect, clientID string, siblings []string) bool {
	if dialect == models.DialectBasic {
		return basicManual.MatchString(number)
	}
	if !fullManual.MatchString(number) {
		return false
	}
	if clientID != "" && len(siblings) > 0 && count(siblings, clientID) == 1 {
		return number[15] == '0'
	}
	return true
}

// ManualError returns the operator-facing message for an invalid manual
// receipt number, or "" when it is valid.
func ManualError(number string, dialect models.Dialect, clientID string, siblings []string) string {
	if ValidateManual(number, dialect, clientID, siblings) {
		return ""
	}
	if dialect == models.DialectBasic {
		return MsgBasicShape
	}
	repeated := count(siblings, clientID) > 1
	switch {
	case len(number) != models.ReceiptWidth:
		return MsgFullLength
	case repeated && !fullManualRepeat.MatchString(number):
		return MsgFullRepeated
	case !repeated && !fullManualUnique.MatchString(number):
		return MsgFullUnique
	default:
		return MsgFullShape
	}
}

func count(ids []string, id string) int {
	n := 0
	for _, v := range ids {
		if v == id {
			n++
		}
	}
	return n
}
