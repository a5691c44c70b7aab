// Package fixedwidth slices and assembles fixed-width records against the
// field tables of the layout package.
package fixedwidth

import (
	"strings"
	"unicode/utf8"

	"fjacquet/siro-files/internal/layout"
)

// Width returns the number of characters in s. Decoded Latin-1 text holds
// multi-byte runes, so record widths are never measured in bytes.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}

// Slice returns the raw characters of f inside line, clamped to the line's
// bounds. Short lines yield a short (possibly empty) result.
func Slice(line string, f layout.Field) string {
	start := f.Start - 1
	end := f.End
	if start < 0 {
		start = 0
	}
	if isASCII(line) {
		if start >= len(line) {
			return ""
		}
		if end > len(line) {
			end = len(line)
		}
		return line[start:end]
	}

	runes := []rune(line)
	if start >= len(runes) {
		return ""
	}
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}

// Marker returns the first character of line, the record type of every layout.
func Marker(line string) string {
	r, size := utf8.DecodeRuneInString(line)
	if size == 0 {
		return ""
	}
	return string(r)
}

// Extract returns the trimmed value of f inside line.
func Extract(line string, f layout.Field) string {
	return strings.TrimSpace(Slice(line, f))
}

// ExtractAll maps every field key of rec to its trimmed value in line.
func ExtractAll(line string, rec layout.Record) map[string]string {
	out := make(map[string]string, len(rec.Fields))
	for _, f := range rec.Fields {
		out[f.Key] = Extract(line, f)
	}
	return out
}

// Inject pads or truncates value to the width of f. Numeric fields are
// zero-padded on the left, alphanumeric fields space-padded on the right.
// Oversized values keep their leftmost characters.
func Inject(value string, f layout.Field) string {
	if f.Kind == layout.Numeric {
		return PadLeft(value, f.Len(), '0')
	}
	return PadRight(value, f.Len(), ' ')
}

// Build assembles a record from values keyed by field key. Fields without a
// value get their kind's padding.
func Build(rec layout.Record, values map[string]string) string {
	var sb strings.Builder
	sb.Grow(rec.Width)
	for _, f := range rec.Fields {
		sb.WriteString(Inject(values[f.Key], f))
	}
	return sb.String()
}

// PadLeft left-pads s with pad up to width, or keeps the first width
// characters when s is longer.
func PadLeft(s string, width int, pad byte) string {
	n := Width(s)
	if n >= width {
		return head(s, width)
	}
	return strings.Repeat(string(pad), width-n) + s
}

// PadRight right-pads s with pad up to width, or keeps the first width
// characters when s is longer.
func PadRight(s string, width int, pad byte) string {
	n := Width(s)
	if n >= width {
		return head(s, width)
	}
	return s + strings.Repeat(string(pad), width-n)
}

// LastN returns the trailing n characters of s, or s when it is shorter.
func LastN(s string, n int) string {
	if isASCII(s) {
		if len(s) <= n {
			return s
		}
		return s[len(s)-n:]
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

func head(s string, n int) string {
	if isASCII(s) {
		return s[:n]
	}
	return string([]rune(s)[:n])
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// OnlyDigits drops every non-digit character of s.
func OnlyDigits(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatAmount encodes a decimal string ("1000.5") as a zero-padded cent
// integer of the given width ("00000100050" for 11). The integer part is
// left-padded to width-2 and the fraction padded or cut to two digits. When
// the integer part alone overflows, the leftmost width characters are kept.
func FormatAmount(amount string, width int) string {
	integer, fraction, found := strings.Cut(amount, ".")
	if !found {
		fraction = "00"
	} else if i := strings.IndexByte(fraction, '.'); i >= 0 {
		fraction = fraction[:i]
	}
	intWidth := width - 2
	if intWidth < 0 {
		intWidth = 0
	}
	if len(integer) < intWidth {
		integer = strings.Repeat("0", intWidth-len(integer)) + integer
	}
	fraction = PadRight(fraction, 2, '0')
	return PadRight(integer+fraction, width, '0')
}
