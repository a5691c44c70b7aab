package debtbase

import (
	"regexp"

	"fjacquet/siro-files/internal/dateutils"
	"fjacquet/siro-files/internal/fileutils"
	"fjacquet/siro-files/internal/fixedwidth"
	"fjacquet/siro-files/internal/layout"
	"fjacquet/siro-files/internal/models"
)

// DetailLine is a detail record found by sniffing, with its dialect.
type DetailLine struct {
	Dialect models.Dialect
	Line    string
}

// Source returns the positional offsets for the line's dialect.
func (d DetailLine) Source() layout.DetailSource {
	if d.Dialect == models.DialectBasic {
		return layout.BasicDetailSource
	}
	return layout.FullDetailSource
}

// IsFullDetail reports whether line is a FULL detail: 280 characters
// starting with '5'.
func IsFullDetail(line string) bool {
	return fixedwidth.Width(line) == layout.FullWidth && fixedwidth.Marker(line) == layout.FullDetailMarker
}

// IsBasicDetail reports whether line is a BASIC detail: 131 characters
// starting with '1'.
func IsBasicDetail(line string) bool {
	return fixedwidth.Width(line) == layout.BasicWidth && fixedwidth.Marker(line) == layout.BasicDetailMarker
}

// SniffDetail returns the first FULL detail of content or, when there is
// none, the first BASIC detail. The interchange format carries no dialect
// tag, so line length and leading marker decide.
func SniffDetail(content string) (DetailLine, bool) {
	lines := fileutils.NonEmptyLines(content)
	for _, l := range lines {
		if IsFullDetail(l) {
			return DetailLine{Dialect: models.DialectFull, Line: l}, true
		}
	}
	for _, l := range lines {
		if IsBasicDetail(l) {
			return DetailLine{Dialect: models.DialectBasic, Line: l}, true
		}
	}
	return DetailLine{}, false
}

var (
	eightDigits  = regexp.MustCompile(`\d{8}`)
	compactShape = regexp.MustCompile(`^(19|20)\d{6}$`)
)

// FirstDueDate extracts the first due date (YYYYMMDD) of an uploaded debt
// base, trying in order: the FULL detail's date field, a date-shaped run on
// the FULL detail, the BASIC detail's YYMMDD field, a date-shaped run on the
// BASIC detail, a date-shaped run anywhere. It returns "" when nothing fits.
func FirstDueDate(content string) string {
	lines := fileutils.NonEmptyLines(content)
	if len(lines) == 0 {
		return ""
	}

	for _, l := range lines {
		if !IsFullDetail(l) {
			continue
		}
		candidate := fixedwidth.Slice(l, layout.FullDetailSource.DueDates[0])
		if len(candidate) == 8 && fixedwidth.IsDigits(candidate) {
			return candidate
		}
		if hit := firstCompactDate(l); hit != "" {
			return hit
		}
		break
	}

	for _, l := range lines {
		if !IsBasicDetail(l) {
			continue
		}
		candidate := fixedwidth.Slice(l, layout.BasicDetailSource.DueDates[0])
		if len(candidate) == 6 && fixedwidth.IsDigits(candidate) {
			if expanded, ok := dateutils.ExpandShort(candidate); ok {
				return expanded
			}
		}
		if hit := firstCompactDate(l); hit != "" {
			return hit
		}
		break
	}

	return firstCompactDate(content)
}

func firstCompactDate(s string) string {
	for _, m := range eightDigits.FindAllString(s, -1) {
		if compactShape.MatchString(m) {
			return m
		}
	}
	return ""
}
