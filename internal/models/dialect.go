package models

import (
	"fmt"
	"strings"

	"fjacquet/siro-files/internal/layout"
)

// Dialect is one of the two physical record-width variants of a debt base.
type Dialect string

// ParseDialect accepts a dialect name in any case. "BASICO" is accepted as an
// alias of BASIC, as operators type it in Spanish.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(DialectFull):
		return DialectFull, nil
	case string(DialectBasic), "BASICO", "BÁSICO":
		return DialectBasic, nil
	}
	return "", fmt.Errorf("unknown dialect %q (want FULL or BASIC)", s)
}

// Valid reports whether d is FULL or BASIC.
func (d Dialect) Valid() bool {
	return d == DialectFull || d == DialectBasic
}

// Width returns the line width of every record of the dialect.
func (d Dialect) Width() int {
	if d == DialectBasic {
		return layout.BasicWidth
	}
	return layout.FullWidth
}

func (d Dialect) String() string { return string(d) }

// ReceiptMode selects how receipt numbers are obtained.
type ReceiptMode string

// ClientIDMode selects how client ids are obtained.
type ClientIDMode string

const (
	ReceiptAutomatic ReceiptMode = ModeAutomatic
	ReceiptManual    ReceiptMode = ModeManual

	ClientIDAutomatic ClientIDMode = ModeAutomatic
	ClientIDManual    ClientIDMode = ModeManual
)
