// Package rendition builds settlement (rendition) records: one 476-character
// line per collected payment, reconciled back to the creditor.
package rendition

import (
	"fmt"
	"strings"
)

// Class is the settlement behavior of a channel.
type Class int

const (
	// ClassDefault settles on the operator payment date.
	ClassDefault Class = iota
	// ClassCash settles cash collected at a point of sale; the operator
	// supplies the barcode read at the counter.
	ClassCash
	// ClassCardBrand settles on the date files were sent to the card brand.
	ClassCardBrand
	// ClassDirectDebit settles on the first due date of the debt base.
	ClassDirectDebit
)

func (c Class) String() string {
	switch c {
	case ClassCash:
		return "cash"
	case ClassCardBrand:
		return "card-brand"
	case ClassDirectDebit:
		return "direct-debit"
	default:
		return "default"
	}
}

// Online tells when a channel carries a result id and operation reference.
type Online int

const (
	OnlineNever Online = iota
	OnlineWhenEnabled
	OnlineAlways
)

func (o Online) String() string {
	switch o {
	case OnlineWhenEnabled:
		return "when enabled"
	case OnlineAlways:
		return "always"
	default:
		return "never"
	}
}

// Accreditation offsets in business days.
const (
	AccreditationSameDay = 1
	AccreditationCard    = 10
	AccreditationDefault = 3
)

// Channel codes with dedicated behavior.
const (
	ChannelButtonCredit      = "BPC"
	ChannelImputedTransfer   = "TI"
	ChannelLinkOnline        = "LKO"
	ChannelLinkDebt          = "LKV"
	ChannelPagoCuentasDebt   = "PCV"
	ChannelPagoCuentasOnline = "PCO"
)

// Channel describes one payment collection method.
type Channel struct {
	Code              string
	Description       string
	Class             Class
	AccreditationDays int
	ZeroInvoice       bool // invoice id is forced to zeros
	Online            Online
}

var catalogue = []Channel{
	cash("PF", "Pago Fácil"),
	cash("RP", "Rapipago"),
	cash("PP", "Provincia Pagos"),
	cash("CE", "Cobro Express"),
	cash("BM", "Banco Municipal"),
	cash("BR", "Banco de Córdoba"),
	cash("ASJ", "Plus Pagos"),
	{Code: "LK", Description: "Link Pagos", AccreditationDays: AccreditationDefault},
	{Code: "PC", Description: "Pago Mis Cuentas", AccreditationDays: AccreditationDefault},
	{Code: "MC", Description: "Mastercard", Class: ClassCardBrand, AccreditationDays: AccreditationCard},
	{Code: "VS", Description: "Visa", Class: ClassCardBrand, AccreditationDays: AccreditationCard},
	{Code: "MCR", Description: "Mastercard rechazado", AccreditationDays: AccreditationDefault},
	{Code: "VSR", Description: "Visa rechazado", AccreditationDays: AccreditationDefault},
	{Code: "DD+", Description: "Débito Directo", Class: ClassDirectDebit, AccreditationDays: AccreditationSameDay},
	{Code: "DD-", Description: "Reversión Débito Directo", AccreditationDays: AccreditationSameDay},
	{Code: "DDR", Description: "Rechazo Débito Directo", AccreditationDays: AccreditationSameDay},
	{Code: "BPD", Description: "Botón de Pagos Débito", AccreditationDays: AccreditationDefault, Online: OnlineWhenEnabled},
	{Code: ChannelButtonCredit, Description: "Botón de Pagos Crédito", AccreditationDays: AccreditationDefault, Online: OnlineWhenEnabled},
	{Code: "BPR", Description: "Botón de Pagos Rechazado", AccreditationDays: AccreditationDefault},
	{Code: "CEF", Description: "Cobro Express sin factura", AccreditationDays: AccreditationDefault},
	{Code: "RSF", Description: "Rapipago sin factura", AccreditationDays: AccreditationDefault},
	{Code: "FSF", Description: "Pago Fácil sin factura", AccreditationDays: AccreditationDefault},
	{Code: "ASF", Description: "Plus Pagos sin factura", AccreditationDays: AccreditationDefault},
	{Code: "PSF", Description: "Bapro sin factura", AccreditationDays: AccreditationDefault},
	{Code: ChannelPagoCuentasOnline, Description: "PC Online", AccreditationDays: AccreditationDefault, Online: OnlineAlways},
	{Code: ChannelLinkOnline, Description: "LK Online", AccreditationDays: AccreditationDefault, Online: OnlineAlways},
	{Code: ChannelPagoCuentasDebt, Description: "Alta de deuda en PMC en Línea", AccreditationDays: AccreditationDefault},
	{Code: ChannelLinkDebt, Description: "Alta de deuda en LK Pagos en Línea", AccreditationDays: AccreditationDefault},
	{Code: ChannelImputedTransfer, Description: "Transferencia Imputada", AccreditationDays: AccreditationSameDay, ZeroInvoice: true},
	{Code: "TQR", Description: "Pago con QR", AccreditationDays: AccreditationSameDay, Online: OnlineWhenEnabled},
	{Code: "QRE", Description: "QR Estático", AccreditationDays: AccreditationDefault},
	{Code: "DB", Description: "Debin", AccreditationDays: AccreditationSameDay, Online: OnlineWhenEnabled},
}

func cash(code, description string) Channel {
	return Channel{
		Code:              code,
		Description:       description,
		Class:             ClassCash,
		AccreditationDays: AccreditationDefault,
		ZeroInvoice:       true,
	}
}

// linked channels are always selected together.
var linked = map[string]string{
	ChannelLinkDebt:          ChannelLinkOnline,
	ChannelLinkOnline:        ChannelLinkDebt,
	ChannelPagoCuentasDebt:   ChannelPagoCuentasOnline,
	ChannelPagoCuentasOnline: ChannelPagoCuentasDebt,
}

// Channels returns the channel catalogue in display order.
func Channels() []Channel {
	return append([]Channel(nil), catalogue...)
}

// LookupChannel finds a channel by code, case-insensitively.
func LookupChannel(code string) (Channel, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, ch := range catalogue {
		if ch.Code == code {
			return ch, true
		}
	}
	return Channel{}, false
}

// IsCash reports whether code is a cash-collection channel.
func IsCash(code string) bool {
	ch, ok := LookupChannel(code)
	return ok && ch.Class == ClassCash
}

// NormalizeChannels resolves codes against the catalogue, adds the linked
// partner of LKV/LKO and PCV/PCO and drops duplicates, keeping first-seen
// order. Unknown codes are an error.
func NormalizeChannels(codes []string) ([]Channel, error) {
	var out []Channel
	seen := make(map[string]bool, len(codes))
	add := func(ch Channel) {
		if !seen[ch.Code] {
			seen[ch.Code] = true
			out = append(out, ch)
		}
	}

	for _, code := range codes {
		if strings.TrimSpace(code) == "" {
			continue
		}
		ch, ok := LookupChannel(code)
		if !ok {
			return nil, fmt.Errorf("unknown channel '%s'", code)
		}
		add(ch)
		if partner, ok := linked[ch.Code]; ok {
			p, _ := LookupChannel(partner)
			add(p)
		}
	}
	return out, nil
}
