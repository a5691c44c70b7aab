package rendition

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"fjacquet/siro-files/internal/dateutils"
	"fjacquet/siro-files/internal/debtbase"
	"fjacquet/siro-files/internal/fixedwidth"
	"fjacquet/siro-files/internal/layout"
	"fjacquet/siro-files/internal/logging"
	"fjacquet/siro-files/internal/models"
	"fjacquet/siro-files/internal/parsererror"
)

// Quota selects the installment tier of a button-credit record.
type Quota int

const (
	QuotaNone   Quota = iota
	QuotaSingle       // one installment
	QuotaMulti        // 2 to 6 installments
)

// ImputedTransferDueDate is the first due date of imputed transfers.
const ImputedTransferDueDate = "19000101"

// OperationReferenceSample is attached to online payments.
const OperationReferenceSample = "EJEMPLO ID REFERENCIA DE OPERACION"

// CardBrands are the brands drawn for button-credit records.
var CardBrands = []string{"MASTER", "VISA", "CABAL"}

const paidAmountWidth = 11

// Request is the operator input of one rendition batch.
type Request struct {
	Channels       []string
	PaymentDate    string // YYYY-MM-DD, DD/MM/YYYY or YYYYMMDD
	BrandSendDate  string // card-brand channels
	Barcode        string // cash channels
	DebtBase       string // uploaded debt-base content, may be empty
	PaidAmount     string // decimal; empty means zero
	OnlinePayments bool
	BPCSingle      bool
	BPCMulti       bool
}

// Batch is the output of BuildBatch.
type Batch struct {
	Records      []models.SettlementRecord
	Lines        []string
	Text         string
	FirstDueDate string // extracted from the debt base, "" if none
	Dropped      int
}

// Builder assembles settlement records.
type Builder struct {
	logger       logging.Logger
	rng          *rand.Rand
	strictWidths bool
	nodeID       int64
	attempts     int
}

// Option configures a Builder.
type Option func(*Builder)

// WithRand sets the random source for barcode dialects, card brands,
// installments and result ids.
func WithRand(rng *rand.Rand) Option {
	return func(b *Builder) {
		if rng != nil {
			b.rng = rng
		}
	}
}

// WithSeed seeds the random source. Zero keeps a time-seeded source.
func WithSeed(seed int64) Option {
	return func(b *Builder) {
		if seed != 0 {
			b.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test data, not secrets
		}
	}
}

// WithStrictWidths makes a width mismatch abort the batch instead of
// dropping the record.
func WithStrictWidths(strict bool) Option {
	return func(b *Builder) {
		b.strictWidths = strict
	}
}

// WithPaymentIDNode sets the snowflake node and retry budget used when
// BuildBatch creates its own PaymentIDs.
func WithPaymentIDNode(nodeID int64, attempts int) Option {
	return func(b *Builder) {
		b.nodeID = nodeID
		b.attempts = attempts
	}
}

// NewBuilder creates a builder.
func NewBuilder(logger logging.Logger, opts ...Option) *Builder {
	b := &Builder{
		logger:   logging.OrDefault(logger),
		nodeID:   1,
		attempts: DefaultPaymentIDAttempts,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- test data, not secrets
	}
	return b
}

// SetLogger replaces the logger.
func (b *Builder) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// debtContext is what a batch reads from the uploaded debt base.
type debtContext struct {
	detail       debtbase.DetailLine
	hasDetail    bool
	firstDueDate string
}

func newDebtContext(content string) debtContext {
	detail, ok := debtbase.SniffDetail(content)
	return debtContext{
		detail:       detail,
		hasDetail:    ok,
		firstDueDate: debtbase.FirstDueDate(content),
	}
}

// BuildBatch builds one record per selected channel, or one per selected
// installment tier for the button-credit channel. Payment ids come from ids;
// a nil ids gets a fresh generator.
func (b *Builder) BuildBatch(ids *PaymentIDs, req Request) (*Batch, error) {
	channels, err := NormalizeChannels(req.Channels)
	if err != nil {
		return nil, err
	}
	if req.PaidAmount != "" && !models.IsValidAmount(req.PaidAmount) {
		return nil, fmt.Errorf("invalid paid amount '%s'", req.PaidAmount)
	}
	if ids == nil {
		if ids, err = NewNodePaymentIDs(b.nodeID, b.attempts); err != nil {
			return nil, err
		}
	}

	debt := newDebtContext(req.DebtBase)
	batch := &Batch{FirstDueDate: debt.firstDueDate}

	for _, ch := range channels {
		quotas := []Quota{QuotaNone}
		if ch.Code == ChannelButtonCredit {
			quotas = quotas[:0]
			if req.BPCSingle {
				quotas = append(quotas, QuotaSingle)
			}
			if req.BPCMulti {
				quotas = append(quotas, QuotaMulti)
			}
		}

		for _, quota := range quotas {
			paymentID, err := ids.Next()
			if err != nil {
				return nil, err
			}
			rec, err := b.record(req, debt, ch, quota, paymentID)
			if err != nil {
				return nil, err
			}
			line, err := b.Encode(rec)
			if err != nil {
				batch.Dropped++
				if b.strictWidths {
					return nil, err
				}
				continue
			}
			batch.Records = append(batch.Records, rec)
			batch.Lines = append(batch.Lines, line)
		}
	}

	batch.Text = strings.Join(batch.Lines, "\n")
	b.logger.Info("Built rendition batch",
		logging.Field{Key: logging.FieldCount, Value: len(batch.Lines)},
		logging.Field{Key: logging.FieldChannel, Value: strings.Join(codes(channels), ",")})
	return batch, nil
}

// BuildRecord builds the record of one channel and installment tier.
func (b *Builder) BuildRecord(req Request, ch Channel, quota Quota, paymentID string) (models.SettlementRecord, error) {
	return b.record(req, newDebtContext(req.DebtBase), ch, quota, paymentID)
}

// Encode renders rec as a settlement line.
func (b *Builder) Encode(rec models.SettlementRecord) (string, error) {
	line := fixedwidth.Build(layout.Settlement, rec.Values())
	if fixedwidth.Width(line) != layout.Settlement.Width {
		err := &parsererror.InternalConsistencyError{Record: layout.Settlement.Name, Expected: layout.Settlement.Width, Actual: fixedwidth.Width(line)}
		b.logger.WithError(err).Error("Dropping settlement record with invalid width",
			logging.Field{Key: logging.FieldChannel, Value: rec.Channel},
			logging.Field{Key: logging.FieldExpected, Value: layout.Settlement.Width},
			logging.Field{Key: logging.FieldActual, Value: fixedwidth.Width(line)})
		return "", err
	}
	return line, nil
}

func (b *Builder) record(req Request, debt debtContext, ch Channel, quota Quota, paymentID string) (models.SettlementRecord, error) {
	payment := paymentDate(ch, req, debt.firstDueDate)

	firstDue := ImputedTransferDueDate
	if ch.Code != ChannelImputedTransfer {
		firstDue = debt.firstDueDate
		if firstDue == "" {
			firstDue = req.PaymentDate
		}
		firstDue = dateutils.NormalizeDate(firstDue)
	}

	paid, err := paidAmount(req.PaidAmount)
	if err != nil {
		return models.SettlementRecord{}, err
	}

	rec := models.SettlementRecord{
		PaymentDate:       payment,
		AccreditationDate: accreditationDate(payment, ch.AccreditationDays),
		FirstDueDate:      firstDue,
		PaidAmount:        paid,
		Barcode:           b.barcode(ch, req, debt),
		InvoiceID:         invoiceID(ch, debt),
		Channel:           ch.Code,
		PaymentID:         fixedwidth.PadLeft(fixedwidth.OnlyDigits(paymentID), PaymentIDWidth, '0'),
	}

	if ch.Code == ChannelButtonCredit && quota != QuotaNone {
		rec.Installments = "01"
		if quota == QuotaMulti {
			rec.Installments = fixedwidth.PadLeft(strconv.Itoa(2+b.rng.Intn(5)), 2, '0')
		}
		rec.CardBrand = CardBrands[b.rng.Intn(len(CardBrands))]
	}

	if ch.Online == OnlineAlways || (ch.Online == OnlineWhenEnabled && req.OnlinePayments) {
		id, err := uuid.NewRandomFromReader(b.rng)
		if err != nil {
			return models.SettlementRecord{}, fmt.Errorf("failed to generate result id: %w", err)
		}
		rec.ResultID = id.String()
		rec.OperationReference = OperationReferenceSample
	}

	if ch.Class == ClassCash && req.Barcode != "" {
		rec.ExternalClientID = ExternalClientID(req.Barcode)
	}
	return rec, nil
}

func (b *Builder) barcode(ch Channel, req Request, debt debtContext) string {
	switch {
	case ch.Class == ClassCash:
		return OperatorBarcode(req.Barcode)
	case debt.hasDetail:
		return DebtBarcode(debt.detail, b.rng)
	default:
		return ZeroBarcode()
	}
}

// paymentDate picks the settlement date of a channel class.
func paymentDate(ch Channel, req Request, firstDueDate string) string {
	switch ch.Class {
	case ClassCardBrand:
		return dateutils.NormalizeDate(req.BrandSendDate)
	case ClassDirectDebit:
		return dateutils.NormalizeDate(firstDueDate)
	default:
		return dateutils.NormalizeDate(req.PaymentDate)
	}
}

func accreditationDate(payment string, days int) string {
	if payment == dateutils.ZeroDate {
		return dateutils.ZeroDate
	}
	return dateutils.AddBusinessDays(payment, days)
}

// invoiceID copies the invoice id of the debt base. FULL bases give their
// raw 20 characters, BASIC bases 15 zeros and the last 5 digits of the debt
// id.
func invoiceID(ch Channel, debt debtContext) string {
	zeros := strings.Repeat("0", models.ReceiptWidth)
	switch {
	case ch.ZeroInvoice:
		return zeros
	case !debt.hasDetail:
		return ""
	case debt.detail.Dialect == models.DialectBasic:
		raw := fixedwidth.Slice(debt.detail.Line, debt.detail.Source().InvoiceID)
		last := fixedwidth.PadLeft(fixedwidth.LastN(fixedwidth.OnlyDigits(raw), models.BasicReceiptLen), models.BasicReceiptLen, '0')
		return zeros[:models.ReceiptWidth-models.BasicReceiptLen] + last
	default:
		return fixedwidth.Slice(debt.detail.Line, debt.detail.Source().InvoiceID)
	}
}

// paidAmount encodes an amount as rounded cents.
func paidAmount(amount string) (string, error) {
	if amount == "" {
		return "", nil
	}
	d, err := models.ParseAmount(amount)
	if err != nil {
		return "", err
	}
	return fixedwidth.PadLeft(d.Shift(2).Round(0).StringFixed(0), paidAmountWidth, '0'), nil
}

func codes(channels []Channel) []string {
	out := make([]string, len(channels))
	for i, ch := range channels {
		out[i] = ch.Code
	}
	return out
}
