// Package generator builds debt-base files from a GenerationContext.
package generator

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/siro-files/internal/dateutils"
	"fjacquet/siro-files/internal/fixedwidth"
	"fjacquet/siro-files/internal/layout"
	"fjacquet/siro-files/internal/logging"
	"fjacquet/siro-files/internal/models"
	"fjacquet/siro-files/internal/parsererror"
	"fjacquet/siro-files/internal/receipt"
)

// Client id range used when ids are generated.
const (
	minClientID = 100000000
	maxClientID = 999999999
)

// Assignment records the receipt number given to one detail line.
type Assignment struct {
	ConventionID  string
	ClientID      string
	ReceiptNumber string
	Line          int // 1-based line number in the generated file
}

// Result is the output of one generation run.
type Result struct {
	Dialect     models.Dialect
	Text        string
	Lines       []string
	Assignments []Assignment
	DetailCount int
	FirstTotal  decimal.Decimal
	Dropped     int // lines dropped for a width mismatch
}

// Generator renders debt-base files.
type Generator struct {
	logger       logging.Logger
	now          func() time.Time
	rng          *rand.Rand
	strictWidths bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock used for file dates and due-date checks.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithRand sets the random source used for generated client ids.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithStrictWidths makes a width mismatch abort the run instead of dropping
// the line.
func WithStrictWidths(strict bool) Option {
	return func(g *Generator) {
		g.strictWidths = strict
	}
}

// NewGenerator creates a generator.
func NewGenerator(logger logging.Logger, opts ...Option) *Generator {
	g := &Generator{
		logger: logging.OrDefault(logger),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(g.now().UnixNano())) // #nosec G404 -- identifiers, not secrets
	}
	return g
}

// SetLogger replaces the logger.
func (g *Generator) SetLogger(logger logging.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Prepare returns a copy of ctx with every convention resized to its record
// count and, in automatic client-id mode, empty client ids filled in.
func (g *Generator) Prepare(ctx models.GenerationContext) models.GenerationContext {
	out := ctx
	out.Conventions = make([]models.Convention, len(ctx.Conventions))
	for i, conv := range ctx.Conventions {
		clients := append([]models.Client(nil), conv.Clients...)
		if conv.RecordCount > 0 {
			switch {
			case len(clients) > conv.RecordCount:
				clients = clients[:conv.RecordCount]
			case len(clients) < conv.RecordCount:
				clients = append(clients, make([]models.Client, conv.RecordCount-len(clients))...)
			}
		}
		if ctx.ClientIDMode == models.ClientIDAutomatic {
			for j := range clients {
				if clients[j].ID == "" {
					clients[j].ID = g.randomClientID()
				}
			}
		}
		conv.Clients = clients
		out.Conventions[i] = conv
	}
	return out
}

func (g *Generator) randomClientID() string {
	n := minClientID + g.rng.Intn(maxClientID-minClientID+1)
	return fixedwidth.PadLeft(strconv.Itoa(n), 9, '0')
}

// Validate prepares ctx and checks it against the clock's current day.
func (g *Generator) Validate(ctx models.GenerationContext) parsererror.ValidationErrors {
	return Validate(g.Prepare(ctx), dateutils.StartOfDay(g.now()))
}

// Generate validates ctx and renders the file. Receipt numbers come from
// session; a nil session gets a fresh one. Validation failures are returned
// as parsererror.ValidationErrors and nothing is rendered.
func (g *Generator) Generate(session *receipt.Session, ctx models.GenerationContext) (*Result, error) {
	prepared := g.Prepare(ctx)
	now := g.now()
	if errs := Validate(prepared, dateutils.StartOfDay(now)); len(errs) > 0 {
		g.logger.Warn("Generation request rejected",
			logging.Field{Key: logging.FieldErrorCount, Value: len(errs)})
		return nil, errs
	}
	if session == nil {
		session = receipt.NewSession(g.logger).WithClock(g.now)
	}

	r := &run{
		gen:     g,
		ctx:     prepared,
		now:     now,
		session: session,
		result:  &Result{Dialect: prepared.Dialect, FirstTotal: decimal.Zero},
		seen:    make(map[occurrenceKey]int),
	}
	if err := r.render(); err != nil {
		return nil, err
	}

	res := r.result
	res.Text = strings.Join(res.Lines, "\n")
	g.logger.Info("Generated debt base",
		logging.Field{Key: logging.FieldDialect, Value: res.Dialect.String()},
		logging.Field{Key: logging.FieldCount, Value: res.DetailCount})
	return res, nil
}

// run holds the state of one Generate call.
type run struct {
	gen     *Generator
	ctx     models.GenerationContext
	now     time.Time
	session *receipt.Session
	result  *Result
	seen    map[occurrenceKey]int
}

// occurrenceKey counts a client id within its convention for one run.
type occurrenceKey struct {
	convention string
	client     string
}

func (r *run) render() error {
	full := r.ctx.Dialect == models.DialectFull

	header := layout.BasicHeader
	headerValues := r.basicHeader()
	if full {
		header, headerValues = layout.FullHeader, r.fullHeader()
	}
	if _, err := r.emit(header, headerValues); err != nil {
		return err
	}

	for _, conv := range r.ctx.Conventions {
		for _, client := range conv.Clients {
			number := r.receiptFor(conv, client)

			rec := layout.BasicDetail
			values := r.basicDetail(conv, client)
			if full {
				rec, values = layout.FullDetail, r.fullDetail(conv, client, number)
			}
			ok, err := r.emit(rec, values)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			r.result.DetailCount++
			r.result.FirstTotal = r.result.FirstTotal.Add(models.SumAmounts(r.ctx.FirstAmount))
			r.result.Assignments = append(r.result.Assignments, Assignment{
				ConventionID:  conv.ID,
				ClientID:      client.ID,
				ReceiptNumber: number,
				Line:          len(r.result.Lines),
			})
		}
	}

	footer := layout.BasicFooter
	footerValues := r.basicFooter()
	if full {
		footer, footerValues = layout.FullFooter, r.fullFooter()
	}
	_, err := r.emit(footer, footerValues)
	return err
}

// emit builds one line and appends it. A width mismatch drops the line, or
// aborts the run in strict mode.
func (r *run) emit(rec layout.Record, values map[string]string) (bool, error) {
	line := fixedwidth.Build(rec, values)
	if fixedwidth.Width(line) != rec.Width {
		err := &parsererror.InternalConsistencyError{Record: rec.Name, Expected: rec.Width, Actual: fixedwidth.Width(line)}
		r.gen.logger.WithError(err).Error("Dropping line with invalid width",
			logging.Field{Key: logging.FieldRecord, Value: rec.Name},
			logging.Field{Key: logging.FieldExpected, Value: rec.Width},
			logging.Field{Key: logging.FieldActual, Value: fixedwidth.Width(line)})
		r.result.Dropped++
		if r.gen.strictWidths {
			return false, err
		}
		return false, nil
	}
	r.result.Lines = append(r.result.Lines, line)
	return true, nil
}

// receiptFor resolves the receipt number of one client. The concept digit is
// forced to '0' for a client id that is unique in its convention.
func (r *run) receiptFor(conv models.Convention, client models.Client) string {
	if r.ctx.ReceiptMode == models.ReceiptManual {
		return client.ReceiptNumber
	}
	concept := r.ctx.ConceptID
	if conv.Occurrences(client.ID) == 1 {
		concept = "0"
	}
	key := occurrenceKey{convention: conv.ID, client: client.ID}
	occurrence := r.seen[key]
	r.seen[key] = occurrence + 1
	return r.session.Allocate(receipt.Request{
		ClientID:     client.ID,
		ConventionID: conv.ID,
		ConceptID:    concept,
		Period:       r.ctx.Period,
		Dialect:      r.ctx.Dialect,
		Occurrence:   occurrence,
	})
}

func reference(conv models.Convention, client models.Client) string {
	return fixedwidth.PadLeft(client.ID, 9, '0') + fixedwidth.PadLeft(conv.ID, 10, '0')
}

func messages(ticket, secondary string) string {
	return fixedwidth.PadRight(ticket, MaxTicketMessage, ' ') + fixedwidth.PadRight(secondary, MaxSecondaryMessage, ' ')
}

func compact(isoDate string) string {
	return strings.ReplaceAll(isoDate, "-", "")
}

func (r *run) fullHeader() map[string]string {
	return map[string]string{
		layout.KeyRecordType:  layout.FullHeaderMarker,
		layout.KeyNetworkCode: models.NetworkCode,
		layout.KeyCompanyCode: models.CompanyCode,
		layout.KeyFileDate:    dateutils.ToCompact(r.now),
		layout.KeyFiller:      "1" + strings.Repeat("0", layout.FullHeader.MustField(layout.KeyFiller).Len()-1),
	}
}

func (r *run) basicHeader() map[string]string {
	return map[string]string{
		layout.KeyRecordID:    layout.BasicHeaderID,
		layout.KeyProcessDate: dateutils.ToShort(r.now),
		layout.KeyBatch:       models.BasicBatch,
	}
}

// fullDetail fills unset second and third tiers from the previous tier.
func (r *run) fullDetail(conv models.Convention, client models.Client, number string) map[string]string {
	const amountWidth = 11
	c := r.ctx
	ref := reference(conv, client)

	d1, a1 := compact(c.FirstDueDate), fixedwidth.FormatAmount(c.FirstAmount, amountWidth)
	d2, a2 := d1, a1
	if c.SecondDueDate != "" {
		d2 = compact(c.SecondDueDate)
	}
	if c.SecondAmount != "" {
		a2 = fixedwidth.FormatAmount(c.SecondAmount, amountWidth)
	}
	d3, a3 := d2, a2
	if c.ThirdDueDate != "" {
		d3 = compact(c.ThirdDueDate)
	}
	if c.ThirdAmount != "" {
		a3 = fixedwidth.FormatAmount(c.ThirdAmount, amountWidth)
	}

	return map[string]string{
		layout.KeyRecordType:      layout.FullDetailMarker,
		layout.KeyReferenceNumber: ref,
		layout.KeyInvoiceID:       fixedwidth.PadRight(number, models.ReceiptWidth, '0'),
		layout.KeyCurrencyCode:    models.CurrencyCode,
		layout.KeyFirstDueDate:    d1,
		layout.KeyFirstAmount:     a1,
		layout.KeySecondDueDate:   d2,
		layout.KeySecondAmount:    a2,
		layout.KeyThirdDueDate:    d3,
		layout.KeyThirdAmount:     a3,
		layout.KeyReferenceRepeat: ref,
		layout.KeyTicketMessage:   messages(c.TicketMessage, c.SecondaryMessage),
		layout.KeyScreenMessage:   fixedwidth.PadRight(c.ScreenMessage, MaxScreenMessage, ' '),
	}
}

// basicDetail leaves unset second and third tiers as zeros.
func (r *run) basicDetail(conv models.Convention, client models.Client) map[string]string {
	const amountWidth = 12
	c := r.ctx

	values := map[string]string{
		layout.KeyDebtID:       c.ConceptID + c.Period,
		layout.KeyConcept:      models.BasicConcept,
		layout.KeyUserID:       reference(conv, client),
		layout.KeyFirstDueDate: dateutils.CompactToShort(compact(c.FirstDueDate)),
		layout.KeyFirstAmount:  fixedwidth.FormatAmount(c.FirstAmount, amountWidth),
		layout.KeyMessages:     messages(c.TicketMessage, c.SecondaryMessage),
	}
	if c.SecondDueDate != "" {
		values[layout.KeySecondDueDate] = dateutils.CompactToShort(compact(c.SecondDueDate))
	}
	if c.SecondAmount != "" {
		values[layout.KeySecondAmount] = fixedwidth.FormatAmount(c.SecondAmount, amountWidth)
	}
	if c.ThirdDueDate != "" {
		values[layout.KeyThirdDueDate] = dateutils.CompactToShort(compact(c.ThirdDueDate))
	}
	if c.ThirdAmount != "" {
		values[layout.KeyThirdAmount] = fixedwidth.FormatAmount(c.ThirdAmount, amountWidth)
	}
	return values
}

func (r *run) fullFooter() map[string]string {
	return map[string]string{
		layout.KeyRecordType:  layout.FullFooterMarker,
		layout.KeyNetworkCode: models.NetworkCode,
		layout.KeyCompanyCode: models.CompanyCode,
		layout.KeyFileDate:    dateutils.ToCompact(r.now),
		layout.KeyRecordCount: strconv.Itoa(r.result.DetailCount),
		layout.KeyTotalAmount: fixedwidth.FormatAmount(models.AmountText(r.result.FirstTotal), layout.FullFooter.MustField(layout.KeyTotalAmount).Len()),
	}
}

// basicFooter counts the header and footer lines. Second and third totals
// are one record's tier amount times the record count.
func (r *run) basicFooter() map[string]string {
	const totalWidth = 18
	count := decimal.NewFromInt(int64(r.result.DetailCount))
	tierTotal := func(amount string) string {
		return fixedwidth.FormatAmount(models.AmountText(models.SumAmounts(amount).Mul(count)), totalWidth)
	}
	return map[string]string{
		layout.KeyRecordID:    layout.BasicFooterID,
		layout.KeyRecordCount: strconv.Itoa(r.result.DetailCount + 2),
		layout.KeyFirstTotal:  fixedwidth.FormatAmount(models.AmountText(r.result.FirstTotal), totalWidth),
		layout.KeySecondTotal: tierTotal(r.ctx.SecondAmount),
		layout.KeyThirdTotal:  tierTotal(r.ctx.ThirdAmount),
	}
}
