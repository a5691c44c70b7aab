package models

import (
	"errors"
	"fmt"
	"time"
)

// GenerationContextBuilder provides a fluent API for constructing generation
// requests. The first error sticks; later calls are no-ops.
type GenerationContextBuilder struct {
	ctx GenerationContext
	err error
}

// NewGenerationContextBuilder creates a builder with default values.
func NewGenerationContextBuilder() *GenerationContextBuilder {
	return &GenerationContextBuilder{
		ctx: GenerationContext{
			Dialect:      DialectFull,
			ReceiptMode:  ReceiptAutomatic,
			ClientIDMode: ClientIDManual,
			ConceptID:    "0",
		},
	}
}

// FromContext starts from an existing context, e.g. one read from YAML.
func (b *GenerationContextBuilder) FromContext(ctx GenerationContext) *GenerationContextBuilder {
	if b.err != nil {
		return b
	}
	b.ctx = ctx
	b.ctx.Conventions = append([]Convention(nil), ctx.Conventions...)
	return b
}

// WithDialect sets the dialect from its name.
func (b *GenerationContextBuilder) WithDialect(name string) *GenerationContextBuilder {
	if b.err != nil {
		return b
	}
	d, err := ParseDialect(name)
	if err != nil {
		b.err = err
		return b
	}
	b.ctx.Dialect = d
	return b
}

// WithConvention appends a convention holding one client per id. The record
// count matches the number of clients.
func (b *GenerationContextBuilder) WithConvention(id string, clientIDs ...string) *GenerationContextBuilder {
	if b.err != nil {
		return b
	}
	conv := Convention{ID: id, RecordCount: len(clientIDs)}
	for _, cid := range clientIDs {
		conv.Clients = append(conv.Clients, Client{ID: cid})
	}
	b.ctx.Conventions = append(b.ctx.Conventions, conv)
	return b
}

// WithReceipt sets the manual receipt number of a client of the last
// convention added.
func (b *GenerationContextBuilder) WithReceipt(clientIndex int, receipt string) *GenerationContextBuilder {
	if b.err != nil {
		return b
	}
	if len(b.ctx.Conventions) == 0 {
		b.err = errors.New("no convention to attach the receipt to")
		return b
	}
	conv := &b.ctx.Conventions[len(b.ctx.Conventions)-1]
	if clientIndex < 0 || clientIndex >= len(conv.Clients) {
		b.err = fmt.Errorf("client index %d out of range", clientIndex)
		return b
	}
	conv.Clients[clientIndex].ReceiptNumber = receipt
	return b
}

// WithDueTier sets the date and amount of tier 1, 2 or 3.
func (b *GenerationContextBuilder) WithDueTier(tier int, date, amount string) *GenerationContextBuilder {
	if b.err != nil {
		return b
	}
	switch tier {
	case 1:
		b.ctx.FirstDueDate, b.ctx.FirstAmount = date, amount
	case 2:
		b.ctx.SecondDueDate, b.ctx.SecondAmount = date, amount
	case 3:
		b.ctx.ThirdDueDate, b.ctx.ThirdAmount = date, amount
	default:
		b.err = fmt.Errorf("due tier must be 1, 2 or 3, got %d", tier)
	}
	return b
}

// WithDueDateFromTime sets a tier date from a time.Time.
func (b *GenerationContextBuilder) WithDueDateFromTime(tier int, date time.Time, amount string) *GenerationContextBuilder {
	if b.err != nil {
		return b
	}
	if date.IsZero() {
		b.err = errors.New("due date cannot be zero")
		return b
	}
	return b.WithDueTier(tier, date.Format("2006-01-02"), amount)
}

// WithMessages sets the ticket, secondary and screen messages.
func (b *GenerationContextBuilder) WithMessages(ticket, secondary, screen string) *GenerationContextBuilder {
	if b.err != nil {
		return b
	}
	b.ctx.TicketMessage = ticket
	b.ctx.SecondaryMessage = secondary
	b.ctx.ScreenMessage = screen
	return b
}

// WithPeriod sets the MMYY billing period.
func (b *GenerationContextBuilder) WithPeriod(period string) *GenerationContextBuilder {
	if b.err != nil {
		return b
	}
	b.ctx.Period = period
	return b
}

// WithPeriodFromTime sets the billing period from a time.Time.
func (b *GenerationContextBuilder) WithPeriodFromTime(t time.Time) *GenerationContextBuilder {
	return b.WithPeriod(t.Format("0106"))
}

// WithConceptID sets the concept digit.
func (b *GenerationContextBuilder) WithConceptID(id string) *GenerationContextBuilder {
	if b.err != nil {
		return b
	}
	b.ctx.ConceptID = id
	return b
}

// WithReceiptMode sets automatic or manual receipt numbers.
func (b *GenerationContextBuilder) WithReceiptMode(mode ReceiptMode) *GenerationContextBuilder {
	if b.err != nil {
		return b
	}
	if mode != ReceiptAutomatic && mode != ReceiptManual {
		b.err = fmt.Errorf("unknown receipt mode %q", mode)
		return b
	}
	b.ctx.ReceiptMode = mode
	return b
}

// WithClientIDMode sets automatic or manual client ids.
func (b *GenerationContextBuilder) WithClientIDMode(mode ClientIDMode) *GenerationContextBuilder {
	if b.err != nil {
		return b
	}
	if mode != ClientIDAutomatic && mode != ClientIDManual {
		b.err = fmt.Errorf("unknown client id mode %q", mode)
		return b
	}
	b.ctx.ClientIDMode = mode
	return b
}

// WithDefaults fills empty message, concept and mode fields.
func (b *GenerationContextBuilder) WithDefaults(ticket, screen, conceptID string) *GenerationContextBuilder {
	if b.err != nil {
		return b
	}
	if b.ctx.TicketMessage == "" {
		b.ctx.TicketMessage = ticket
	}
	if b.ctx.ScreenMessage == "" {
		b.ctx.ScreenMessage = screen
	}
	if b.ctx.ConceptID == "" {
		b.ctx.ConceptID = conceptID
	}
	if b.ctx.ReceiptMode == "" {
		b.ctx.ReceiptMode = ReceiptAutomatic
	}
	if b.ctx.ClientIDMode == "" {
		b.ctx.ClientIDMode = ClientIDManual
	}
	for i := range b.ctx.Conventions {
		if b.ctx.Conventions[i].RecordCount == 0 {
			b.ctx.Conventions[i].RecordCount = len(b.ctx.Conventions[i].Clients)
		}
	}
	return b
}

// Build returns the context. Business rules are checked by the generator;
// Build only reports builder misuse.
func (b *GenerationContextBuilder) Build() (GenerationContext, error) {
	if b.err != nil {
		return GenerationContext{}, fmt.Errorf("builder error: %w", b.err)
	}
	if b.ctx.Period == "" {
		b.ctx.Period = time.Now().Format("0106")
	}
	return b.ctx, nil
}
