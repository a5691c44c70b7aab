package rendition

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"

	"fjacquet/siro-files/internal/fixedwidth"
)

// PaymentIDWidth is the width of a settlement payment id.
const PaymentIDWidth = 10

// DefaultPaymentIDAttempts bounds the retries on a colliding id.
const DefaultPaymentIDAttempts = 1000

// ErrPaymentIDsExhausted is returned when no unused id was found within the
// attempt budget.
var ErrPaymentIDsExhausted = errors.New("no unique payment id within attempt budget")

// IDSource yields time-ordered ids. *snowflake.Node satisfies it.
type IDSource interface {
	Generate() snowflake.ID
}

// PaymentIDs hands out 10-digit payment ids that are unique within one
// batch. It is not safe for concurrent use.
type PaymentIDs struct {
	source   IDSource
	attempts int
	used     map[string]struct{}
}

// NewPaymentIDs creates a generator over source. A non-positive attempts
// value uses DefaultPaymentIDAttempts.
func NewPaymentIDs(source IDSource, attempts int) *PaymentIDs {
	if attempts <= 0 {
		attempts = DefaultPaymentIDAttempts
	}
	return &PaymentIDs{
		source:   source,
		attempts: attempts,
		used:     make(map[string]struct{}),
	}
}

// NewNodePaymentIDs creates a generator over a snowflake node.
func NewNodePaymentIDs(nodeID int64, attempts int) (*PaymentIDs, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node %d: %w", nodeID, err)
	}
	return NewPaymentIDs(node, attempts), nil
}

// Next returns the trailing 10 digits of the next source id not yet handed
// out.
func (p *PaymentIDs) Next() (string, error) {
	for i := 0; i < p.attempts; i++ {
		id := fixedwidth.PadLeft(fixedwidth.LastN(p.source.Generate().String(), PaymentIDWidth), PaymentIDWidth, '0')
		if _, taken := p.used[id]; taken {
			continue
		}
		p.used[id] = struct{}{}
		return id, nil
	}
	return "", fmt.Errorf("%w (%d attempts)", ErrPaymentIDsExhausted, p.attempts)
}

// Len returns how many ids were handed out.
func (p *PaymentIDs) Len() int {
	return len(p.used)
}

// Reset forgets every id handed out.
func (p *PaymentIDs) Reset() {
	p.used = make(map[string]struct{})
}
