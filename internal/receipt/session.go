// Package receipt allocates invoice (receipt) numbers for debt-base details.
//
// A Session is owned by the caller and covers one generation run. Nothing is
// shared between sessions; call Reset or build a new Session to start over.
package receipt

import (
	"fmt"
	"time"

	"fjacquet/siro-files/internal/dateutils"
	"fjacquet/siro-files/internal/fixedwidth"
	"fjacquet/siro-files/internal/logging"
	"fjacquet/siro-files/internal/models"
)

// OccurrenceLimit is the occurrence from which numbers switch from the
// occurrence-digit scheme to the sequential scheme.
const OccurrenceLimit = 10

// digitsSequential is the width of the sequential counter.
const digitsSequential = 5

// Request identifies one allocation.
type Request struct {
	ClientID     string
	ConventionID string
	ConceptID    string
	Period       string // MMYY; empty means the current month
	Dialect      models.Dialect
	Occurrence   int // 0-based count of the pair earlier in the same run
}

type pairKey struct {
	client     string
	convention string
}

type seqKey struct {
	dialect models.Dialect
	pairKey
}

type allocationKey struct {
	seqKey
	period     string
	occurrence int
}

// Session holds the allocation state of one generation run. It is not safe
// for concurrent use.
type Session struct {
	logger     logging.Logger
	now        func() time.Time
	assigned   map[allocationKey]string
	sequential map[seqKey]int
}

// NewSession creates an empty session.
func NewSession(logger logging.Logger) *Session {
	s := &Session{
		logger: logging.OrDefault(logger),
		now:    time.Now,
	}
	s.Reset()
	return s
}

// WithClock replaces the clock used to default an empty period.
func (s *Session) WithClock(now func() time.Time) *Session {
	if now != nil {
		s.now = now
	}
	return s
}

// Reset drops every assignment and counter.
func (s *Session) Reset() {
	s.assigned = make(map[allocationKey]string)
	s.sequential = make(map[seqKey]int)
}

// Assigned returns how many distinct numbers the session has handed out.
func (s *Session) Assigned() int {
	return len(s.assigned)
}

// Allocate returns the number for req. Repeated calls with the same request
// return the cached value.
//
// Below OccurrenceLimit the FULL value is the 15-character prefix, the
// occurrence digit and the period, padded to 20 with '0'. From
// OccurrenceLimit on it is the prefix and a per-pair 5-digit counter starting
// at 1. BASIC values are the trailing 5 characters of the FULL value.
func (s *Session) Allocate(req Request) string {
	dialect := req.Dialect
	if !dialect.Valid() {
		dialect = models.DialectFull
	}
	period := req.Period
	if period == "" {
		period = dateutils.CurrentPeriod(s.now())
	}
	sk := seqKey{dialect: dialect, pairKey: pairKey{client: req.ClientID, convention: req.ConventionID}}
	key := allocationKey{seqKey: sk, period: period, occurrence: req.Occurrence}

	if cached, ok := s.assigned[key]; ok {
		return cached
	}

	var full string
	if req.Occurrence < OccurrenceLimit {
		digit := req.Occurrence
		if digit < 0 {
			digit = 0
		}
		full = fixedwidth.PadRight(fmt.Sprintf("%s%d%s", models.ReceiptPrefix, digit, period), models.ReceiptWidth, '0')
	} else {
		next := s.sequential[sk] + 1
		s.sequential[sk] = next
		full = models.ReceiptPrefix + fixedwidth.PadLeft(fmt.Sprintf("%d", next), digitsSequential, '0')
	}

	number := full
	if dialect == models.DialectBasic {
		number = fixedwidth.LastN(full, models.BasicReceiptLen)
	}
	s.assigned[key] = number

	s.logger.Debug("Allocated receipt number",
		logging.Field{Key: logging.FieldClientID, Value: req.ClientID},
		logging.Field{Key: logging.FieldConvention, Value: req.ConventionID},
		logging.Field{Key: logging.FieldDialect, Value: string(dialect)},
		logging.Field{Key: "concept_id", Value: req.ConceptID},
		logging.Field{Key: "occurrence", Value: req.Occurrence},
		logging.Field{Key: logging.FieldReceipt, Value: number})
	return number
}
