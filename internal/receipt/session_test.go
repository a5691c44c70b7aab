package receipt

import (
	"fmt"
	"testing"
	"time"

	"fjacquet/siro-files/internal/logging"
	"fjacquet/siro-files/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(dialect models.Dialect) Request {
	return Request{
		ClientID:     "123456789",
		ConventionID: "0000000042",
		ConceptID:    "0",
		Period:       "0130",
		Dialect:      dialect,
	}
}

func TestAllocateFirstOccurrence(t *testing.T) {
	s := NewSession(logging.NewMockLogger())

	full := s.Allocate(request(models.DialectFull))
	assert.Equal(t, "IDFACTURABASE0000130", full)
	assert.Len(t, full, 20)

	basic := s.Allocate(request(models.DialectBasic))
	assert.Equal(t, "00130", basic)
}

func TestAllocateIsIdempotent(t *testing.T) {
	for _, dialect := range []models.Dialect{models.DialectFull, models.DialectBasic} {
		t.Run(string(dialect), func(t *testing.T) {
			s := NewSession(nil)
			req := request(dialect)
			first := s.Allocate(req)
			second := s.Allocate(req)
			assert.Equal(t, first, second)

			req.Occurrence = OccurrenceLimit
			seq1 := s.Allocate(req)
			seq2 := s.Allocate(req)
			assert.Equal(t, seq1, seq2, "sequential numbers are cached too")
		})
	}
}

func allocateRun(s *Session, req Request, n int) []string {
	got := make([]string, 0, n)
	for i := 0; i < n; i++ {
		req.Occurrence = i
		got = append(got, s.Allocate(req))
	}
	return got
}

func TestAllocateDuplicatePolicy(t *testing.T) {
	s := NewSession(nil)
	got := allocateRun(s, request(models.DialectFull), 12)

	for i := 0; i < 10; i++ {
		assert.Equal(t, fmt.Sprintf("IDFACTURABASE00%d0130", i), got[i], "occurrence %d", i)
	}
	assert.Equal(t, "IDFACTURABASE0000001", got[10])
	assert.Equal(t, "IDFACTURABASE0000002", got[11])
	assert.Equal(t, 12, s.Assigned())
}

func TestAllocateDuplicatePolicyBasic(t *testing.T) {
	got := allocateRun(NewSession(nil), request(models.DialectBasic), 12)
	assert.Equal(t, "00130", got[0])
	assert.Equal(t, "90130", got[9])
	assert.Equal(t, "00001", got[10])
	assert.Equal(t, "00002", got[11])
}

func TestRepeatedRunsReuseNumbers(t *testing.T) {
	s := NewSession(nil)
	req := request(models.DialectFull)

	first := allocateRun(s, req, 12)
	second := allocateRun(s, req, 12)
	assert.Equal(t, first, second)
	assert.Equal(t, "IDFACTURABASE0000130", s.Allocate(req))
	assert.Equal(t, 12, s.Assigned())
}

func TestSequentialCountersArePerPairAndDialect(t *testing.T) {
	s := NewSession(nil)
	a := request(models.DialectFull)
	a.Occurrence = 10
	b := a
	b.ClientID = "999999999"
	c := a
	c.Dialect = models.DialectBasic

	assert.Equal(t, "IDFACTURABASE0000001", s.Allocate(a))
	assert.Equal(t, "IDFACTURABASE0000001", s.Allocate(b))
	assert.Equal(t, "00001", s.Allocate(c))

	a.Occurrence = 11
	assert.Equal(t, "IDFACTURABASE0000002", s.Allocate(a))
}

func TestConceptDoesNotChangeValue(t *testing.T) {
	s := NewSession(nil)
	req := request(models.DialectFull)
	other := req
	other.ConceptID = "7"
	assert.Equal(t, s.Allocate(req), s.Allocate(other))
}

func TestEmptyPeriodUsesClock(t *testing.T) {
	clock := func() time.Time { return time.Date(2031, 11, 5, 0, 0, 0, 0, time.UTC) }
	s := NewSession(nil).WithClock(clock)
	req := request(models.DialectFull)
	req.Period = ""
	assert.Equal(t, "IDFACTURABASE0001131", s.Allocate(req))
}

func TestInvalidDialectFallsBackToFull(t *testing.T) {
	s := NewSession(nil)
	req := request("")
	assert.Equal(t, "IDFACTURABASE0000130", s.Allocate(req))
}

func TestReset(t *testing.T) {
	s := NewSession(nil)
	req := request(models.DialectFull)
	allocateRun(s, req, 11)
	require.Equal(t, 11, s.Assigned())

	s.Reset()
	assert.Equal(t, 0, s.Assigned())

	req.Occurrence = OccurrenceLimit
	assert.Equal(t, "IDFACTURABASE0000001", s.Allocate(req), "sequential counter restarts")
}

func TestSessionsAreIndependent(t *testing.T) {
	a := NewSession(nil)
	b := NewSession(nil)
	req := request(models.DialectFull)
	req.Occurrence = OccurrenceLimit + 1
	a.Allocate(req)
	assert.Equal(t, "IDFACTURABASE0000001", b.Allocate(req))
	assert.Equal(t, 0, NewSession(nil).Assigned())
}

func TestAllocateLogsDebug(t *testing.T) {
	logger := logging.NewMockLogger()
	s := NewSession(logger)
	s.Allocate(request(models.DialectFull))
	require.Len(t, logger.GetEntriesByLevel("DEBUG"), 1)
	assert.True(t, logger.HasEntry("DEBUG", "Allocated receipt number"))
}
