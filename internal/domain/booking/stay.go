package booking

import (
	"errors"
	"time"

	"github.com/rahma103/calendrier-reservation-v2/internal/domain/slot"
)

// DateLayout is the only accepted wire format for stay dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate    = errors.New("date does not parse as YYYY-MM-DD")
	ErrEndBeforeStart = errors.New("end date precedes start date")
)

// Stay is an inclusive date range for one maison and niveau.
type Stay struct {
	start time.Time
	end   time.Time
}

// NewStay parses the raw start and end dates. An empty end defaults to the
// start date (a one-night stay).
func NewStay(startRaw, endRaw string) (Stay, error) {
	if endRaw == "" {
		endRaw = startRaw
	}

	start, err := time.Parse(DateLayout, startRaw)
	if err != nil {
		return Stay{}, ErrInvalidDate
	}
	end, err := time.Parse(DateLayout, endRaw)
	if err != nil {
		return Stay{}, ErrInvalidDate
	}

	if end.Before(start) {
		return Stay{}, ErrEndBeforeStart
	}

	return Stay{start: start, end: end}, nil
}

func (s Stay) Start() time.Time {
	return s.start
}

func (s Stay) End() time.Time {
	return s.end
}

// Days is the inclusive day count of the stay.
func (s Stay) Days() int {
	return int(s.end.Sub(s.start).Hours()/24) + 1
}

// Slots expands the stay into its ordered slot identifiers, one per day,
// chronological from start to end.
func (s Stay) Slots(maison, niveau string) []slot.ID {
	ids := make([]slot.ID, 0, s.Days())
	for d := s.start; !d.After(s.end); d = d.AddDate(0, 0, 1) {
		ids = append(ids, slot.New(maison, niveau, int(d.Month()), d.Day()))
	}
	return ids
}
