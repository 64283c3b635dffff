package slot

import (
	"fmt"
	"strconv"
	"strings"
)

// Delimiter joins the four fields of an encoded slot identifier.
const Delimiter = "-"

// ID identifies one bookable unit: a maison, a niveau and one calendar day.
// The year is deliberately absent; the whole system operates on a single
// display year (see Renderer).
//
// Constraint: Maison and Niveau must not contain the delimiter character.
// Encode joins the four fields with "-" and Decode splits on it, so an
// embedded dash makes the round trip lossy. The burden of avoiding the
// delimiter is on callers, matching the persisted key format.
type ID struct {
	Maison string
	Niveau string
	Month  int
	Day    int
}

func New(maison, niveau string, month, day int) ID {
	return ID{Maison: maison, Niveau: niveau, Month: month, Day: day}
}

// Encode serializes the identifier to its canonical storage form,
// "{maison}-{niveau}-{month}-{day}" with no zero-padding.
func (id ID) Encode() string {
	return fmt.Sprintf("%s%s%s%s%d%s%d", id.Maison, Delimiter, id.Niveau, Delimiter, id.Month, Delimiter, id.Day)
}

// Decode parses an encoded identifier. The first two dash-delimited fields
// are maison and niveau, the last two are month and day. Fewer than four
// fields, or a non-numeric month or day, reports ok=false; callers are
// expected to fall back to the raw string in that case.
func Decode(raw string) (ID, bool) {
	parts := strings.Split(raw, Delimiter)
	if len(parts) < 4 {
		return ID{}, false
	}

	month, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return ID{}, false
	}
	day, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return ID{}, false
	}

	return ID{
		Maison: parts[0],
		Niveau: parts[1],
		Month:  month,
		Day:    day,
	}, true
}

// Less defines the natural ordering: maison, then niveau, then month, then day.
func (id ID) Less(other ID) bool {
	if id.Maison != other.Maison {
		return id.Maison < other.Maison
	}
	if id.Niveau != other.Niveau {
		return id.Niveau < other.Niveau
	}
	if id.Month != other.Month {
		return id.Month < other.Month
	}
	return id.Day < other.Day
}
