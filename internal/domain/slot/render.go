package slot

import "fmt"

// monthNames is indexed by calendar month 1..12; index 0 is unused.
var monthNames = [13]string{
	"",
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// Renderer formats slot identifiers as human-readable French dates for one
// fixed calendar year.
type Renderer struct {
	year int
}

func NewRenderer(year int) Renderer {
	return Renderer{year: year}
}

// Display renders a decoded identifier as "{day} {month} {year} - {niveau} - {maison}".
func (r Renderer) Display(id ID) string {
	if id.Month < 1 || id.Month > 12 {
		return id.Encode()
	}
	return fmt.Sprintf("%d %s %d - %s - %s", id.Day, monthNames[id.Month], r.year, id.Niveau, id.Maison)
}

// Render decodes and displays a raw identifier. Identifiers that do not
// decode are returned unchanged; listing must never fail on a malformed key.
func (r Renderer) Render(raw string) string {
	id, ok := Decode(raw)
	if !ok {
		return raw
	}
	return r.Display(id)
}
