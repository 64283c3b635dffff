//go:build unit

package slot_test

import (
	"testing"

	"github.com/rahma103/calendrier-reservation-v2/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		id   slot.ID
		raw  string
	}{
		{name: "default maison and niveau", id: slot.New("maison1", "rez", 6, 1), raw: "maison1-rez-6-1"},
		{name: "upper floor", id: slot.New("maison2", "etage1", 12, 31), raw: "maison2-etage1-12-31"},
		{name: "no zero padding", id: slot.New("maison1", "etage2", 1, 9), raw: "maison1-etage2-1-9"},
		{name: "single-digit month double-digit day", id: slot.New("chalet", "rez", 3, 15), raw: "chalet-rez-3-15"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.raw, c.id.Encode())

			decoded, ok := slot.Decode(c.raw)
			require.True(t, ok)
			if diff := cmp.Diff(c.id, decoded); diff != "" {
				t.Errorf("ID mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeRejectsMalformedIdentifiers(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "single token", raw: "x"},
		{name: "empty string", raw: ""},
		{name: "three fields", raw: "maison1-rez-6"},
		{name: "non-numeric month", raw: "maison1-rez-juin-1"},
		{name: "non-numeric day", raw: "maison1-rez-6-premier"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, ok := slot.Decode(c.raw)
			assert.False(t, ok)
		})
	}
}

// An embedded dash in the maison shifts the field split: the documented
// caller constraint, not something the codec repairs.
func TestDecodeEmbeddedDelimiterIsLossy(t *testing.T) {
	id := slot.New("maison-a", "rez", 6, 1)
	decoded, ok := slot.Decode(id.Encode())
	require.True(t, ok)
	assert.NotEqual(t, id, decoded)
	assert.Equal(t, "maison", decoded.Maison)
	assert.Equal(t, "a", decoded.Niveau)
}

func TestOrdering(t *testing.T) {
	cases := []struct {
		name string
		a, b slot.ID
		less bool
	}{
		{name: "by maison", a: slot.New("maison1", "rez", 6, 1), b: slot.New("maison2", "rez", 1, 1), less: true},
		{name: "by niveau", a: slot.New("maison1", "etage1", 12, 31), b: slot.New("maison1", "rez", 1, 1), less: true},
		{name: "by month", a: slot.New("maison1", "rez", 6, 30), b: slot.New("maison1", "rez", 7, 1), less: true},
		{name: "by day", a: slot.New("maison1", "rez", 6, 1), b: slot.New("maison1", "rez", 6, 2), less: true},
		{name: "equal is not less", a: slot.New("maison1", "rez", 6, 1), b: slot.New("maison1", "rez", 6, 1), less: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.less, c.a.Less(c.b))
			if c.less {
				assert.False(t, c.b.Less(c.a))
			}
		})
	}
}

func TestRender(t *testing.T) {
	r := slot.NewRenderer(2025)

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "june first", raw: "maison1-rez-6-1", want: "1 juin 2025 - rez - maison1"},
		{name: "accented month", raw: "maison2-etage1-8-15", want: "15 août 2025 - etage1 - maison2"},
		{name: "december", raw: "maison1-etage2-12-25", want: "25 décembre 2025 - etage2 - maison1"},
		{name: "february", raw: "maison1-rez-2-28", want: "28 février 2025 - rez - maison1"},
		{name: "fallback on short identifier", raw: "x", want: "x"},
		{name: "fallback on three fields", raw: "maison1-rez-6", want: "maison1-rez-6"},
		{name: "fallback on non-numeric month", raw: "maison1-rez-juin-1", want: "maison1-rez-juin-1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, r.Render(c.raw))
		})
	}
}

func TestRenderUsesConfiguredYear(t *testing.T) {
	r := slot.NewRenderer(2026)
	assert.Equal(t, "1 janvier 2026 - rez - maison1", r.Render("maison1-rez-1-1"))
}

func TestDisplayOutOfRangeMonthFallsBack(t *testing.T) {
	r := slot.NewRenderer(2025)
	assert.Equal(t, "maison1-rez-13-1", r.Display(slot.New("maison1", "rez", 13, 1)))
}
