//go:build unit

package booking_test

import (
	"testing"

	"github.com/rahma103/calendrier-reservation-v2/internal/domain/booking"
	"github.com/rahma103/calendrier-reservation-v2/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFullName(t *testing.T) {
	cases := []struct {
		name       string
		full       string
		wantNom    string
		wantPrenom string
	}{
		{name: "two tokens", full: "Marie Curie", wantNom: "Curie", wantPrenom: "Marie"},
		{name: "three tokens keep given names together", full: "Jean Paul Martin", wantNom: "Martin", wantPrenom: "Jean Paul"},
		{name: "single token is all surname", full: "Dupont", wantNom: "Dupont", wantPrenom: ""},
		{name: "empty input", full: "", wantNom: "", wantPrenom: ""},
		{name: "repeated interior whitespace collapses", full: "Anne  Sophie   Bernard", wantNom: "Bernard", wantPrenom: "Anne Sophie"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			nom, prenom := booking.SplitFullName(c.full)
			assert.Equal(t, c.wantNom, nom)
			assert.Equal(t, c.wantPrenom, prenom)
		})
	}
}

func TestNewRecord(t *testing.T) {
	record := booking.NewRecord("Marie Curie", "0600000000")
	want := booking.Record{Prenom: "Marie", Nom: "Curie", Telephone: "0600000000"}
	if diff := cmp.Diff(want, record); diff != "" {
		t.Errorf("Record mismatch (-want +got):\n%s", diff)
	}
}

func TestNewStay(t *testing.T) {
	t.Run("end defaults to start", func(t *testing.T) {
		stay, err := booking.NewStay("2025-06-01", "")
		require.NoError(t, err)
		assert.Equal(t, 1, stay.Days())
	})

	t.Run("inclusive day count", func(t *testing.T) {
		stay, err := booking.NewStay("2025-03-10", "2025-03-15")
		require.NoError(t, err)
		assert.Equal(t, 6, stay.Days())
	})

	t.Run("same-day stay counts one day", func(t *testing.T) {
		stay, err := booking.NewStay("2025-06-01", "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, 1, stay.Days())
	})

	t.Run("invalid start date", func(t *testing.T) {
		_, err := booking.NewStay("01/06/2025", "2025-06-02")
		require.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("invalid end date", func(t *testing.T) {
		_, err := booking.NewStay("2025-06-01", "pas-une-date")
		require.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := booking.NewStay("2025-06-05", "2025-06-01")
		require.ErrorIs(t, err, booking.ErrEndBeforeStart)
	})
}

func TestStaySlots(t *testing.T) {
	t.Run("chronological expansion", func(t *testing.T) {
		stay, err := booking.NewStay("2025-06-01", "2025-06-03")
		require.NoError(t, err)

		want := []slot.ID{
			slot.New("maison1", "rez", 6, 1),
			slot.New("maison1", "rez", 6, 2),
			slot.New("maison1", "rez", 6, 3),
		}
		if diff := cmp.Diff(want, stay.Slots("maison1", "rez")); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("crosses a month boundary", func(t *testing.T) {
		stay, err := booking.NewStay("2025-06-29", "2025-07-02")
		require.NoError(t, err)

		want := []slot.ID{
			slot.New("maison2", "etage1", 6, 29),
			slot.New("maison2", "etage1", 6, 30),
			slot.New("maison2", "etage1", 7, 1),
			slot.New("maison2", "etage1", 7, 2),
		}
		if diff := cmp.Diff(want, stay.Slots("maison2", "etage1")); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})
}
