package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rahma103/calendrier-reservation-v2/internal/domain/booking"
	"github.com/rahma103/calendrier-reservation-v2/internal/domain/slot"
	reqdto "github.com/rahma103/calendrier-reservation-v2/internal/handler/dto/request"
	"github.com/rahma103/calendrier-reservation-v2/internal/infra/snapshot"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/config"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/errs"
)

// ConflictError reports the first already-booked day of a requested stay,
// in chronological order, with its human-rendered date.
type ConflictError struct {
	DisplayDate string
}

func (e *ConflictError) Error() string {
	return "slot already reserved: " + e.DisplayDate
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrSlotConflict
}

type ReserveResult struct {
	Slots  []slot.ID
	Record booking.Record
}

type BookingCommands interface {
	// Reserve validates the request, expands the stay into slot identifiers
	// and commits them all-or-nothing. Every failure leaves the snapshot
	// untouched.
	Reserve(ctx context.Context, req reqdto.ReserveRequest) (*ReserveResult, error)
}

type bookingCommandsImpl struct {
	store    snapshot.Store
	renderer slot.Renderer
	defaults config.BookingConfig
}

func NewBookingCommands(store snapshot.Store, renderer slot.Renderer, cfg config.Config) BookingCommands {
	return &bookingCommandsImpl{
		store:    store,
		renderer: renderer,
		defaults: cfg.Booking,
	}
}

func (b *bookingCommandsImpl) Reserve(ctx context.Context, req reqdto.ReserveRequest) (*ReserveResult, error) {
	nomPrenom := req.TrimmedNomPrenom()
	telephone := req.TrimmedTelephone()
	if req.StartDate == "" || nomPrenom == "" || telephone == "" {
		return nil, errs.ErrMissingFields
	}

	stay, err := booking.NewStay(req.StartDate, req.EndDate)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrEndBeforeStart):
			return nil, errs.Mark(err, errs.ErrInvertedRange)
		default:
			return nil, errs.Mark(err, errs.ErrInvalidDateFormat)
		}
	}

	maison := req.Maison
	if maison == "" {
		maison = b.defaults.DefaultMaison
	}
	niveau := req.Niveau
	if niveau == "" {
		niveau = b.defaults.DefaultNiveau
	}

	ids := stay.Slots(maison, niveau)
	record := booking.NewRecord(nomPrenom, telephone)

	err = b.store.Update(ctx, func(table snapshot.Table) error {
		// Conflict check over the whole stay strictly precedes the writes.
		for _, id := range ids {
			if _, taken := table[id.Encode()]; taken {
				return &ConflictError{DisplayDate: b.renderer.Display(id)}
			}
		}
		for _, id := range ids {
			table[id.Encode()] = record
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation committed",
		"maison", maison,
		"niveau", niveau,
		"start", req.StartDate,
		"nights", stay.Days(),
	)

	return &ReserveResult{Slots: ids, Record: record}, nil
}
