package queries

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/rahma103/calendrier-reservation-v2/internal/domain/slot"
	"github.com/rahma103/calendrier-reservation-v2/internal/infra/snapshot"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/config"
)

// BookingView is one booked day prepared for display.
type BookingView struct {
	DisplayDate string
	Nom         string
	Prenom      string
	Telephone   string
}

// ExportResult is the persisted snapshot verbatim, ready for download.
type ExportResult struct {
	Content  []byte
	Filename string
}

type BookingQueries interface {
	// List returns every booked day with its rendered date, sorted by the
	// slot's natural ordering for deterministic output.
	List(ctx context.Context) ([]BookingView, error)
	// Export returns the raw snapshot bytes. Reports
	// errs.ErrSnapshotNotFound when nothing has ever been saved.
	Export(ctx context.Context) (*ExportResult, error)
}

type bookingQueriesImpl struct {
	store    snapshot.Store
	renderer slot.Renderer
	filename string
}

func NewBookingQueries(store snapshot.Store, renderer slot.Renderer, cfg config.Config) BookingQueries {
	return &bookingQueriesImpl{
		store:    store,
		renderer: renderer,
		filename: filepath.Base(cfg.Store.SnapshotPath),
	}
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]BookingView, error) {
	table, err := q.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aok := slot.Decode(keys[i])
		b, bok := slot.Decode(keys[j])
		if aok && bok {
			return a.Less(b)
		}
		if aok != bok {
			// Undecodable keys sort after well-formed ones.
			return aok
		}
		return keys[i] < keys[j]
	})

	views := make([]BookingView, 0, len(keys))
	for _, key := range keys {
		record := table[key]
		views = append(views, BookingView{
			DisplayDate: q.renderer.Render(key),
			Nom:         record.Nom,
			Prenom:      record.Prenom,
			Telephone:   record.Telephone,
		})
	}
	return views, nil
}

func (q *bookingQueriesImpl) Export(ctx context.Context) (*ExportResult, error) {
	data, err := q.store.Raw(ctx)
	if err != nil {
		return nil, err
	}
	return &ExportResult{Content: data, Filename: q.filename}, nil
}
