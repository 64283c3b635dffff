package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rahma103/calendrier-reservation-v2/internal/domain/booking"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/errs"
)

// Table is the whole reservation table: encoded slot identifier → record.
// A present key means the slot is booked; absence means free. This mapping
// is the sole source of truth for availability.
type Table map[string]booking.Record

// Store persists the reservation table as one JSON snapshot.
type Store interface {
	// Load returns the current table, or an empty table when no snapshot
	// has been saved yet.
	Load(ctx context.Context) (Table, error)
	// Save atomically replaces the snapshot with the given table.
	Save(ctx context.Context, table Table) error
	// Update runs fn over a freshly loaded table and saves the result,
	// serialized against every other Update. When fn returns an error the
	// snapshot is left untouched.
	Update(ctx context.Context, fn func(table Table) error) error
	// Raw returns the persisted snapshot bytes verbatim.
	Raw(ctx context.Context) ([]byte, error)
}

// FileStore keeps the snapshot in a single JSON file, pretty-printed with
// 2-space indentation and non-ASCII characters left unescaped, compatible
// with snapshots written by earlier versions of the service.
//
// All writes go through a temp-file-and-rename so a concurrent reader never
// observes a half-written snapshot, and a mutex serializes the whole
// read-modify-write cycle of Update (the at-most-one-writer assumption made
// explicit).
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (Table, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run: no snapshot yet is the expected empty state.
			return Table{}, nil
		}
		return nil, errs.Wrap(err, "failed to read snapshot")
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, errs.Wrap(err, "failed to decode snapshot")
	}
	if table == nil {
		table = Table{}
	}
	return table, nil
}

func (s *FileStore) Save(ctx context.Context, table Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, table)
}

func (s *FileStore) Update(ctx context.Context, fn func(table Table) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if err := fn(table); err != nil {
		return err
	}

	return s.save(ctx, table)
}

func (s *FileStore) Raw(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Mark(err, errs.ErrSnapshotNotFound)
		}
		return nil, errs.Wrap(err, "failed to read snapshot")
	}
	return data, nil
}

func (s *FileStore) save(_ context.Context, table Table) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(table); err != nil {
		return errs.Wrap(err, "failed to encode snapshot")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.Wrap(err, "failed to create snapshot directory")
	}

	tmp, err := os.CreateTemp(dir, ".reservations-*.json")
	if err != nil {
		return errs.Wrap(err, "failed to create temp snapshot")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to write temp snapshot")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to close temp snapshot")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to replace snapshot")
	}
	return nil
}
