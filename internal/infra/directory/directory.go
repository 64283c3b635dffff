package directory

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rahma103/calendrier-reservation-v2/internal/domain/user"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/errs"
)

// StaffDirectory resolves staff accounts by username.
type StaffDirectory interface {
	FindByUsername(ctx context.Context, username string) (*user.Account, error)
}

// FileDirectory reads accounts from a JSON file mapping username to bcrypt
// password hash. The file is small and read on every lookup so account
// changes take effect without a restart.
type FileDirectory struct {
	path string
}

func NewFileDirectory(path string) *FileDirectory {
	return &FileDirectory{path: path}
}

func (d *FileDirectory) FindByUsername(_ context.Context, username string) (*user.Account, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to read users file")
	}

	var accounts map[string]string
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, errs.Wrap(err, "failed to decode users file")
	}

	hash, ok := accounts[username]
	if !ok {
		return nil, errs.ErrUserNotFound
	}

	account := user.NewAccount(username, hash)
	return &account, nil
}
