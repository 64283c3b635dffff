package bootstrap

import (
	"github.com/rahma103/calendrier-reservation-v2/internal/infra/directory"
	"github.com/rahma103/calendrier-reservation-v2/internal/infra/snapshot"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewSnapshotStore,
		NewStaffDirectory,
	),
)

func NewSnapshotStore(cfg config.Config) snapshot.Store {
	return snapshot.NewFileStore(cfg.Store.SnapshotPath)
}

func NewStaffDirectory(cfg config.Config) directory.StaffDirectory {
	return directory.NewFileDirectory(cfg.Store.UsersFile)
}
