package repositories

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/encore/internal/shared"
)

// NewStore opens the backend named by cfg.Driver.
//
// File-backed stores hold a process lock on their path until closed and fail
// with [shared.ErrStoreLocked] when another process has it open.
func NewStore(cfg shared.DatabaseConfig, logger *log.Logger) (KVStore, error) {
	switch cfg.Driver {
	case shared.DriverMemory:
		return NewMemoryStore(), nil
	case shared.DriverSQLite:
		if cfg.Path == ":memory:" {
			return OpenSQLiteStore(cfg.Path, cfg.MaxOpenConns, cfg.MaxIdleConns)
		}
		lock, err := shared.LockStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		store, err := OpenSQLiteStore(cfg.Path, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			return nil, errors.Join(err, lock.Unlock())
		}
		return &lockedStore{KVStore: store, lock: lock}, nil
	case shared.DriverBadger:
		lock, err := shared.LockStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		store, err := OpenBadgerStore(cfg.Path, logger)
		if err != nil {
			return nil, errors.Join(err, lock.Unlock())
		}
		return &lockedStore{KVStore: store, lock: lock}, nil
	default:
		return nil, fmt.Errorf("%w: unknown database driver %q", shared.ErrInvalidConfig, cfg.Driver)
	}
}

// lockedStore releases its process lock after closing the wrapped store.
type lockedStore struct {
	KVStore
	lock *shared.StoreLock
}

func (s *lockedStore) Close() error {
	return errors.Join(s.KVStore.Close(), s.lock.Unlock())
}
