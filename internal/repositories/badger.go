package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v4"
	"github.com/desertthunder/encore/internal/shared"
)

// BadgerStore implements [KVStore] on an embedded Badger database.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore wraps an open Badger database.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// OpenBadgerStore opens (or creates) a Badger directory.
//
// Badger's internal logging is routed to logger, with its info chatter demoted
// to debug. A nil logger silences it.
func OpenBadgerStore(dir string, logger *log.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	if logger != nil {
		opts = opts.WithLogger(badgerLogger{logger})
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}
	return NewBadgerStore(db), nil
}

func (s *BadgerStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", shared.ErrKeyNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}
	return value, nil
}

func (s *BadgerStore) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write key: %w", err)
	}
	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// badgerLogger adapts a charmbracelet logger to badger.Logger.
type badgerLogger struct {
	*log.Logger
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.Warnf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.Debugf(format, args...)
}
