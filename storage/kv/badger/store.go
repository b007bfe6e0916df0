package badgerkv

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"classtrack/core"
)

// Store is a badger-backed KVStore, the default durable engine.
type Store struct {
	db *badger.DB
}

var _ core.KVStore = (*Store)(nil)

func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening badger store")
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key string) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, core.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading badger store")
	}
	return val, nil
}

func (s *Store) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	return errors.Wrap(err, "writing badger store")
}

func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "closing badger store")
}
