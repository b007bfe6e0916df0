package sqlitekv

import (
	"database/sql"
	"embed"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"classtrack/core"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is a sqlite-backed KVStore keeping everything in a single kv table.
type Store struct {
	db *sqlx.DB
}

var _ core.KVStore = (*Store)(nil)

func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening sqlite store")
	}
	if err := migrate(db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	return errors.Wrap(goose.Up(db, "migrations"), "migrating sqlite store")
}

func (s *Store) Get(key string) ([]byte, error) {
	var val []byte
	err := s.db.Get(&val, "SELECT value FROM kv WHERE key = ?", key)
	if err == sql.ErrNoRows {
		return nil, core.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading sqlite store")
	}
	return val, nil
}

func (s *Store) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return errors.Wrap(err, "writing sqlite store")
}

func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "closing sqlite store")
}
