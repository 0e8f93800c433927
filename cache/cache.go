/*
Package cache implements a SQLite database of previously encoded XPM images.

Entries are keyed by the SHA-1 of the source image file and the adaptation
options used, so the same file converted with different options is cached
separately.
*/
package cache

import (
	"crypto/sha1"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "github.com/mattn/go-sqlite3" // register sqlite3 driver
)

// DB is the cache database
type DB struct {
	db *sql.DB
}

// New opens or creates the cache database in the named file
func New(file string) (*DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS xpm (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, options TEXT NOT NULL, data BLOB NOT NULL, UNIQUE(sha1, options))"); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{
		db: db,
	}, nil
}

// Close closes the database
func (db *DB) Close() error {
	return db.db.Close()
}

// Sum returns the key for the contents of r
func Sum(r io.Reader) (string, error) {
	h := sha1.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%X", h.Sum(nil)), nil
}

// SumFile returns the key for the contents of the named file
func SumFile(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return Sum(f)
}

// Lookup returns the cached XPM for the given key and options or nil if
// there isn't one
func (db *DB) Lookup(sum, options string) ([]byte, error) {
	var data []byte
	switch err := db.db.QueryRow("SELECT data FROM xpm WHERE sha1 = ? AND options = ?", sum, options).Scan(&data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return data, nil
	default:
		return nil, err
	}
}

// Store adds or replaces the cached XPM for the given key and options
func (db *DB) Store(sum, options string, data []byte) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO xpm (sha1, options, data) VALUES (?, ?, ?)", sum, options, data); err != nil {
		return err
	}
	return nil
}

// Length returns the number of cached entries
func (db *DB) Length() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM xpm").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
