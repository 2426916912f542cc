// Package store records assignment runs in a local SQLite database
// (modernc.org/sqlite, no cgo).
package store

import (
	"database/sql"
	"embed"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const (
	driverName = "sqlite"
	dirMode    = 0700
)

var (
	//go:embed sql/*
	f embed.FS

	errDBNotInitialized = errors.New("database not initialized")

	// ErrNotFound is returned by GetRun for an unknown id.
	ErrNotFound = errors.New("run not found")
)

// Init creates the database file and applies the schema. Safe to call on an
// existing database.
func Init(dbFilePath string) error {
	if dbFilePath == "" {
		return errors.New("dbFilePath not specified")
	}
	if err := os.MkdirAll(filepath.Dir(dbFilePath), dirMode); err != nil {
		return errors.Wrapf(err, "failed to create dir for: %s", dbFilePath)
	}

	db, err := GetDB(dbFilePath)
	if err != nil {
		return err
	}
	defer db.Close()

	b, err := f.ReadFile("sql/ddl.sql")
	if err != nil {
		return errors.Wrap(err, "failed to read the schema creation file")
	}
	if _, err := db.Exec(string(b)); err != nil {
		return errors.Wrapf(err, "failed to create database schema in: %s", dbFilePath)
	}
	slog.Debug("db schema ready", "path", dbFilePath)

	return nil
}

// GetDB opens the database at path.
func GetDB(path string) (*sql.DB, error) {
	conn, err := sql.Open(driverName, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database: %s", path)
	}

	return conn, nil
}

// Open runs Init then returns a handle; the caller closes it.
func Open(path string) (*sql.DB, error) {
	if err := Init(path); err != nil {
		return nil, err
	}

	return GetDB(path)
}
