// Package indexer keeps a GORM-backed SQLite read model of committed ledger
// events: one row per proposal and one row per contribution.
package indexer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	memoryDSN = ":memory:"

	// fileDSNOptions enables WAL so readers do not block the event writer.
	fileDSNOptions = "?_journal_mode=WAL&_busy_timeout=5000&cache=shared&mode=rwc"
)

// readModelTables are migrated on every open.
var readModelTables = []any{
	&IndexState{},
	&ProposalRecord{},
	&ContributionRecord{},
}

// DB owns the GORM handle of the read model.
type DB struct {
	client *gorm.DB
}

// OpenFileDB opens (or creates) the SQLite database at path and migrates the
// read model schema.
func OpenFileDB(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.Wrapf(err, "cannot create indexer directory %s", dir)
	}

	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += fileDSNOptions
	}
	return openSQLite(dsn)
}

// OpenInMemoryDB opens a read model that lives as long as the returned DB.
func OpenInMemoryDB() (*DB, error) {
	return openSQLite(memoryDSN)
}

func openSQLite(dsn string) (*DB, error) {
	client, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open indexer database %q", dsn)
	}

	sqlDB, err := client.DB()
	if err != nil {
		return nil, errors.Wrap(err, "indexer database has no sql handle")
	}
	// An in-memory database is private to its connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := client.AutoMigrate(readModelTables...); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "cannot migrate indexer schema")
	}
	return &DB{client: client}, nil
}

// Client returns the GORM handle the Store queries through.
func (d *DB) Client() *gorm.DB {
	return d.client
}

func (d *DB) Close() error {
	sqlDB, err := d.client.DB()
	if err != nil {
		return errors.Wrap(err, "indexer database has no sql handle")
	}
	return errors.Wrap(sqlDB.Close(), "cannot close indexer database")
}
