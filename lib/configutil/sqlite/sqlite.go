package configsqlite

import (
	"context"
	"database/sql"
	"fmt"

	devenv "eventizer/dev/env"

	_ "modernc.org/sqlite"
)

type Struct struct {
	File string `json:"file"`
}

// OpenDB opens (creating if necessary) the sqlite database at config.File and
// applies schema to it. File may be ":memory:" or begin with <dev_state>.
func (config Struct) OpenDB(ctx context.Context, schema string) (*sql.DB, error) {
	if config.File == "" {
		return nil, fmt.Errorf("a database path was not specified")
	}
	dbpath, err := devenv.ResolvePath(config.File)
	if err != nil {
		return nil, err
	}
	return Open(ctx, dbpath, schema)
}

// Open opens the sqlite database at dbpath with foreign keys enforced and
// applies schema to it.
func Open(ctx context.Context, dbpath, schema string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbpath))
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	// a single connection is also what keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if dbpath != ":memory:" {
		_, err = db.ExecContext(ctx, "PRAGMA journal_mode=WAL")
		if err != nil {
			db.Close()
			return nil, err
		}
	}
	if schema != "" {
		_, err = db.ExecContext(ctx, schema)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	return db, nil
}
