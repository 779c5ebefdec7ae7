package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	devenv "eventizer/dev/env"
	configsqlite "eventizer/lib/configutil/sqlite"
	"eventizer/lib/telemetry"
)

type ServiceParams struct {
	Name string
	// if unspecified, it will skip applying a schema
	DbSchema string
	// if unspecified, it will use `:memory:`
	DbPath string
}

type ServiceResult struct {
	DB *sql.DB
}

// SetupService sets up telemetry and a database for a service under test,
// the returned function tears both down.
func SetupService(t testing.TB, params ServiceParams) (ServiceResult, func()) {
	cleanupTelemetry := telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", params.Name))

	dbpath := ":memory:"
	if params.DbPath != "" && params.DbPath != ":memory:" {
		var err error
		dbpath, err = devenv.ResolvePath(params.DbPath)
		if err != nil {
			t.Fatal(err)
		}
	}
	database, err := configsqlite.Open(context.Background(), dbpath, params.DbSchema)
	if err != nil {
		t.Fatal(err)
	}

	return ServiceResult{DB: database}, func() {
		database.Close()
		cleanupTelemetry()
	}
}
