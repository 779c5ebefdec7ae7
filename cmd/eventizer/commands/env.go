package commands

import (
	"context"
	"database/sql"
	"log/slog"

	"eventizer/lib/configutil"
	"eventizer/lib/restyutil"
	"eventizer/lib/scrapers/meetup"
	"eventizer/lib/telemetry"
	"eventizer/lib/util/serviceutil"
	"eventizer/services/ingest"
	"eventizer/services/ingest/db"

	"github.com/go-resty/resty/v2"
)

func loadConfig() Config {
	config, err := configutil.ReadConfig[Config](configPath)
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	config.applyDefaults()
	return config
}

func setupTelemetry(ctx context.Context, config Config) telemetry.Telemetry {
	var t telemetry.Telemetry
	var err error
	if config.Telemetry != nil {
		t, err = telemetry.Setup(ctx, "eventizer", *config.Telemetry)
	} else {
		t, err = telemetry.SetupFromEnv(ctx, "eventizer")
	}
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	return t
}

func openDB(ctx context.Context, config Config) *sql.DB {
	database, err := config.Database.OpenDB(ctx, db.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}
	return database
}

func newClient(config Config) *meetup.Client {
	opts := config.clientOptions()
	if verbose {
		output, err := restyutil.NewFilesystemOutput("<dev_state>/resty/meetup")
		if err != nil {
			slog.Warn("http exchanges will not be dumped", "err", err)
		} else {
			opts.Instrument = func(client *resty.Client) {
				restyutil.InstrumentClient(client, output)
			}
		}
	}

	client, err := meetup.NewClient(opts)
	if err != nil {
		serviceutil.Fatal("failed to create meetup client", err)
	}
	return client
}

// openService wires config, telemetry, storage and the remote client. The
// returned function releases all of them.
func openService(ctx context.Context) (*ingest.Service, Config, func()) {
	config := loadConfig()
	t := setupTelemetry(ctx, config)
	database := openDB(ctx, config)
	client := newClient(config)

	service := ingest.NewService(database, client, nil, config.ingestOptions())
	return service, config, func() {
		database.Close()
		err := t.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to flush telemetry", "err", err)
		}
	}
}

// openStore wires only config and storage, for commands that never talk to
// the remote api.
func openStore(ctx context.Context) (*ingest.Store, func()) {
	config := loadConfig()
	database := openDB(ctx, config)
	return ingest.NewStore(database), func() {
		database.Close()
	}
}
