package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	devenv "eventizer/dev/env"
	configsqlite "eventizer/lib/configutil/sqlite"
	"eventizer/services/ingest/db"
)

const localConfig = `{
  // overrides for eventizer.json5, keep this file out of version control
  api_key: "",
  groups: [],
}
`

func createDB(ctx context.Context) error {
	dbpath, err := devenv.ResolvePath("<dev_state>/eventizer.db")
	if err != nil {
		return err
	}
	database, err := configsqlite.Open(ctx, dbpath, db.Schema)
	if err != nil {
		return err
	}
	slog.Info("created database", "path", dbpath)
	return database.Close()
}

func createLocalConfig() error {
	_, err := os.Stat("eventizer.local.json5")
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	err = os.WriteFile("eventizer.local.json5", []byte(localConfig), 0666)
	if err != nil {
		return err
	}
	slog.Info("put your api key in eventizer.local.json5")
	return nil
}

func create(ctx context.Context, recreate bool) error {
	_, err := os.Stat("go.mod")
	if os.IsNotExist(err) {
		return fmt.Errorf("the dev environment must be created in the repository root (the same directory as the 'go.mod' file)")
	}

	if recreate {
		err = os.RemoveAll("dev/.state")
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	err = createDB(ctx)
	if err != nil {
		return err
	}
	return createLocalConfig()
}

func main() {
	recreate := flag.Bool("recreate", false, "recreate the dev environment from scratch")
	flag.Parse()

	err := create(context.Background(), *recreate)
	if err != nil {
		slog.Error("failed to create dev environment", "err", err.Error())
		os.Exit(1)
	}

	slog.Info("dev environment created successfully!")
}
