package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"eventizer/lib/configutil"
	"eventizer/lib/scrapers/meetup"

	"github.com/stretchr/testify/require"
)

func writeFile(t testing.TB, path, contents string) {
	t.Helper()
	err := os.WriteFile(path, []byte(contents), 0666)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "eventizer.json5"), `{
		// shared settings
		api_key: "placeholder",
		page_delay_seconds: 1.5,
		event_delay_seconds: 2,
		event_statuses: ["past"],
		groups: ["sqlite-users", "golang-madrid"],
	}`)
	writeFile(t, filepath.Join(dir, "eventizer.local.json5"), `{
		api_key: "real-key",
		database: { file: "crawl.db" },
	}`)

	config, err := configutil.ReadConfig[Config](filepath.Join(dir, "eventizer.json5"))
	if err != nil {
		t.Fatal(err)
	}
	config.applyDefaults()

	require.Equal(t, "real-key", config.ApiKey)
	require.Equal(t, "crawl.db", config.Database.File)
	require.Equal(t, defaultSchedule, config.Schedule)
	require.Equal(t, []string{"sqlite-users", "golang-madrid"}, config.Groups)
	require.Nil(t, config.Telemetry)
	require.Equal(t, time.UTC, config.location())

	opts := config.clientOptions()
	require.Equal(t, 1500*time.Millisecond, opts.PageDelay)
	require.Equal(t, []string{"past"}, opts.EventStatuses)
	require.Equal(t, 2*time.Second, config.ingestOptions().EventDelay)
}

func TestConfigDefaults(t *testing.T) {
	config := Config{ApiKey: "key"}
	config.applyDefaults()
	require.Equal(t, defaultDatabase, config.Database.File)
	require.Equal(t, "@every 6h", config.Schedule)

	// zero page delay leaves the client default in place
	require.Equal(t, time.Duration(0), config.clientOptions().PageDelay)
	client, err := meetup.NewClient(config.clientOptions())
	if err != nil {
		t.Fatal(err)
	}
	require.NotNil(t, client)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		config Config
		valid  bool
	}{
		{name: "empty", config: Config{}, valid: true},
		{name: "negative rate", config: Config{RequestsPerSecond: -1}},
		{name: "negative event delay", config: Config{EventDelaySeconds: -1}},
		{name: "negative page delay", config: Config{PageDelaySeconds: -1}, valid: true},
		{name: "blank status", config: Config{EventStatuses: []string{"past", " "}}},
		{name: "blank group", config: Config{Groups: []string{""}}},
		{name: "bad timezone", config: Config{Timezone: "Mars/Olympus"}},
		{name: "timezone", config: Config{Timezone: "UTC"}, valid: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.config.Validate()
			if c.valid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
		})
	}
}

func TestReadConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eventizer.json5")
	writeFile(t, path, `{ requests_per_second: -2 }`)

	_, err := configutil.ReadConfig[Config](path)
	require.ErrorContains(t, err, "requests_per_second")
}
