package configutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	ApiKey string   `json:"api_key"`
	Groups []string `json:"groups"`
	Delay  float64  `json:"delay"`
}

type validatedConfig struct {
	ApiKey string `json:"api_key"`
}

func (c *validatedConfig) Validate() error {
	if c.ApiKey == "" {
		return errors.New("api_key is required")
	}
	return nil
}

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfigMergesLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "eventizer.json5"), `{
		// comments are allowed
		api_key: "base",
		groups: ["a", "b"],
		delay: 2,
	}`)
	writeFile(t, filepath.Join(dir, "eventizer.local.json5"), `{ api_key: "local" }`)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "eventizer.json5"))
	require.NoError(t, err)
	require.Equal(t, "local", config.ApiKey)
	require.Equal(t, []string{"a", "b"}, config.Groups)
	require.Equal(t, 2.0, config.Delay)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "missing.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestReadConfigValidates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "v.json5"), `{ api_key: "" }`)

	_, err := ReadConfig[validatedConfig](filepath.Join(dir, "v.json5"))
	require.ErrorContains(t, err, "api_key is required")

	writeFile(t, filepath.Join(dir, "v.local.json5"), `{ api_key: "k" }`)
	config, err := ReadConfig[validatedConfig](filepath.Join(dir, "v.json5"))
	require.NoError(t, err)
	require.Equal(t, "k", config.ApiKey)
}
