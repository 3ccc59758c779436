package repository_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyama86/incidentseed/domain/repository"
	"github.com/pyama86/incidentseed/generator"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Uint64("seed", 42, "")
	fs.String("output-dir", "", "")
	fs.Int("workers", 1, "")
	fs.String("log-level", "", "")
	fs.String("log-format", "", "")
	return fs
}

func TestConfigDefaults(t *testing.T) {
	c, err := repository.NewConfigRepository("", testFlags())
	require.NoError(t, err)

	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, "incident_management_data", c.OutputDir)
	assert.Equal(t, "info", c.Log.Level)
	assert.True(t, c.Export.JSON.Enabled)
	assert.False(t, c.Export.DynamoDB.Enabled)
	assert.Equal(t, generator.DefaultOptions(), c.GeneratorOptions())
	assert.Equal(t, time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC), c.ReferenceTime())
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "incidentseed.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed = 7
workers = 4

[population]
clients = 30

[export.dynamodb]
enabled = true
table = "fixtures"
endpoint = "http://localhost:8000"
`), 0o600))

	c, err := repository.NewConfigRepository(path, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), c.Seed)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 30, c.Population.Clients)
	assert.Equal(t, 100, c.Population.Vendors)
	assert.True(t, c.Export.DynamoDB.Enabled)
	assert.Equal(t, "fixtures", c.Export.DynamoDB.Table)
}

func TestConfigPrecedence(t *testing.T) {
	t.Setenv("INCIDENTSEED_SEED", "11")
	t.Setenv("INCIDENTSEED_OUTPUT_DIR", "from-env")
	t.Setenv("INCIDENTSEED_POPULATION_CLIENTS", "5")

	fs := testFlags()
	require.NoError(t, fs.Set("seed", "99"))

	c, err := repository.NewConfigRepository("", fs)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), c.Seed, "flags win over env")
	assert.Equal(t, "from-env", c.OutputDir)
	assert.Equal(t, 5, c.Population.Clients)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"zero workers", map[string]string{"INCIDENTSEED_WORKERS": "0"}},
		{"unknown log level", map[string]string{"INCIDENTSEED_LOG_LEVEL": "trace"}},
		{"snapshot before reference", map[string]string{"INCIDENTSEED_SNAPSHOT_TIME": "2025-01-01T00:00:00"}},
		{"malformed reference", map[string]string{"INCIDENTSEED_REFERENCE_TIME": "2025-08-31"}},
		{"dynamodb endpoint", map[string]string{
			"INCIDENTSEED_EXPORT_DYNAMODB_ENABLED":  "true",
			"INCIDENTSEED_EXPORT_DYNAMODB_ENDPOINT": "localhost 8000",
		}},
		{"bad webhook", map[string]string{"INCIDENTSEED_NOTIFY_SLACK_WEBHOOK_URL": "not a url"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := repository.NewConfigRepository("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validate config error")
		})
	}
}

func TestConfigMissingFile(t *testing.T) {
	_, err := repository.NewConfigRepository(filepath.Join(t.TempDir(), "missing.toml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config error")
}
