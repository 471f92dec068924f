package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.Equal(t, "5000", cfg.AppPort)
	require.Equal(t, StorageDriverMongo, cfg.StorageDriver)
	require.Equal(t, 10, cfg.DefaultPageLimit)
	require.Equal(t, 100, cfg.MaxPageLimit)
	require.Equal(t, 3, cfg.RefNumberMaxAttempts)
	require.Equal(t, 10*time.Second, cfg.MongoTimeout)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(envMap(map[string]string{
		"APP_PORT":               "8080",
		"STORAGE_DRIVER":         "memory",
		"CORS_HIGH_SECURITY":     "true",
		"SEED_DB_WITH_TEST_DATA": "1",
		"MAX_PAGE_LIMIT":         "50",
		"MONGO_TIMEOUT":          "2s",
		"STATS_CRON":             "",
	}))
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	require.True(t, cfg.CORSHighSecurity)
	require.True(t, cfg.SeedDBWithTestData)
	require.Equal(t, 50, cfg.MaxPageLimit)
	require.Equal(t, 2*time.Second, cfg.MongoTimeout)
	require.Empty(t, cfg.StatsCron, "empty STATS_CRON disables the job")
	require.NoError(t, cfg.Validate())
}

func TestApplyEnvCollectsParseErrors(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(envMap(map[string]string{
		"DEFAULT_PAGE_LIMIT": "ten",
		"CORS_HIGH_SECURITY": "maybe",
	}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "DEFAULT_PAGE_LIMIT")
	require.Contains(t, err.Error(), "CORS_HIGH_SECURITY")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"mongo without uri", func(c *Config) {}, "MONGO_URI"},
		{"unknown driver", func(c *Config) { c.StorageDriver = "postgres" }, "unknown STORAGE_DRIVER"},
		{"max below default", func(c *Config) {
			c.StorageDriver = StorageDriverMemory
			c.MaxPageLimit = 5
		}, "MAX_PAGE_LIMIT"},
		{"zero attempts", func(c *Config) {
			c.StorageDriver = StorageDriverMemory
			c.RefNumberMaxAttempts = 0
		}, "REF_NUMBER_MAX_ATTEMPTS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoadLayersYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"storage_driver: memory\napp_port: \"7000\"\nmongo_db_name: fromyaml\nmongo_timeout: 3s\n",
	), 0o600))

	chdir(t, dir)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("APP_PORT", "7100")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	require.Equal(t, "fromyaml", cfg.MongoDBName)
	require.Equal(t, 3*time.Second, cfg.MongoTimeout)
	require.Equal(t, "7100", cfg.AppPort, "environment wins over YAML")
}

func TestLoadRejectsUnknownYAMLKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage_drvier: memory\n"), 0o600))

	chdir(t, dir)
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	require.Error(t, err)
}

// chdir switches the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
