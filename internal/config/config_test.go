package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "greed.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "greed.hcl", `
players   = ["alice", "bob", "carol"]
seed      = 42
log_level = "debug"
auto_roll = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Players:  []string{"alice", "bob", "carol"},
		Seed:     42,
		LogLevel: "debug",
		AutoRoll: true,
	}, cfg)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeFile(t, "greed.hcl", `seed = 7`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Empty(t, cfg.Players)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad syntax", content: `players = [`, wantErr: "failed to parse HCL file"},
		{name: "unknown attribute", content: `dice = 6`, wantErr: "failed to decode HCL"},
		{name: "bad log level", content: `log_level = "loud"`, wantErr: "invalid log level"},
		{name: "duplicate player", content: `players = ["alice", "alice"]`, wantErr: `player "alice" is listed twice`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "greed.hcl", tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvPlayers, "alice, bob ,,carol")
	t.Setenv(EnvAutoRoll, "true")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, &Config{
		Players:  []string{"alice", "bob", "carol"},
		Seed:     99,
		LogLevel: "warn",
		AutoRoll: true,
	}, cfg)
}

func TestApplyEnvLeavesValidationToCaller(t *testing.T) {
	t.Setenv(EnvLogLevel, "bogus")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "bogus", cfg.LogLevel)
	assert.ErrorContains(t, cfg.Validate(), "invalid log level")
}

func TestApplyEnvErrors(t *testing.T) {
	t.Run("bad seed", func(t *testing.T) {
		t.Setenv(EnvSeed, "lucky")
		assert.ErrorContains(t, Default().ApplyEnv(), EnvSeed)
	})

	t.Run("bad auto roll", func(t *testing.T) {
		t.Setenv(EnvAutoRoll, "sometimes")
		assert.ErrorContains(t, Default().ApplyEnv(), EnvAutoRoll)
	})
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	path := writeFile(t, ".env", "GREED_SEED=1234\n")
	t.Setenv(EnvSeed, "")
	require.NoError(t, os.Unsetenv(EnvSeed))
	require.NoError(t, LoadDotEnv(path))

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, int64(1234), cfg.Seed)
}
