package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadTuningOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	body := []byte("spawn:\n  max_enemies: 50\ncombat:\n  touch_damage: 5\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	tun, err := LoadTuning(path)
	require.NoError(t, err)

	assert.Equal(t, 50, tun.Spawn.MaxEnemies)
	assert.Equal(t, 5, tun.Combat.TouchDamage)
	// untouched keys keep defaults
	assert.Equal(t, 18, tun.Combat.TouchCooldown)
	assert.InDelta(t, 0.07, tun.Flock.Smoothing, 1e-12)
	assert.InDelta(t, 0.12, tun.Spawn.Archetypes[0].Radius, 1e-12)
}

func TestLoadTuningRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("combat:\n  shoot_cooldown_min: 100\n  shoot_cooldown_max: 10\n"), 0o600))

	_, err := LoadTuning(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTuning)
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SPACESHOOT_TEST_INT", "42")
	t.Setenv("SPACESHOOT_TEST_BAD", "x")
	t.Setenv("SPACESHOOT_TEST_BOOL", "yes")

	assert.Equal(t, 42, GetEnvInt("SPACESHOOT_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("SPACESHOOT_TEST_BAD", 1))
	assert.Equal(t, 7, GetEnvInt("SPACESHOOT_TEST_UNSET", 7))
	assert.True(t, GetEnvBool("SPACESHOOT_TEST_BOOL", false))
	assert.False(t, GetEnvBool("SPACESHOOT_TEST_UNSET", false))
	assert.Equal(t, "fallback", GetEnv("SPACESHOOT_TEST_UNSET", "fallback"))
}

func TestLoadTuningFromEnv(t *testing.T) {
	t.Setenv("SPACESHOOT_TUNING", "")
	tun, err := LoadTuningFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), tun)

	path := filepath.Join(t.TempDir(), "t.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flock:\n  smoothing: 0.5\n"), 0o600))
	t.Setenv("SPACESHOOT_TUNING", path)
	tun, err = LoadTuningFromEnv()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, tun.Flock.Smoothing, 1e-12)
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, log.DebugLevel, NewLogger(io.Discard, "test").GetLevel())

	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, log.InfoLevel, NewLogger(io.Discard, "test").GetLevel())
}
