package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/meshknn-research/config"
)

func TestLoadScenarioMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadScenario(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultScenario(), cfg)
}

func TestLoadScenarioOverridesOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("k: 5\nheuristic: fence\n"), 0o644))

	cfg, err := config.LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.K)
	assert.Equal(t, config.HeuristicFence, cfg.HeuristicKind)
	assert.Equal(t, config.DefaultScenario().TimeLimitMicro, cfg.TimeLimitMicro)
	assert.Equal(t, config.DefaultScenario().Epsilon, cfg.Epsilon)
}

func TestLoadScenarioInvalidYAMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("k: [this is not an int\n"), 0o644))

	_, err := config.LoadScenario(path)
	assert.Error(t, err)
}
