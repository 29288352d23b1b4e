package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
port: 8080
scheduler:
  round_robin:
    time_quantum: 3
input:
  file: jobs.csv
output:
  chart: out.png
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &SchedulerConfig{
		Port:                  8080,
		RoundRobinTimeQuantum: 3,
		InputFile:             "jobs.csv",
		ChartFile:             "out.png",
	}, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "port: 7000\n"))
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, 4, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, "processes.txt", cfg.InputFile)
	assert.Empty(t, cfg.ChartFile)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "6")

	cfg, err := Load(writeConfig(t, "port: 7000\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.RoundRobinTimeQuantum)
}

func TestLoad_InvalidQuantum(t *testing.T) {
	_, err := Load(writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: 0\n"))
	assert.Error(t, err)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
