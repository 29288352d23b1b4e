package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestSimulate_JSONGoesToCommandOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yaml", "scheduler:\n  round_robin:\n    time_quantum: 4\n")
	input := writeFile(t, dir, "processes.txt", "1,0,5\n2,1,3\n3,2,1\n")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfg, "simulate", input, "--json"})
	require.NoError(t, cmd.Execute())

	body := out.Bytes()
	assert.Equal(t, "fcfs", gjson.GetBytes(body, "0.algorithm").String())
	assert.Equal(t, "rr", gjson.GetBytes(body, "2.algorithm").String())
	assert.Equal(t, int64(9), gjson.GetBytes(body, "2.total_time").Int())
}

func TestSimulate_MalformedConfigReturnsError(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yaml", "scheduler: [not: valid\n")
	input := writeFile(t, dir, "processes.txt", "1,0,5\n")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "simulate", input})
	assert.Error(t, cmd.Execute())
}
