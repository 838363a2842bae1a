package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_ComputesAndRenders(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "strip.png")
	out, err := run(t,
		"--config", filepath.Join(dir, "none.ini"),
		"-R", "5", "-w", "2", "-n", "40",
		"--output", img,
		"--log-level", "warn",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Surface Area: ")
	assert.Contains(t, out, "Edge Length: ")

	info, err := os.Stat(img)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCompute_JSON(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "compute", "--config", filepath.Join(dir, "none.ini"), "-n", "5", "--json", "--log-level", "warn")
	require.NoError(t, err)

	var payload struct {
		Result struct {
			SurfaceArea float64 `json:"surface_area"`
			EdgeLength  float64 `json:"edge_length"`
		} `json:"result"`
		Mesh struct {
			X [][]float64 `json:"x"`
		} `json:"mesh"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Greater(t, payload.Result.SurfaceArea, 0.0)
	assert.Greater(t, payload.Result.EdgeLength, 0.0)
	assert.Len(t, payload.Mesh.X, 5)
}

func TestCompute_InvalidParameter(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "compute", "--config", filepath.Join(dir, "none.ini"), "-n", "1", "--log-level", "warn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolution")

	_, err = run(t, "compute", "--config", filepath.Join(dir, "none.ini"), "-w", "0", "--log-level", "warn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
}
