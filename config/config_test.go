package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mobius/model"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	content := `
[mobius]
radius = 1.5
width = 0.25
resolution = 64
workers = 3
derivative = central
rule = riemann

[render]
output = out.png
elevation = 45

[server]
addr = :8080

[log]
level = debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, model.Params{Radius: 1.5, Width: 0.25, Resolution: 64}, cfg.Mobius.Params())
	assert.Equal(t, 3, cfg.Mobius.Workers)
	assert.Equal(t, "central", cfg.Mobius.Derivative)
	assert.Equal(t, "riemann", cfg.Mobius.Rule)
	assert.Equal(t, "out.png", cfg.Render.Output)
	assert.Equal(t, 45.0, cfg.Render.Elevation)
	// 未配置的键使用默认值
	assert.Equal(t, -60.0, cfg.Render.Azimuth)
	assert.Equal(t, 1000, cfg.Render.Width)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 400, cfg.Server.MaxResolution)
	assert.Equal(t, "debug", cfg.Log.Level)

	opts, err := cfg.Mobius.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, model.Params{
		Radius:     model.DefaultRadius,
		Width:      model.DefaultWidth,
		Resolution: model.DefaultResolution,
	}, cfg.Mobius.Params())
	assert.Equal(t, "mobius_strip.png", cfg.Render.Output)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	require.NoError(t, os.WriteFile(path, []byte("[mobius\nradius = 1\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestMobiusCfg_OptionsRejectsUnknown(t *testing.T) {
	c := Default().Mobius
	c.Rule = "simpson"
	_, err := c.Options()
	assert.Error(t, err)

	c = Default().Mobius
	c.Derivative = "forward"
	_, err = c.Options()
	assert.Error(t, err)
}

func TestLogCfg_Apply(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	require.NoError(t, LogCfg{Level: "warn"}.Apply())
	assert.Equal(t, log.WarnLevel, log.GetLevel())
	assert.Error(t, LogCfg{Level: "loud"}.Apply())
}
