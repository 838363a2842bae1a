package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
	"mobius/calculator"
	"mobius/model"
)

const DefaultPath = "conf/config.ini"

type Config struct {
	Mobius MobiusCfg
	Render RenderCfg
	Server ServerCfg
	Log    LogCfg
}

// [mobius] 计算参数
type MobiusCfg struct {
	Radius     float64
	Width      float64
	Resolution int
	Workers    int
	Derivative string // analytic / central
	Rule       string // trapezoid / riemann
}

// [render] 绘图参数
type RenderCfg struct {
	Output    string
	Width     int
	Height    int
	Elevation float64 // 俯仰角，度
	Azimuth   float64 // 方位角，度
	Title     string
}

// [server] websocket 推送
type ServerCfg struct {
	Addr          string
	MaxResolution int // 单次请求允许的最大分辨率
	Step          int // 推送网格的抽样间隔
}

type LogCfg struct {
	Level string
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return loadCfg(ini.Empty())
}

// Load reads the ini file at path. A missing file is not an error: the
// defaults are returned and a warning is logged.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", path).Warn("配置文件不存在，使用默认配置")
		return Default(), nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return loadCfg(file), nil
}

func loadCfg(file *ini.File) Config {
	mobius := file.Section("mobius")
	render := file.Section("render")
	server := file.Section("server")
	return Config{
		Mobius: MobiusCfg{
			Radius:     mobius.Key("radius").MustFloat64(model.DefaultRadius),
			Width:      mobius.Key("width").MustFloat64(model.DefaultWidth),
			Resolution: mobius.Key("resolution").MustInt(model.DefaultResolution),
			Workers:    mobius.Key("workers").MustInt(1),
			Derivative: mobius.Key("derivative").MustString("analytic"),
			Rule:       mobius.Key("rule").MustString("trapezoid"),
		},
		Render: RenderCfg{
			Output:    render.Key("output").MustString("mobius_strip.png"),
			Width:     render.Key("width").MustInt(1000),
			Height:    render.Key("height").MustInt(800),
			Elevation: render.Key("elevation").MustFloat64(30),
			Azimuth:   render.Key("azimuth").MustFloat64(-60),
			Title:     render.Key("title").MustString("Möbius Strip"),
		},
		Server: ServerCfg{
			Addr:          server.Key("addr").MustString(":9000"),
			MaxResolution: server.Key("max_resolution").MustInt(400),
			Step:          server.Key("step").MustInt(1),
		},
		Log: LogCfg{
			Level: file.Section("log").Key("level").MustString("info"),
		},
	}
}

func (c MobiusCfg) Params() model.Params {
	return model.Params{
		Radius:     c.Radius,
		Width:      c.Width,
		Resolution: c.Resolution,
	}
}

// Options converts the textual settings into calculator options.
func (c MobiusCfg) Options() ([]calculator.Option, error) {
	d, err := calculator.ParseDerivative(c.Derivative)
	if err != nil {
		return nil, fmt.Errorf("[mobius] derivative: %w", err)
	}
	r, err := calculator.ParseRule(c.Rule)
	if err != nil {
		return nil, fmt.Errorf("[mobius] rule: %w", err)
	}
	return []calculator.Option{
		calculator.WithWorkers(c.Workers),
		calculator.WithDerivative(d),
		calculator.WithRule(r),
	}, nil
}

// Apply sets the global logrus level.
func (c LogCfg) Apply() error {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return fmt.Errorf("[log] level: %w", err)
	}
	log.SetLevel(level)
	return nil
}
