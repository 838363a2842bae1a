package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
	"mobius/calculator"
	"mobius/config"
	"mobius/render"
	"mobius/server"
)

// 命令行参数，非零值覆盖配置文件
type flags struct {
	configPath string
	radius     float64
	width      float64
	resolution int
	workers    int
	logLevel   string

	output string
	asJSON bool
	addr   string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "mobius",
		Short:         "Möbius strip mesh, surface area and edge length",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := setup(cmd, f)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), s)
			return renderStrip(cfg, s)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", config.DefaultPath, "ini configuration file")
	pf.Float64VarP(&f.radius, "radius", "R", 0, "distance from the center to the strip midline")
	pf.Float64VarP(&f.width, "width", "w", 0, "strip width")
	pf.IntVarP(&f.resolution, "resolution", "n", 0, "samples per grid direction (>= 2)")
	pf.IntVar(&f.workers, "workers", 0, "goroutines evaluating grid rows")
	pf.StringVar(&f.logLevel, "log-level", "", "logrus level (debug, info, warn, error)")
	root.Flags().StringVarP(&f.output, "output", "o", "", "image path")

	root.AddCommand(newComputeCmd(f), newRenderCmd(f), newServeCmd(f))
	return root
}

func newComputeCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Print surface area and edge length",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := setup(cmd, f)
			if err != nil {
				return err
			}
			if !f.asJSON {
				printResult(cmd.OutOrStdout(), s)
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Result interface{}          `json:"result"`
				Mesh   *calculator.MeshData `json:"mesh"`
			}{s.Result(), s.BuildData(1)})
		},
	}
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print measurements and mesh as JSON")
	return cmd
}

func newRenderCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the strip into a PNG image",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := setup(cmd, f)
			if err != nil {
				return err
			}
			return renderStrip(cfg, s)
		},
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "image path")
	return cmd
}

func newServeCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Push meshes and measurements to websocket clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			opts, err := cfg.Mobius.Options()
			if err != nil {
				return err
			}
			upgrader := websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			}
			s := server.NewServer(cfg.Server.Addr, upgrader, server.Settings{
				MaxResolution: cfg.Server.MaxResolution,
				Step:          cfg.Server.Step,
				Options:       opts,
				Render:        renderOptions(cfg),
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.Serve(ctx)
		},
	}
	cmd.Flags().StringVar(&f.addr, "addr", "", "listen address")
	return cmd
}

// loadConfig 读取配置文件并应用命令行覆盖
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("radius") {
		cfg.Mobius.Radius = f.radius
	}
	if cmd.Flags().Changed("width") {
		cfg.Mobius.Width = f.width
	}
	if cmd.Flags().Changed("resolution") {
		cfg.Mobius.Resolution = f.resolution
	}
	if cmd.Flags().Changed("workers") {
		cfg.Mobius.Workers = f.workers
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.output != "" {
		cfg.Render.Output = f.output
	}
	if f.addr != "" {
		cfg.Server.Addr = f.addr
	}
	if err := cfg.Log.Apply(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setup(cmd *cobra.Command, f *flags) (config.Config, *calculator.Strip, error) {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return cfg, nil, err
	}
	opts, err := cfg.Mobius.Options()
	if err != nil {
		return cfg, nil, err
	}
	s, err := calculator.NewStrip(cfg.Mobius.Params(), opts...)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, s, nil
}

func printResult(w io.Writer, s calculator.Calculator) {
	res := s.Result()
	fmt.Fprintf(w, "Surface Area: %.2f\n", res.SurfaceArea)
	fmt.Fprintf(w, "Edge Length: %.2f\n", res.EdgeLength)
}

func renderOptions(cfg config.Config) render.Options {
	return render.Options{
		Width:     cfg.Render.Width,
		Height:    cfg.Render.Height,
		Elevation: cfg.Render.Elevation,
		Azimuth:   cfg.Render.Azimuth,
		Title:     cfg.Render.Title,
	}
}

func renderStrip(cfg config.Config, s calculator.Calculator) error {
	opts := renderOptions(cfg)
	opts.Caption = s.Params().String()
	r, err := render.NewRenderer(opts)
	if err != nil {
		return err
	}
	return r.SavePNG(s.Mesh(), cfg.Render.Output)
}
