// Package render draws a sampled Möbius strip mesh into a PNG image.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"sort"

	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"
	"mobius/calculator"
)

var (
	ErrEmptyMesh = errors.New("render: mesh has fewer than 2x2 points")
	ErrBadSize   = errors.New("render: image size must be positive")
)

const (
	margin    = 40
	titleSize = 24
	labelSize = 13
	alpha     = 204 // 0.8 透明度
)

type Options struct {
	Width     int
	Height    int
	Elevation float64 // 度
	Azimuth   float64 // 度
	Title     string
	Caption   string // 底部说明文字，可为空
}

func DefaultOptions() Options {
	return Options{
		Width:     1000,
		Height:    800,
		Elevation: 30,
		Azimuth:   -60,
		Title:     "Möbius Strip",
	}
}

type Renderer struct {
	opts   Options
	camera camera
	font   *truetype.Font
}

func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, opts.Width, opts.Height)
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	return &Renderer{
		opts:   opts,
		camera: newCamera(opts.Elevation, opts.Azimuth),
		font:   f,
	}, nil
}

// 一个网格单元投影后的四边形
type quad struct {
	pts   [4][2]float64
	depth float64
	z     float64 // 单元中心的 z 坐标，用于着色
}

// Render projects the mesh and paints its cells back to front.
func (r *Renderer) Render(m *calculator.Mesh) (*image.RGBA, error) {
	if m == nil || m.Size() < 2 {
		return nil, ErrEmptyMesh
	}
	img := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	quads := r.buildQuads(m)
	fit := r.fitToImage(quads)
	minZ, maxZ := zRange(quads)

	// 画家算法：先画远处
	sort.SliceStable(quads, func(a, b int) bool {
		return quads[a].depth < quads[b].depth
	})

	z := vector.NewRasterizer(1, 1)
	for _, q := range quads {
		var pts [4][2]float32
		for k, p := range q.pts {
			x, y := fit(p[0], p[1])
			pts[k] = [2]float32{float32(x), float32(y)}
		}
		c := viridis(normalize(q.z, minZ, maxZ))
		c.A = alpha
		fillPolygon(z, img, pts[:], image.NewUniform(c))
	}

	r.drawAxes(img)
	if err := r.drawLabels(img); err != nil {
		return nil, err
	}
	return img, nil
}

// Encode writes the rendered mesh to w as PNG.
func (r *Renderer) Encode(w io.Writer, m *calculator.Mesh) error {
	img, err := r.Render(m)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG renders the mesh into the file at path.
func (r *Renderer) SavePNG(m *calculator.Mesh, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := r.Encode(f, m); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}
	log.WithFields(log.Fields{
		"path":   path,
		"width":  r.opts.Width,
		"height": r.opts.Height,
	}).Info("image saved")
	return nil
}

func (r *Renderer) buildQuads(m *calculator.Mesh) []quad {
	n := m.Size()
	quads := make([]quad, 0, (n-1)*(n-1))
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			corners := [4][2]int{{i, j}, {i + 1, j}, {i + 1, j + 1}, {i, j + 1}}
			var q quad
			for k, c := range corners {
				p := m.At(c[0], c[1])
				sx, sy, d := r.camera.project(p)
				q.pts[k] = [2]float64{sx, sy}
				q.depth += d / 4
				q.z += p.Z / 4
			}
			quads = append(quads, q)
		}
	}
	return quads
}

// fitToImage 返回屏幕坐标到像素坐标的映射，保持长宽比并居中
func (r *Renderer) fitToImage(quads []quad) func(x, y float64) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, q := range quads {
		for _, p := range q.pts {
			minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
			minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
		}
	}

	top := float64(margin)
	if r.opts.Title != "" {
		top += titleSize
	}
	availW := float64(r.opts.Width) - 2*margin
	availH := float64(r.opts.Height) - top - margin
	if availW < 1 {
		availW = 1
	}
	if availH < 1 {
		availH = 1
	}

	scale := math.Min(availW/math.Max(maxX-minX, 1e-12), availH/math.Max(maxY-minY, 1e-12))
	offX := margin + (availW-(maxX-minX)*scale)/2
	offY := top + (availH-(maxY-minY)*scale)/2
	return func(x, y float64) (float64, float64) {
		// 图像 y 轴向下
		return offX + (x-minX)*scale, offY + (maxY-y)*scale
	}
}

func zRange(quads []quad) (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, q := range quads {
		min, max = math.Min(min, q.z), math.Max(max, q.z)
	}
	return min, max
}

func normalize(v, min, max float64) float64 {
	if max-min < 1e-12 {
		return 0.5
	}
	return (v - min) / (max - min)
}

// fillPolygon 只在多边形包围盒内光栅化，避免每个单元都扫描整幅图像
func fillPolygon(z *vector.Rasterizer, dst draw.Image, pts [][2]float32, src image.Image) {
	x0, y0 := float32(math.Inf(1)), float32(math.Inf(1))
	x1, y1 := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, p := range pts {
		x0, x1 = min32(x0, p[0]), max32(x1, p[0])
		y0, y1 = min32(y0, p[1]), max32(y1, p[1])
	}
	bx, by := int(math.Floor(float64(x0))), int(math.Floor(float64(y0)))
	bw, bh := int(math.Ceil(float64(x1)))-bx+1, int(math.Ceil(float64(y1)))-by+1
	rect := image.Rect(bx, by, bx+bw, by+bh)
	if !rect.In(dst.Bounds()) {
		return
	}

	z.Reset(bw, bh)
	z.DrawOp = draw.Over
	fx, fy := float32(bx), float32(by)
	z.MoveTo(pts[0][0]-fx, pts[0][1]-fy)
	for _, p := range pts[1:] {
		z.LineTo(p[0]-fx, p[1]-fy)
	}
	z.ClosePath()
	z.Draw(dst, rect, src, image.Point{})
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
