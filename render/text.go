package render

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/vector"
	"mobius/model"
)

var (
	textColor = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	axisColor = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
)

func (r *Renderer) drawLabels(img *image.RGBA) error {
	if r.opts.Title != "" {
		w := measureString(r.font, r.opts.Title, titleSize)
		x := (r.opts.Width - w) / 2
		if err := drawText(img, x, margin/2+titleSize, r.opts.Title, titleSize, textColor, r.font); err != nil {
			return err
		}
	}
	if r.opts.Caption != "" {
		if err := drawText(img, margin/2, r.opts.Height-margin/2, r.opts.Caption, labelSize, textColor, r.font); err != nil {
			return err
		}
	}
	return nil
}

// drawAxes 在右下角画坐标轴指示
func (r *Renderer) drawAxes(img *image.RGBA) {
	const length = 30.0
	ox := float64(r.opts.Width - margin - 10)
	oy := float64(r.opts.Height - margin - 10)
	z := vector.NewRasterizer(1, 1)
	axes := []struct {
		name string
		dir  model.Point
	}{
		{"X", model.Point{X: 1}},
		{"Y", model.Point{Y: 1}},
		{"Z", model.Point{Z: 1}},
	}
	for _, a := range axes {
		sx, sy, _ := r.camera.project(a.dir)
		ex, ey := ox+sx*length, oy-sy*length
		drawLine(z, img, ox, oy, ex, ey, 1.5, axisColor)
		// 标签失败不影响图像
		_ = drawText(img, int(ex+3*sx), int(ey-3*sy)+labelSize/2, a.name, labelSize, axisColor, r.font)
	}
}

func drawLine(z *vector.Rasterizer, img *image.RGBA, x0, y0, x1, y1, width float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	// 线段用细长四边形表示
	nx, ny := -dy*width/2/l, dx*width/2/l
	pts := [][2]float32{
		{float32(x0 + nx), float32(y0 + ny)},
		{float32(x1 + nx), float32(y1 + ny)},
		{float32(x1 - nx), float32(y1 - ny)},
		{float32(x0 - nx), float32(y0 - ny)},
	}
	fillPolygon(z, img, pts, image.NewUniform(c))
}

func drawText(img *image.RGBA, x, y int, text string, fontSize float64, fontColor color.Color, ttfFont *truetype.Font) error {
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(ttfFont)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(fontColor))
	c.SetHinting(font.HintingFull)

	pt := freetype.Pt(x, y)
	_, err := c.DrawString(text, pt)
	return err
}

// measureString 返回文字宽度，单位像素
func measureString(f *truetype.Font, text string, size float64) int {
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	return font.MeasureString(face, text).Ceil()
}
