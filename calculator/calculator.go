package calculator

import (
	"mobius/model"
	"time"

	log "github.com/sirupsen/logrus"
)

// calculator 的接口定义
type Calculator interface {
	// 构造参数
	Params() model.Params

	// 参数网格与网格坐标，只读
	Grid() *Grid
	Mesh() *Mesh

	// 数值近似
	SurfaceArea() float64
	EdgeLength() float64
	BoundaryLength() float64

	// 汇总结果
	Result() model.Result

	// 构建推送数据，step 为抽样间隔
	BuildData(step int) *MeshData
}

// Strip holds the immutable parameters of one Möbius strip together with the
// grid and mesh derived from them at construction.
type Strip struct {
	params  model.Params
	surface Surface
	grid    *Grid
	mesh    *Mesh

	opts options
	e    *executor
}

var _ Calculator = (*Strip)(nil)

// NewStrip validates p and builds the grid and mesh once.
func NewStrip(p model.Params, opts ...Option) (*Strip, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	s := &Strip{
		params:  p,
		surface: NewSurface(p),
		grid:    NewGrid(p),
		opts:    o,
		e:       newExecutor(o.workers),
	}

	start := time.Now()
	s.mesh = BuildMesh(s.surface, s.grid, s.e)
	log.WithFields(log.Fields{
		"radius":     p.Radius,
		"width":      p.Width,
		"resolution": p.Resolution,
		"workers":    o.workers,
		"cost":       time.Since(start),
	}).Debug("mesh built")
	return s, nil
}

func (s *Strip) Params() model.Params {
	return s.params
}

func (s *Strip) Surface() Surface {
	return s.surface
}

func (s *Strip) Grid() *Grid {
	return s.grid
}

func (s *Strip) Mesh() *Mesh {
	return s.mesh
}

func (s *Strip) SurfaceArea() float64 {
	return surfaceArea(s.surface, s.grid, s.mesh, s.opts, s.e)
}

func (s *Strip) EdgeLength() float64 {
	return EdgeLength(s.surface, s.grid)
}

func (s *Strip) BoundaryLength() float64 {
	return BoundaryLength(s.surface, s.grid)
}

func (s *Strip) Result() model.Result {
	start := time.Now()
	res := model.Result{
		Params:         s.params,
		SurfaceArea:    s.SurfaceArea(),
		EdgeLength:     s.EdgeLength(),
		BoundaryLength: s.BoundaryLength(),
	}
	res.Elapsed = time.Since(start)
	log.WithFields(log.Fields{
		"params":       s.params.String(),
		"derivative":   s.opts.derivative.String(),
		"rule":         s.opts.rule.String(),
		"surface_area": res.SurfaceArea,
		"edge_length":  res.EdgeLength,
		"cost":         res.Elapsed,
	}).Info("measurements computed")
	return res
}
