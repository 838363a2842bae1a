package calculator

import (
	"math"
	"mobius/model"
)

// 参数网格
// U: [0, 2π] 上 n 个等距采样，包含两个端点，步长 2π/(n-1)
// V: [-w/2, w/2] 上 n 个等距采样，步长 w/(n-1)
type Grid struct {
	U []float64
	V []float64

	du float64
	dv float64
}

func NewGrid(p model.Params) *Grid {
	n := p.Resolution
	return &Grid{
		U:  linspace(0, 2*math.Pi, n),
		V:  linspace(-p.Width/2, p.Width/2, n),
		du: 2 * math.Pi / float64(n-1),
		dv: p.Width / float64(n-1),
	}
}

// linspace 返回 [start, end] 上 n 个等距点，最后一个点严格等于 end
func linspace(start, end float64, n int) []float64 {
	res := make([]float64, n)
	if n == 1 {
		res[0] = start
		return res
	}
	step := (end - start) / float64(n-1)
	for i := 0; i < n-1; i++ {
		res[i] = start + float64(i)*step
	}
	res[n-1] = end
	return res
}

func (g *Grid) Size() int {
	return len(g.U)
}

// Du is the spacing between consecutive u samples.
func (g *Grid) Du() float64 {
	return g.du
}

// Dv is the (unsigned) spacing between consecutive v samples.
func (g *Grid) Dv() float64 {
	return g.dv
}

// Reflected returns the grid under the relabeling v -> -v.
// U is shared with g, both grids are read-only.
func (g *Grid) Reflected() *Grid {
	v := make([]float64, len(g.V))
	for j := range g.V {
		v[j] = -g.V[j]
	}
	return &Grid{
		U:  g.U,
		V:  v,
		du: g.du,
		dv: g.dv,
	}
}
