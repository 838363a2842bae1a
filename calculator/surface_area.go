package calculator

import (
	"mobius/model"
)

// SurfaceArea integrates |∂r/∂u × ∂r/∂v| over the grid.
// m is only read for DerivativeCentral and may be nil otherwise.
func SurfaceArea(s Surface, g *Grid, m *Mesh, opts ...Option) float64 {
	o := buildOptions(opts)
	return surfaceArea(s, g, m, o, newExecutor(o.workers))
}

func surfaceArea(s Surface, g *Grid, m *Mesh, o options, e *executor) float64 {
	n := g.Size()
	if o.derivative == DerivativeCentral && m == nil {
		m = BuildMesh(s, g, e)
	}
	weights := quadratureWeights(n, o.rule)

	// 每行的部分和由负责该行的 worker 写入，最后按行顺序累加，保证结果可复现
	rowSums := make([]float64, n)
	e.dispatchTask(0, n, func(t task) {
		for i := t.start; i < t.end; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				var density float64
				if o.derivative == DerivativeCentral {
					du, dv := meshPartials(m, g, i, j)
					density = du.Cross(dv).Norm()
				} else {
					density = s.areaDensity(g.U[i], g.V[j])
				}
				sum += weights[j] * density
			}
			rowSums[i] = weights[i] * sum
		}
	})

	total := 0.0
	for i := 0; i < n; i++ {
		total += rowSums[i]
	}
	return total * g.Du() * g.Dv()
}

// 梯形公式首尾权重为 1/2
func quadratureWeights(n int, rule Rule) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	if rule == RuleTrapezoid {
		w[0] = 0.5
		w[n-1] = 0.5
	}
	return w
}

// meshPartials 在网格上做差分，内部点中心差分，边界点单侧差分
func meshPartials(m *Mesh, g *Grid, i, j int) (du, dv model.Vector) {
	n := g.Size()

	i0, i1 := i-1, i+1
	if i == 0 {
		i0 = 0
	}
	if i == n-1 {
		i1 = n - 1
	}
	du = m.At(i1, j).Sub(m.At(i0, j)).Scale(1 / (g.U[i1] - g.U[i0]))

	j0, j1 := j-1, j+1
	if j == 0 {
		j0 = 0
	}
	if j == n-1 {
		j1 = n - 1
	}
	dv = m.At(i, j1).Sub(m.At(i, j0)).Scale(1 / (g.V[j1] - g.V[j0]))
	return du, dv
}
