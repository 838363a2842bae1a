package calculator

import (
	"mobius/model"
)

// 网格坐标，X[i][j]、Y[i][j]、Z[i][j] 对应 (U[i], V[j]) 处的同一个点
// 构造后只读
type Mesh struct {
	X [][]float64
	Y [][]float64
	Z [][]float64
}

func newMesh(n int) *Mesh {
	m := &Mesh{
		X: make([][]float64, n),
		Y: make([][]float64, n),
		Z: make([][]float64, n),
	}
	// 每个坐标分量一块连续内存
	xs, ys, zs := make([]float64, n*n), make([]float64, n*n), make([]float64, n*n)
	for i := 0; i < n; i++ {
		m.X[i] = xs[i*n : (i+1)*n]
		m.Y[i] = ys[i*n : (i+1)*n]
		m.Z[i] = zs[i*n : (i+1)*n]
	}
	return m
}

// BuildMesh samples s on every (U[i], V[j]) pair of g.
// Rows are spread over e; a nil executor builds sequentially.
func BuildMesh(s Surface, g *Grid, e *executor) *Mesh {
	if e == nil {
		e = newExecutor(1)
	}
	n := g.Size()
	m := newMesh(n)
	e.dispatchTask(0, n, func(t task) {
		for i := t.start; i < t.end; i++ {
			for j := 0; j < n; j++ {
				p := s.Point(g.U[i], g.V[j])
				m.X[i][j], m.Y[i][j], m.Z[i][j] = p.X, p.Y, p.Z
			}
		}
	})
	return m
}

func (m *Mesh) Size() int {
	return len(m.X)
}

func (m *Mesh) At(i, j int) model.Point {
	return model.Point{X: m.X[i][j], Y: m.Y[i][j], Z: m.Z[i][j]}
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max model.Point) {
	min = m.At(0, 0)
	max = min
	for i := range m.X {
		for j := range m.X[i] {
			p := m.At(i, j)
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.Z < min.Z {
				min.Z = p.Z
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
			if p.Z > max.Z {
				max.Z = p.Z
			}
		}
	}
	return min, max
}
