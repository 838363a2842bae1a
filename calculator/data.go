package calculator

import (
	"mobius/model"
)

// 推送给前端的网格数据
type MeshData struct {
	Params      model.Params `json:"params"`
	Step        int          `json:"step"`
	U           []float64    `json:"u"`
	V           []float64    `json:"v"`
	X           [][]float64  `json:"x"`
	Y           [][]float64  `json:"y"`
	Z           [][]float64  `json:"z"`
	SurfaceArea float64      `json:"surface_area"`
	EdgeLength  float64      `json:"edge_length"`
}

// BuildData copies the mesh keeping every step-th row and column.
// 最后一行和最后一列总是保留，边界不会因为抽样丢失
func (s *Strip) BuildData(step int) *MeshData {
	if step < 1 {
		step = 1
	}
	idx := sampleIndexes(s.grid.Size(), step)

	data := &MeshData{
		Params:      s.params,
		Step:        step,
		U:           make([]float64, len(idx)),
		V:           make([]float64, len(idx)),
		X:           make([][]float64, len(idx)),
		Y:           make([][]float64, len(idx)),
		Z:           make([][]float64, len(idx)),
		SurfaceArea: s.SurfaceArea(),
		EdgeLength:  s.EdgeLength(),
	}
	for a, i := range idx {
		data.U[a] = s.grid.U[i]
		data.V[a] = s.grid.V[i]
		data.X[a] = make([]float64, len(idx))
		data.Y[a] = make([]float64, len(idx))
		data.Z[a] = make([]float64, len(idx))
		for b, j := range idx {
			data.X[a][b] = s.mesh.X[i][j]
			data.Y[a][b] = s.mesh.Y[i][j]
			data.Z[a][b] = s.mesh.Z[i][j]
		}
	}
	return data
}

func sampleIndexes(n, step int) []int {
	res := make([]int, 0, n/step+2)
	for i := 0; i < n; i += step {
		res = append(res, i)
	}
	if res[len(res)-1] != n-1 {
		res = append(res, n-1)
	}
	return res
}
