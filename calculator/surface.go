package calculator

import (
	"math"
	"mobius/model"
)

// 莫比乌斯带的参数方程
// x(u,v) = (R + v·cos(u/2))·cos(u)
// y(u,v) = (R + v·cos(u/2))·sin(u)
// z(u,v) = v·sin(u/2)
// u ∈ [0, 2π), v ∈ [-w/2, w/2]，超出范围的输入同样有定义，不做检查
type Surface struct {
	R float64
}

func NewSurface(p model.Params) Surface {
	return Surface{R: p.Radius}
}

// Point evaluates the surface at (u, v).
func (s Surface) Point(u, v float64) model.Point {
	sinHalf, cosHalf := math.Sincos(u / 2)
	sinU, cosU := math.Sincos(u)
	r := s.R + v*cosHalf
	return model.Point{
		X: r * cosU,
		Y: r * sinU,
		Z: v * sinHalf,
	}
}

// Partials returns the closed-form tangent vectors ∂r/∂u and ∂r/∂v at (u, v).
func (s Surface) Partials(u, v float64) (du, dv model.Vector) {
	sinHalf, cosHalf := math.Sincos(u / 2)
	sinU, cosU := math.Sincos(u)
	r := s.R + v*cosHalf

	du = model.Vector{
		X: -v*sinHalf*cosU/2 - r*sinU,
		Y: -v*sinHalf*sinU/2 + r*cosU,
		Z: v * cosHalf / 2,
	}
	dv = model.Vector{
		X: cosHalf * cosU,
		Y: cosHalf * sinU,
		Z: sinHalf,
	}
	return du, dv
}

// 面积元密度 |∂r/∂u × ∂r/∂v|
func (s Surface) areaDensity(u, v float64) float64 {
	du, dv := s.Partials(u, v)
	return du.Cross(dv).Norm()
}
