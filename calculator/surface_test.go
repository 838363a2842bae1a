package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurface_Point(t *testing.T) {
	s := Surface{R: 5}

	p := s.Point(0, 0)
	assert.InDelta(t, 5.0, p.X, 1e-12)
	assert.InDelta(t, 0.0, p.Y, 1e-12)
	assert.InDelta(t, 0.0, p.Z, 1e-12)

	// u = 0 时带的截面沿 x 轴
	p = s.Point(0, 1)
	assert.InDelta(t, 6.0, p.X, 1e-12)
	assert.InDelta(t, 0.0, p.Z, 1e-12)

	// u = π 时截面竖直
	p = s.Point(math.Pi, 1)
	assert.InDelta(t, -5.0, p.X, 1e-12)
	assert.InDelta(t, 1.0, p.Z, 1e-12)

	// 半扭转：(u + 2π, v) 与 (u, -v) 是同一个点
	for _, u := range []float64{0, 0.3, 1.7, math.Pi, 5.2} {
		a := s.Point(u+2*math.Pi, 0.8)
		b := s.Point(u, -0.8)
		assert.InDelta(t, 0.0, a.DistanceTo(b), 1e-12, "u=%v", u)
	}
}

func TestSurface_PartialsMatchFiniteDifference(t *testing.T) {
	s := Surface{R: 3}
	const h = 1e-6
	for _, uv := range [][2]float64{{0, 0}, {0.4, -0.5}, {2.1, 0.7}, {4.9, 1}} {
		u, v := uv[0], uv[1]
		du, dv := s.Partials(u, v)

		nu := s.Point(u+h, v).Sub(s.Point(u-h, v)).Scale(1 / (2 * h))
		nv := s.Point(u, v+h).Sub(s.Point(u, v-h)).Scale(1 / (2 * h))

		assert.InDelta(t, nu.X, du.X, 1e-6)
		assert.InDelta(t, nu.Y, du.Y, 1e-6)
		assert.InDelta(t, nu.Z, du.Z, 1e-6)
		assert.InDelta(t, nv.X, dv.X, 1e-6)
		assert.InDelta(t, nv.Y, dv.Y, 1e-6)
		assert.InDelta(t, nv.Z, dv.Z, 1e-6)
	}
}

func TestSurface_AreaDensity(t *testing.T) {
	s := Surface{R: 2}
	for _, uv := range [][2]float64{{0, 0}, {1, 0.25}, {3, -0.5}, {6, 0.5}} {
		u, v := uv[0], uv[1]
		r := s.R + v*math.Cos(u/2)
		want := math.Sqrt(r*r + v*v/4)
		require.InDelta(t, want, s.areaDensity(u, v), 1e-12)
	}
}
