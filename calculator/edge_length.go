package calculator

import (
	"math"
)

// EdgeLength sums the polyline lengths of the two boundaries v = V[n-1] and
// v = V[0] sampled at every U.
// 两条边界在 u ∈ [0, 2π] 上各自首尾不闭合，拼起来正好是带的唯一一条边
func EdgeLength(s Surface, g *Grid) float64 {
	n := g.Size()
	return polylineLength(s, g.U, g.V[n-1]) + polylineLength(s, g.U, g.V[0])
}

// BoundaryLength traces the single edge at v = V[n-1] over u ∈ [0, 4π]
// with 2(n-1) segments.
func BoundaryLength(s Surface, g *Grid) float64 {
	n := g.Size()
	us := linspace(0, 4*math.Pi, 2*(n-1)+1)
	return polylineLength(s, us, g.V[n-1])
}

// BoundarySeparation is the largest distance between the two boundary
// samples at equal u. Analytically it equals the strip width.
func BoundarySeparation(s Surface, g *Grid) float64 {
	n := g.Size()
	max := 0.0
	for _, u := range g.U {
		d := s.Point(u, g.V[n-1]).DistanceTo(s.Point(u, g.V[0]))
		if d > max {
			max = d
		}
	}
	return max
}

// CenterlineLength is the polyline length of v = 0 over U.
func CenterlineLength(s Surface, g *Grid) float64 {
	return polylineLength(s, g.U, 0)
}

// 相邻采样点欧氏距离之和
func polylineLength(s Surface, us []float64, v float64) float64 {
	if len(us) < 2 {
		return 0
	}
	length := 0.0
	pre := s.Point(us[0], v)
	for k := 1; k < len(us); k++ {
		cur := s.Point(us[k], v)
		length += cur.DistanceTo(pre)
		pre = cur
	}
	return length
}
