package render

import (
	"math"
	"mobius/model"
)

// 正交投影相机，角度定义与 matplotlib 的 view_init(elev, azim) 一致
type camera struct {
	right model.Vector
	up    model.Vector
	eye   model.Vector // 指向观察者
}

func newCamera(elevation, azimuth float64) camera {
	el := elevation * math.Pi / 180
	az := azimuth * math.Pi / 180
	sinEl, cosEl := math.Sincos(el)
	sinAz, cosAz := math.Sincos(az)
	return camera{
		right: model.Vector{X: -sinAz, Y: cosAz, Z: 0},
		up:    model.Vector{X: -sinEl * cosAz, Y: -sinEl * sinAz, Z: cosEl},
		eye:   model.Vector{X: cosEl * cosAz, Y: cosEl * sinAz, Z: sinEl},
	}
}

// project 返回屏幕坐标和深度，深度越大离观察者越近
func (c camera) project(p model.Point) (x, y, depth float64) {
	return dot(c.right, p), dot(c.up, p), dot(c.eye, p)
}

func dot(v model.Vector, p model.Point) float64 {
	return v.X*p.X + v.Y*p.Y + v.Z*p.Z
}
