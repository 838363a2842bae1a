package model

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidParameter 参数不满足 R > 0, w > 0, n >= 2
var ErrInvalidParameter = errors.New("mobius: invalid parameter")

// 莫比乌斯带的构造参数，构造后不再修改
type Params struct {
	Radius     float64 `json:"radius"`     // 中心到带中线的距离 R
	Width      float64 `json:"width"`      // 带宽 w
	Resolution int     `json:"resolution"` // 每个方向的采样点数 n
}

// Validate reports the first parameter that violates its constraint.
func (p Params) Validate() error {
	if math.IsNaN(p.Radius) || math.IsInf(p.Radius, 0) || p.Radius <= 0 {
		return fmt.Errorf("%w: radius must be a positive finite number, got %v", ErrInvalidParameter, p.Radius)
	}
	if math.IsNaN(p.Width) || math.IsInf(p.Width, 0) || p.Width <= 0 {
		return fmt.Errorf("%w: width must be a positive finite number, got %v", ErrInvalidParameter, p.Width)
	}
	if p.Resolution < MinResolution {
		return fmt.Errorf("%w: resolution must be at least %d, got %d", ErrInvalidParameter, MinResolution, p.Resolution)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("R=%g w=%g n=%d", p.Radius, p.Width, p.Resolution)
}

// 计算结果
type Result struct {
	Params         Params        `json:"params"`
	SurfaceArea    float64       `json:"surface_area"`
	EdgeLength     float64       `json:"edge_length"`
	BoundaryLength float64       `json:"boundary_length"` // 沿 u ∈ [0, 4π] 追踪的单条边界
	Elapsed        time.Duration `json:"elapsed"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
