package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mobius/model"
)

func TestNewStrip_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  model.Params
		wantErr bool
		field   string
	}{
		{"default", model.Params{Radius: 5, Width: 2, Resolution: 100}, false, ""},
		{"minimum resolution", model.Params{Radius: 1, Width: 1, Resolution: 2}, false, ""},
		{"zero radius", model.Params{Radius: 0, Width: 2, Resolution: 10}, true, "radius"},
		{"negative radius", model.Params{Radius: -1, Width: 2, Resolution: 10}, true, "radius"},
		{"nan radius", model.Params{Radius: math.NaN(), Width: 2, Resolution: 10}, true, "radius"},
		{"zero width", model.Params{Radius: 5, Width: 0, Resolution: 10}, true, "width"},
		{"inf width", model.Params{Radius: 5, Width: math.Inf(1), Resolution: 10}, true, "width"},
		{"resolution one", model.Params{Radius: 5, Width: 2, Resolution: 1}, true, "resolution"},
		{"negative resolution", model.Params{Radius: 5, Width: 2, Resolution: -3}, true, "resolution"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewStrip(tc.params)
			if !tc.wantErr {
				require.NoError(t, err)
				require.NotNil(t, s)
				return
			}
			require.Error(t, err)
			require.Nil(t, s)
			require.True(t, errors.Is(err, model.ErrInvalidParameter), "got %v", err)
			require.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestStrip_Queries(t *testing.T) {
	p := model.Params{Radius: 5, Width: 2, Resolution: 100}
	s, err := NewStrip(p, WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, p, s.Params())
	assert.Equal(t, 100, s.Grid().Size())
	assert.Equal(t, 100, s.Mesh().Size())
	// 构造后网格不会重建
	assert.Same(t, s.Mesh(), s.Mesh())

	res := s.Result()
	assert.Equal(t, p, res.Params)
	assert.Equal(t, s.SurfaceArea(), res.SurfaceArea)
	assert.Equal(t, s.EdgeLength(), res.EdgeLength)
	assert.InDelta(t, res.EdgeLength, res.BoundaryLength, 1e-9)
}

func TestStrip_BuildData(t *testing.T) {
	p := model.Params{Radius: 5, Width: 2, Resolution: 10}
	s, err := NewStrip(p)
	require.NoError(t, err)

	full := s.BuildData(1)
	require.Len(t, full.X, 10)
	assert.Equal(t, s.Mesh().X, full.X)
	assert.Equal(t, s.Grid().U, full.U)

	// 0..9 间隔 4 抽样：0, 4, 8，再补上最后一行 9
	sub := s.BuildData(4)
	require.Len(t, sub.U, 4)
	require.Len(t, sub.Z, 4)
	require.Len(t, sub.Z[0], 4)
	assert.Equal(t, s.Grid().U[9], sub.U[3])
	assert.Equal(t, s.Mesh().Z[8][9], sub.Z[2][3])
	assert.Equal(t, s.SurfaceArea(), sub.SurfaceArea)

	assert.Equal(t, 1, s.BuildData(0).Step)
}

func TestParseOptions(t *testing.T) {
	d, err := ParseDerivative("Central")
	require.NoError(t, err)
	assert.Equal(t, DerivativeCentral, d)
	_, err = ParseDerivative("forward")
	assert.Error(t, err)

	r, err := ParseRule("riemann")
	require.NoError(t, err)
	assert.Equal(t, RuleRiemann, r)
	r, err = ParseRule("")
	require.NoError(t, err)
	assert.Equal(t, RuleTrapezoid, r)
	_, err = ParseRule("simpson")
	assert.Error(t, err)
}
