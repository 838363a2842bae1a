package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mobius/model"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(model.Params{Radius: 5, Width: 2, Resolution: 5})

	require.Equal(t, 5, g.Size())
	require.Len(t, g.V, 5)
	assert.Equal(t, 0.0, g.U[0])
	assert.Equal(t, 2*math.Pi, g.U[4])
	assert.Equal(t, -1.0, g.V[0])
	assert.Equal(t, 1.0, g.V[4])
	assert.InDelta(t, 0.0, g.V[2], 1e-15)
	assert.InDelta(t, math.Pi/2, g.Du(), 1e-15)
	assert.InDelta(t, 0.5, g.Dv(), 1e-15)

	for i := 1; i < g.Size(); i++ {
		assert.InDelta(t, g.Du(), g.U[i]-g.U[i-1], 1e-12)
		assert.InDelta(t, g.Dv(), g.V[i]-g.V[i-1], 1e-12)
	}
}

func TestNewGrid_MinimumResolution(t *testing.T) {
	g := NewGrid(model.Params{Radius: 1, Width: 1, Resolution: model.MinResolution})
	assert.Equal(t, []float64{0, 2 * math.Pi}, g.U)
	assert.Equal(t, []float64{-0.5, 0.5}, g.V)
}

func TestGrid_Reflected(t *testing.T) {
	g := NewGrid(model.Params{Radius: 5, Width: 2, Resolution: 7})
	r := g.Reflected()

	require.Equal(t, g.Size(), r.Size())
	assert.Equal(t, g.U, r.U)
	assert.Equal(t, g.Du(), r.Du())
	assert.Equal(t, g.Dv(), r.Dv())
	for j := range g.V {
		assert.Equal(t, -g.V[j], r.V[j])
	}
	// 原网格不受影响
	assert.Equal(t, -1.0, g.V[0])
}
