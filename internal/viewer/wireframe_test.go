package viewer

import (
	"testing"

	"github.com/alexiusacademia/goframe/internal/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireframe(t *testing.T) {
	k := kernel.New()
	box, err := k.Box(2000, 4000, 6000)
	require.NoError(t, err)

	segs := Wireframe(box, 0.001)
	require.Len(t, segs, 12)

	// centred, Y-up: model Z (6 m) becomes viewer Y
	assert.InDelta(t, 3, extent(segs), 1e-9)
	var maxY, maxZ float64
	for _, s := range segs {
		maxY = max(maxY, s.A[1], s.B[1])
		maxZ = max(maxZ, s.A[2], s.B[2])
	}
	assert.InDelta(t, 3, maxY, 1e-9)
	assert.InDelta(t, 2, maxZ, 1e-9)
}

func TestWireframeEmpty(t *testing.T) {
	assert.Nil(t, Wireframe(nil, 1))
	assert.Zero(t, extent(nil))
}

func TestShowRejectsNil(t *testing.T) {
	assert.Error(t, Show(nil, DefaultOptions()))
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 1280, o.Width)
	assert.Equal(t, 0.001, o.Scale)
	assert.True(t, o.Grid)
}
