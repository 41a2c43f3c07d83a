package wad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadians(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Thing{Angle: 90}.Radians(), 1e-9)
	assert.InDelta(t, -math.Pi, Thing{Angle: -180}.Radians(), 1e-9)

	assert.InDelta(t, 0, Seg{Angle: 0}.Radians(), 1e-9)
	assert.InDelta(t, math.Pi/2, Seg{Angle: 0x4000}.Radians(), 1e-9)
	assert.InDelta(t, math.Pi, Seg{Angle: 0x8000}.Radians(), 1e-9)
	assert.InDelta(t, 3*math.Pi/2, Seg{Angle: 0xc000}.Radians(), 1e-9)
}
