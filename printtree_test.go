package wad

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintTree(t *testing.T) {
	l := &Level{
		Subsectors: []Subsector{{NumSegs: 2, FirstSeg: 0}, {NumSegs: 3, FirstSeg: 2}, {NumSegs: 1, FirstSeg: 5}},
		Nodes: []Node{
			{LineX: 10, LineY: 20, StepX: 0, StepY: 5, Right: SubsectorChild | 0, Left: SubsectorChild | 1},
			{LineX: 0, LineY: 0, StepX: 64, StepY: 0, Right: 0, Left: SubsectorChild | 2},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, FprintTree(&buf, l))
	want := "- node 1: (0,0) step (64,0)\n" +
		"   - node 0: (10,20) step (0,5)\n" +
		"      - subsector 0: 2 segs from 0\n" +
		"      - subsector 1: 3 segs from 2\n" +
		"   - subsector 2: 1 segs from 5\n"
	assert.Equal(t, want, buf.String())
}

func TestFprintTreeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintTree(&buf, &Level{}))
	assert.Equal(t, "- (no nodes)\n", buf.String())
}

func TestFprintTreeBadChild(t *testing.T) {
	l := &Level{Nodes: []Node{{Right: SubsectorChild | 4, Left: SubsectorChild | 0}}}
	var buf bytes.Buffer
	assert.ErrorIs(t, FprintTree(&buf, l), ErrOutOfBounds)

	// A node that points at itself
	l = &Level{Nodes: []Node{{Right: 0, Left: 0}}}
	assert.ErrorIs(t, FprintTree(&buf, l), ErrOutOfBounds)
}
