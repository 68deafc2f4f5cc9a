package netattr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryAttrGet(t *testing.T) {
	a := &BinaryAttr{Name: "sex", Values: []int8{0, 1, NABinary}}

	v, isNA := a.Get(0)
	require.Equal(t, int8(0), v)
	require.False(t, isNA)

	v, isNA = a.Get(2)
	require.Equal(t, NABinary, v)
	require.True(t, isNA)
}

func TestContinuousAttrNA(t *testing.T) {
	a := &ContinuousAttr{Name: "age", Values: []float64{1.5, math.NaN()}}

	v, isNA := a.Get(0)
	require.Equal(t, 1.5, v)
	require.False(t, isNA)

	_, isNA = a.Get(1)
	require.True(t, isNA)
}

func TestSetAttrJaccard(t *testing.T) {
	a := &SetAttr{
		Name: "interests",
		Size: 4,
		Values: [][]int{
			{0, 1, 2},
			{1, 2, 3},
			nil, // NA
		},
	}

	j, ok := a.Jaccard(0, 1)
	require.True(t, ok)
	require.InDelta(t, 2.0/4.0, j, 1e-9)

	_, ok = a.Jaccard(0, 2)
	require.False(t, ok)
}

func TestSetAttrHas(t *testing.T) {
	a := &SetAttr{Values: [][]int{{0, 2}}}
	require.True(t, a.Has(0, 2))
	require.False(t, a.Has(0, 1))
}

func TestOverlayRebuild(t *testing.T) {
	o := NewOverlay(5)
	o.Zone = []int{0, 1, 2, 2, -1}
	o.Term = []int{0, 1, 1, 1, 1}
	o.MaxZone = 2
	o.MaxTerm = 1
	o.Rebuild()

	require.ElementsMatch(t, []int{0, 1}, o.InnerNodes())
	require.ElementsMatch(t, []int{1, 2, 3, 4}, o.MaxTermNodes())
}

func TestOverlayAdjacentZones(t *testing.T) {
	o := NewOverlay(3)
	o.Zone = []int{0, 1, 2}

	require.True(t, o.AdjacentZones(0, 1))
	require.True(t, o.AdjacentZones(1, 2))
	require.False(t, o.AdjacentZones(0, 2))
}
