package netio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ergmgo/ergmnet/effect"
	"github.com/ergmgo/ergmnet/netgraph"
)

func TestReadWritePajekUndirectedRoundTrip(t *testing.T) {
	src := "*vertices 4\n*edges\n1 2\n2 3\n3 4\n"
	g, err := ReadPajek(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.False(t, g.Directed())
	require.True(t, g.IsEdge(0, 1))
	require.True(t, g.IsEdge(2, 3))

	var buf bytes.Buffer
	require.NoError(t, WritePajek(&buf, g))
	require.Contains(t, buf.String(), "*vertices 4")
	require.Contains(t, buf.String(), "*edges")
}

func TestReadPajekDirected(t *testing.T) {
	src := "*vertices 3\n*arcs\n1 2\n2 3\n"
	g, err := ReadPajek(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, g.Directed())
	require.True(t, g.IsArc(0, 1))
	require.False(t, g.IsArc(1, 0))
}

func TestReadPajekRejectsOutOfRangeNode(t *testing.T) {
	src := "*vertices 2\n*edges\n1 5\n"
	_, err := ReadPajek(strings.NewReader(src))
	require.Error(t, err)
}

func TestReadBinaryAttrParsesNA(t *testing.T) {
	g := netgraph.NewGraph(3)
	idx, err := ReadBinaryAttr(strings.NewReader("1\n0\nNA\n"), "active", g)
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	v, na := g.Attrs.Binary[0].Get(2)
	require.True(t, na)
	_ = v
}

func TestReadAttrRejectsRowCountMismatch(t *testing.T) {
	g := netgraph.NewGraph(3)
	_, err := ReadBinaryAttr(strings.NewReader("1\n0\n"), "active", g)
	require.Error(t, err)
}

func TestReadZonesSetsMaxZoneAndRebuildsOverlay(t *testing.T) {
	g := netgraph.NewGraph(4)
	err := ReadZones(strings.NewReader("0\n0\n1\n2\n"), g)
	require.NoError(t, err)
	require.Equal(t, 2, g.Overlay.MaxZone)
	require.Contains(t, g.Overlay.InnerNodes(), 0)
	require.NotContains(t, g.Overlay.InnerNodes(), 3)
}

func TestWriteThetaAndObservedStatistics(t *testing.T) {
	effects := []effect.Effect{{Kind: effect.KindArc}, {Kind: effect.KindReciprocity}}
	theta := []float64{1.5, -0.5}

	var buf bytes.Buffer
	require.NoError(t, WriteTheta(&buf, effects, theta))
	require.Contains(t, buf.String(), "Arc")
	require.Contains(t, buf.String(), "1.5")

	var buf2 bytes.Buffer
	require.NoError(t, WriteObservedStatistics(&buf2, []string{"Arc", "Reciprocity"}, theta))
	require.Contains(t, buf2.String(), "Reciprocity\t-0.5")
}
