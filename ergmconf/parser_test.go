package ergmconf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseScalarOptions(t *testing.T) {
	src := `
# a comment
seed = 42
scheme = tnt
steps = 1000
target_density = 0.25
conditioning = true
`
	cfg, err := Parse(src)
	require.NoError(t, err)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, "tnt", cfg.Scheme)
	require.Equal(t, 1000, cfg.Steps)
	require.InDelta(t, 0.25, cfg.TargetDensity, 1e-9)
	require.True(t, cfg.Conditioning)
}

func TestParseRejectsNonBooleanConditioning(t *testing.T) {
	_, err := Parse("conditioning = maybe\n")
	require.Error(t, err)
}

func TestParseEffectsBlock(t *testing.T) {
	src := `
effects = { Arc, Reciprocity, AltStars(lambda=2.0), Matching(attr=0) }
`
	cfg, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, cfg.Effects, 4)
	require.Equal(t, "Arc", cfg.Effects[0].Name)
	require.Equal(t, "AltStars", cfg.Effects[2].Name)
	require.InDelta(t, 2.0, cfg.Effects[2].Lambda, 1e-9)
	require.Equal(t, 0, cfg.Effects[3].AttrIdx)
}

func TestParseRejectsDuplicateOption(t *testing.T) {
	src := "seed = 1\nseed = 2\n"
	_, err := Parse(src)
	require.Error(t, err)
}

func TestParseRejectsUnknownOption(t *testing.T) {
	src := "not_a_real_option = 1\n"
	_, err := Parse(src)
	require.Error(t, err)
}

func TestParseRejectsUnknownEffectParam(t *testing.T) {
	src := "effects = { Arc(bogus=1) }\n"
	_, err := Parse(src)
	require.Error(t, err)
}
