package netio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadManifestParsesNetworkEntries(t *testing.T) {
	src := `
networks:
  - name: chain0
    network: fixtures/chain0.net
    binary:
      sex: fixtures/chain0_sex.attr
    zones: fixtures/chain0_zones.attr
  - name: chain1
    network: fixtures/chain1.net
`
	m, err := ReadManifest(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Networks, 2)
	require.Equal(t, "chain0", m.Networks[0].Name)
	require.Equal(t, "fixtures/chain0_sex.attr", m.Networks[0].Binary["sex"])
	require.Equal(t, "fixtures/chain0_zones.attr", m.Networks[0].ZonesPath)
	require.Equal(t, "chain1", m.Networks[1].Name)
}

func TestReadManifestRejectsMissingNetworkPath(t *testing.T) {
	src := `
networks:
  - name: bad
`
	_, err := ReadManifest(strings.NewReader(src))
	require.Error(t, err)
}

func TestReadManifestRejectsInvalidYAML(t *testing.T) {
	_, err := ReadManifest(strings.NewReader("networks: [this is not: valid"))
	require.Error(t, err)
}
