package harness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGolden_Day05(t *testing.T) {
	m, err := LoadManifest("testdata/y2025-d05.yaml")
	require.NoError(t, err)

	require.NoError(t, RunWithGolden(t, m))
}

func TestGolden_Day03(t *testing.T) {
	m, err := LoadManifest("testdata/y2025-d03.yaml")
	require.NoError(t, err)

	require.NoError(t, RunWithGolden(t, m))
}
