package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a manifest and compares the JSON result snapshot
// against the golden file testdata/golden/{manifest name}.golden.
//
// Golden files are the source of truth for expected case outcomes; to
// regenerate them run:
//
//	go test ./internal/harness -update
//
// Returns an error only when the manifest itself cannot run; expectation
// drift is reported through t via goldie.
func RunWithGolden(t *testing.T, m *Manifest) error {
	t.Helper()

	result, err := m.RunManifest()
	if err != nil {
		return err
	}

	snapshot, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, m.GoldenName(), snapshot)
	return nil
}
