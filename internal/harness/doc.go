// Package harness runs declarative case manifests against the solution
// catalog.
//
// A manifest is a YAML file naming a year/day and a list of cases, each
// with inline puzzle input and the expected Part 1/Part 2 answers. Before
// a manifest runs it is validated against a CUE schema, so malformed
// manifests fail with a schema error instead of a confusing zero answer.
//
// Results can be asserted directly (RunManifest) or snapshotted as
// canonical JSON and compared against golden files (RunWithGolden,
// regenerate with `go test ./internal/harness -update`).
package harness
