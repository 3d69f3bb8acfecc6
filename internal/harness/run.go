package harness

import (
	"fmt"

	"github.com/roach88/advent/internal/solve"
)

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Part1  int64    `json:"part1"`
	Part2  int64    `json:"part2"`
	Errors []string `json:"errors,omitempty"`
}

// ManifestResult aggregates a manifest run.
type ManifestResult struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Total  int          `json:"total"`
}

// RunManifest executes every case of the manifest against the registered
// solution. Solver errors and expectation mismatches mark the case failed;
// only an unregistered day aborts the run.
func (m *Manifest) RunManifest() (*ManifestResult, error) {
	sol, err := solve.Lookup(m.Year, m.Day)
	if err != nil {
		return nil, err
	}

	result := &ManifestResult{
		ID:    sol.ID(),
		Title: sol.Title,
		Cases: make([]CaseResult, 0, len(m.Cases)),
		Total: len(m.Cases),
	}

	for _, c := range m.Cases {
		cr := CaseResult{Name: c.Name, Pass: true}

		cr.Part1 = runPart(&cr, "part 1", sol.Part1, c.Input, c.Part1)
		cr.Part2 = runPart(&cr, "part 2", sol.Part2, c.Input, c.Part2)

		if cr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Cases = append(result.Cases, cr)
	}
	return result, nil
}

// runPart solves one part and checks it against the expectation, recording
// any failure on the case result.
func runPart(cr *CaseResult, label string, f solve.Func, input string, want *int64) int64 {
	got, err := f(input)
	if err != nil {
		cr.Pass = false
		cr.Errors = append(cr.Errors, fmt.Sprintf("%s: %v", label, err))
		return 0
	}
	if want != nil && got != *want {
		cr.Pass = false
		cr.Errors = append(cr.Errors, fmt.Sprintf("%s: got %d, want %d", label, got, *want))
	}
	return got
}
