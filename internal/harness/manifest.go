package harness

import (
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"
)

// manifestSchema is the CUE contract every manifest must satisfy.
// Expected answers are optional so a manifest can be written before the
// day is solved; unknown fields are rejected (closed structs).
const manifestSchema = `
close({
	name?: string & !=""
	year:  int & >=2015 & <=2100
	day:   int & >=1 & <=25
	cases: [...close({
		name:   string & !=""
		input:  string & !=""
		part1?: int
		part2?: int
	})] & [_, ...]
})
`

// Manifest is one day's declarative case file.
type Manifest struct {
	// Name labels the manifest; defaults to "yYYYY-dDD" when empty.
	Name string `yaml:"name,omitempty"`
	Year int    `yaml:"year"`
	Day  int    `yaml:"day"`
	// Cases run in file order.
	Cases []Case `yaml:"cases"`
}

// Case is a single named input with optional expected answers.
// A nil expectation means "solve and report, but don't judge".
type Case struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	Part1 *int64 `yaml:"part1,omitempty"`
	Part2 *int64 `yaml:"part2,omitempty"`
}

// GoldenName returns the manifest's name for golden-file lookup.
func (m *Manifest) GoldenName() string {
	if m.Name != "" {
		return m.Name
	}
	return fmt.Sprintf("y%d-d%02d", m.Year, m.Day)
}

// ParseManifest validates raw YAML against the manifest schema and decodes
// it. Schema violations are reported with their CUE paths.
func ParseManifest(data []byte) (*Manifest, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(manifestSchema)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("harness: manifest schema is broken: %w", err)
	}

	if err := cueyaml.Validate(data, schema); err != nil {
		return nil, fmt.Errorf("harness: manifest does not satisfy schema: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("harness: decoding manifest: %w", err)
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
		return nil, fmt.Errorf("harness: manifest %s: want a .yaml file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("harness: reading manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return m, nil
}
