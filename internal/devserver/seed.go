package devserver

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/pathway/internal/roadmap"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedFile is the YAML layout of a seed file.
type SeedFile struct {
	Steps []roadmap.Node `yaml:"steps"`
}

// LoadSeed reads steps from a YAML seed file. An empty path loads the
// built-in sample roadmap. The steps must pass roadmap.Validate.
func LoadSeed(path string) ([]roadmap.Node, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed: %w", err)
		}
		data = b
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates seed YAML.
func ParseSeed(data []byte) ([]roadmap.Node, error) {
	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}
	if err := roadmap.Validate(f.Steps); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return f.Steps, nil
}
