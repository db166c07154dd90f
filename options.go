package pacourt

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuagerstein/PAcourt-document-parser/extract"
)

// ExtractOptions holds configuration for document extraction.
type ExtractOptions struct {
	// Spacing thresholds of the segment state machine.
	tolerances extract.Tolerances

	// Destination for diagnostics. Nil means slog.Default.
	logger *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		tolerances: extract.DefaultTolerances(),
		logger:     nil,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		tolerances: o.tolerances,
		logger:     o.logger,
	}
}

// optionsFile is the on-disk shape of an options file.
type optionsFile struct {
	Tolerances struct {
		X            *float64 `yaml:"x"`
		Y            *float64 `yaml:"y"`
		OverlapSlack *float64 `yaml:"overlap_slack"`
	} `yaml:"tolerances"`
}

// LoadOptions reads extraction options from a YAML file. Absent fields
// keep their defaults.
func LoadOptions(path string) (ExtractOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ExtractOptions{}, err
	}
	return ParseOptions(data)
}

// ParseOptions reads extraction options from YAML bytes.
func ParseOptions(data []byte) (ExtractOptions, error) {
	var file optionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return ExtractOptions{}, fmt.Errorf("parsing options: %w", err)
	}
	opts := defaultOptions()
	if file.Tolerances.X != nil {
		opts.tolerances.X = *file.Tolerances.X
	}
	if file.Tolerances.Y != nil {
		opts.tolerances.Y = *file.Tolerances.Y
	}
	if file.Tolerances.OverlapSlack != nil {
		opts.tolerances.OverlapSlack = *file.Tolerances.OverlapSlack
	}
	return opts, nil
}
