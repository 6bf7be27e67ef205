package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexiscan/pkg/lexiscan/internalerr"
)

// yamlTaxonomy is the on-disk YAML shape. Lists are used instead of
// maps so that module and category declaration order survives loading.
type yamlTaxonomy struct {
	Modules []yamlModule `yaml:"modules"`
}

type yamlModule struct {
	Name       string         `yaml:"name"`
	Categories []yamlCategory `yaml:"categories"`
}

type yamlCategory struct {
	Name     string `yaml:"name"`
	Keywords string `yaml:"keywords"`
}

// Load reads a taxonomy file, dispatching on the file extension.
// Supported formats: .yaml/.yml, .csv, .xlsx.
func Load(path string) (*Taxonomy, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: taxonomy file %q", internalerr.ErrUnsupportedFormat, path)
	}
}

// LoadYAML loads a taxonomy from a YAML file.
func LoadYAML(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw yamlTaxonomy
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse taxonomy %s: %w", path, err)
	}

	tax := New()
	for _, m := range raw.Modules {
		for _, c := range m.Categories {
			tax.AddCategory(m.Name, c.Name, c.Keywords)
		}
	}
	if err := tax.Validate(); err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return tax, nil
}
