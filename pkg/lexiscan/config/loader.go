package config

import (
	"fmt"

	"github.com/cognicore/lexiscan/pkg/lexiscan/internalerr"
	"github.com/cognicore/lexiscan/pkg/lexiscan/normalize"
	"github.com/cognicore/lexiscan/pkg/lexiscan/taxonomy"
)

// Components holds the loaded pipeline pieces a run needs.
type Components struct {
	Taxonomy   *taxonomy.Taxonomy
	Normalizer *normalize.Normalizer
}

// Load builds the pipeline components named by the configuration:
// the taxonomy from its file and a normalizer carrying any extra
// stopwords.
func (c *Config) Load() (*Components, error) {
	if c.TaxonomyPath == "" {
		return nil, fmt.Errorf("%w: taxonomy path is required", internalerr.ErrInvalidConfig)
	}

	tax, err := taxonomy.Load(c.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}

	return &Components{
		Taxonomy:   tax,
		Normalizer: normalize.New(c.ExtraStopwords...),
	}, nil
}
