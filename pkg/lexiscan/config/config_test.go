package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/lexiscan/pkg/lexiscan/internalerr"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTemp(t, "lexiscan.yaml", `
taxonomy: taxonomy.xlsx
input_dir: articles
output_dir: results
database: lexiscan.db
extra_stopwords:
  - abstract
  - doi
workers: 4
top_n: 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.TaxonomyPath != "taxonomy.xlsx" {
		t.Errorf("taxonomy = %q", cfg.TaxonomyPath)
	}
	if cfg.Workers != 4 || cfg.TopN != 3 {
		t.Errorf("workers=%d top_n=%d", cfg.Workers, cfg.TopN)
	}
	if len(cfg.ExtraStopwords) != 2 {
		t.Errorf("extra stopwords = %v", cfg.ExtraStopwords)
	}
}

func TestLoadConfigWithoutTaxonomy(t *testing.T) {
	path := writeTemp(t, "lexiscan.yaml", `input_dir: articles`)

	// Parses fine: commands overlay flag values before loading
	// components, and only that load requires a taxonomy.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cfg.Load(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig from component load, got %v", err)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeTemp(t, "lexiscan.yaml", "taxonomy: [unclosed")

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateNegativeWorkers(t *testing.T) {
	cfg := Config{TaxonomyPath: "t.yaml", Workers: -1}
	if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoaderBuildsComponents(t *testing.T) {
	taxPath := writeTemp(t, "tax.yaml", `
modules:
  - name: uncertainty
    categories:
      - name: Epistemic
        keywords: "epistemic"
`)

	cfg := Config{TaxonomyPath: taxPath, ExtraStopwords: []string{"doi"}}
	components, err := cfg.Load()
	if err != nil {
		t.Fatalf("Load components: %v", err)
	}

	if components.Taxonomy.Len() != 1 {
		t.Errorf("taxonomy not loaded: %d modules", components.Taxonomy.Len())
	}
	if !components.Normalizer.IsStopword("doi") {
		t.Error("extra stopwords not wired into normalizer")
	}
}
