package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/lexiscan/pkg/lexiscan/internalerr"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexiscan.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestCorpusConfigMerge(t *testing.T) {
	cfgFile = writeConfigFile(t, `
taxonomy: tax.yaml
input_dir: articles
output_dir: reports
workers: 7
top_n: 2
`)
	t.Cleanup(func() { cfgFile = "" })

	cfg, err := corpusConfig(corpusCmd, nil)
	if err != nil {
		t.Fatalf("corpusConfig: %v", err)
	}
	if cfg.TaxonomyPath != "tax.yaml" || cfg.InputDir != "articles" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Workers != 7 || cfg.TopN != 2 || cfg.OutputDir != "reports" {
		t.Errorf("file values not applied: %+v", cfg)
	}

	// Flags the user set win over the file, and the positional
	// directory wins over input_dir.
	if err := corpusCmd.Flags().Set("workers", "3"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	cfg, err = corpusConfig(corpusCmd, []string{"other-dir"})
	if err != nil {
		t.Fatalf("corpusConfig: %v", err)
	}
	if cfg.Workers != 3 {
		t.Errorf("workers flag should win over the file, got %d", cfg.Workers)
	}
	if cfg.InputDir != "other-dir" {
		t.Errorf("argument should win over input_dir, got %q", cfg.InputDir)
	}
}

func TestCorpusConfigRequiresTaxonomy(t *testing.T) {
	_, err := corpusConfig(corpusCmd, []string{"articles"})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput without a taxonomy, got %v", err)
	}
}

func TestCorpusConfigRequiresInputDir(t *testing.T) {
	cfgFile = writeConfigFile(t, `taxonomy: tax.yaml`)
	t.Cleanup(func() { cfgFile = "" })

	_, err := corpusConfig(corpusCmd, nil)
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput without a directory, got %v", err)
	}
}

func TestClassifyConfigRequiresTaxonomy(t *testing.T) {
	_, err := classifyConfig(classifyCmd)
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput without a taxonomy, got %v", err)
	}
}
