package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/lexiscan/pkg/lexiscan"
	"github.com/cognicore/lexiscan/pkg/lexiscan/classify"
	"github.com/cognicore/lexiscan/pkg/lexiscan/config"
	"github.com/cognicore/lexiscan/pkg/lexiscan/extract"
	"github.com/cognicore/lexiscan/pkg/lexiscan/internalerr"
	"github.com/cognicore/lexiscan/pkg/lexiscan/report"
	"github.com/cognicore/lexiscan/pkg/lexiscan/store"
	"github.com/cognicore/lexiscan/pkg/lexiscan/store/sqlite"
)

var (
	corpusTaxonomy string
	corpusOut      string
	corpusDB       string
	corpusWorkers  int
	corpusSummary  bool
	corpusTopN     int
)

// corpusCmd classifies a directory of articles.
var corpusCmd = &cobra.Command{
	Use:   "corpus [dir]",
	Short: "Classify every article in a directory and aggregate",
	Long: `Classifies every supported file in the directory, writes one
per-article CSV plus the aggregated corpus.csv into the output
directory, and reports per-document failures without aborting the
run. With --db, the run is also persisted to a SQLite database.
Flags left unset fall back to the config file; the directory may
come from its input_dir.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := corpusConfig(cmd, args)
		if err != nil {
			return err
		}

		components, err := cfg.Load()
		if err != nil {
			return err
		}

		paths, err := corpusFiles(cfg.InputDir)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no supported article files in %s", cfg.InputDir)
		}

		var st store.Store
		if cfg.DatabasePath != "" {
			st, err = sqlite.Open(cmd.Context(), cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
		}

		engine := lexiscan.New(lexiscan.Options{
			Taxonomy:     components.Taxonomy,
			TaxonomyPath: cfg.TaxonomyPath,
			Normalizer:   components.Normalizer,
			Store:        st,
			Workers:      cfg.Workers,
		})
		defer engine.Close()

		result, err := engine.RunCorpus(cmd.Context(), paths)
		if err != nil {
			return err
		}

		for _, failure := range result.Failures {
			logger.Warn("skipped document",
				zap.String("path", failure.Path),
				zap.Error(failure.Err),
			)
		}
		logger.Info("corpus run complete",
			zap.Int("articles", len(result.Articles)),
			zap.Int("failures", len(result.Failures)),
			zap.String("run_id", result.RunID),
		)

		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return err
		}
		if err := writeCorpusOutput(cfg.OutputDir, result, cfg.TopN); err != nil {
			return err
		}

		fmt.Printf("Classified %d articles (%d skipped) → %s\n",
			len(result.Articles), len(result.Failures), cfg.OutputDir)
		return nil
	},
}

// corpusConfig resolves the effective configuration: file values with
// flags the user set layered on top. The positional argument wins
// over the file's input_dir.
func corpusConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := runConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("taxonomy") || cfg.TaxonomyPath == "" {
		cfg.TaxonomyPath = corpusTaxonomy
	}
	if flags.Changed("out") || cfg.OutputDir == "" {
		cfg.OutputDir = corpusOut
	}
	if flags.Changed("db") || cfg.DatabasePath == "" {
		cfg.DatabasePath = corpusDB
	}
	if flags.Changed("workers") || cfg.Workers == 0 {
		cfg.Workers = corpusWorkers
	}
	if flags.Changed("top-n") || cfg.TopN == 0 {
		cfg.TopN = corpusTopN
	}
	if len(args) == 1 {
		cfg.InputDir = args[0]
	}

	if cfg.InputDir == "" {
		return nil, fmt.Errorf("%w: an article directory is required (argument or input_dir)", internalerr.ErrInvalidInput)
	}
	if cfg.TaxonomyPath == "" {
		return nil, fmt.Errorf("%w: a taxonomy file is required (--taxonomy or config)", internalerr.ErrInvalidInput)
	}
	return cfg, nil
}

// corpusFiles lists the supported files directly in dir, sorted for
// a stable run order.
func corpusFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if extract.Supported(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func writeCorpusOutput(dir string, result lexiscan.CorpusResult, topN int) error {
	f, err := os.Create(filepath.Join(dir, "corpus.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := report.WriteCorpusCSV(f, result.Rows); err != nil {
		return fmt.Errorf("write corpus report: %w", err)
	}

	for id, article := range result.Articles {
		af, err := os.Create(filepath.Join(dir, id+".csv"))
		if err != nil {
			return err
		}
		err = report.WriteArticleCSV(af, article.Result, article.WordCount, corpusSummary, topN)
		af.Close()
		if err != nil {
			return fmt.Errorf("write report for %s: %w", id, err)
		}
	}
	return nil
}

func init() {
	corpusCmd.Flags().StringVarP(&corpusTaxonomy, "taxonomy", "t", "", "taxonomy file (.yaml, .csv, .xlsx)")
	corpusCmd.Flags().StringVarP(&corpusOut, "out", "o", "results", "output directory")
	corpusCmd.Flags().StringVar(&corpusDB, "db", "", "SQLite database for run persistence (optional)")
	corpusCmd.Flags().IntVarP(&corpusWorkers, "workers", "w", 4, "concurrent document workers")
	corpusCmd.Flags().BoolVar(&corpusSummary, "summary", false, "append narrative summary rows to article reports")
	corpusCmd.Flags().IntVar(&corpusTopN, "top-n", classify.DefaultTopN, "categories named per module in summaries")

	rootCmd.AddCommand(corpusCmd)
}
