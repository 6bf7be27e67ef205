package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/lexiscan/pkg/lexiscan"
	"github.com/cognicore/lexiscan/pkg/lexiscan/classify"
	"github.com/cognicore/lexiscan/pkg/lexiscan/config"
	"github.com/cognicore/lexiscan/pkg/lexiscan/internalerr"
	"github.com/cognicore/lexiscan/pkg/lexiscan/report"
)

var (
	classifyTaxonomy string
	classifyOut      string
	classifySummary  bool
	classifyTopN     int
)

// classifyCmd classifies a single article file.
var classifyCmd = &cobra.Command{
	Use:   "classify <file>",
	Short: "Classify one article and write its category table",
	Long: `Extracts text from the file (.txt, .pdf, .docx, .html), normalizes
it, classifies it against the taxonomy, and writes a CSV table with
columns module, category, matches, percentage. With --summary, a
narrative summary row naming each module's top categories is
appended. Flags left unset fall back to the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := classifyConfig(cmd)
		if err != nil {
			return err
		}

		components, err := cfg.Load()
		if err != nil {
			return err
		}

		engine := lexiscan.New(lexiscan.Options{
			Taxonomy:     components.Taxonomy,
			TaxonomyPath: cfg.TaxonomyPath,
			Normalizer:   components.Normalizer,
		})

		article, err := engine.ClassifyFile(args[0])
		if err != nil {
			return err
		}
		logger.Debug("classified article",
			zap.String("article", article.ID),
			zap.Int("word_count", article.WordCount),
			zap.Int("matches", article.Result.TotalMatches()),
		)

		out := os.Stdout
		if classifyOut != "" {
			f, err := os.Create(classifyOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		if err := report.WriteArticleCSV(out, article.Result, article.WordCount, classifySummary, cfg.TopN); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	},
}

// classifyConfig resolves the effective configuration: file values
// with flags the user set layered on top.
func classifyConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := runConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("taxonomy") || cfg.TaxonomyPath == "" {
		cfg.TaxonomyPath = classifyTaxonomy
	}
	if flags.Changed("top-n") || cfg.TopN == 0 {
		cfg.TopN = classifyTopN
	}

	if cfg.TaxonomyPath == "" {
		return nil, fmt.Errorf("%w: a taxonomy file is required (--taxonomy or config)", internalerr.ErrInvalidInput)
	}
	return cfg, nil
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyTaxonomy, "taxonomy", "t", "", "taxonomy file (.yaml, .csv, .xlsx)")
	classifyCmd.Flags().StringVarP(&classifyOut, "out", "o", "", "output CSV file (default: stdout)")
	classifyCmd.Flags().BoolVar(&classifySummary, "summary", false, "append a narrative summary row")
	classifyCmd.Flags().IntVar(&classifyTopN, "top-n", classify.DefaultTopN, "categories named per module in the summary")

	rootCmd.AddCommand(classifyCmd)
}
