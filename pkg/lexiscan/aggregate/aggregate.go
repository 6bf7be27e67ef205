// Package aggregate joins per-article classification results into
// cross-corpus rows with normalized metrics: share of the article's
// total matches, share of the module's matches, and density per
// thousand words.
package aggregate

import (
	"math"
	"sort"

	"github.com/cognicore/lexiscan/pkg/lexiscan/classify"
)

// ArticleClassification is one article's classification output plus
// the word count needed for density metrics.
type ArticleClassification struct {
	Result    classify.Result
	WordCount int
}

// CorpusRow is one (article, module, category) row of the corpus
// table. An article with no matches anywhere contributes a single
// placeholder row with empty Module/Category and zero metrics, so
// every input document appears in the output at least once.
type CorpusRow struct {
	Article               string
	Module                string
	Category              string
	Matches               int
	TotalMatchesInArticle int
	PropOfArticleTotal    float64
	PropOfModuleTotal     float64
	WordCount             int
	MatchesPer1000Words   float64
}

// Aggregate flattens every article's category results into corpus
// rows. Output order is article ID ascending, then module name
// ascending, then the module's category order. The fold is a pure
// function of its input: sums are commutative, so articles may have
// been classified in any order (or concurrently).
//
// All ratio denominators can be zero only for placeholder rows or
// zero-word documents; those ratios are defined as 0, never an
// error. Proportions and densities are rounded half away from zero
// to two decimals.
func Aggregate(perArticle map[string]ArticleClassification) []CorpusRow {
	articles := make([]string, 0, len(perArticle))
	for id := range perArticle {
		articles = append(articles, id)
	}
	sort.Strings(articles)

	var rows []CorpusRow
	for _, id := range articles {
		art := perArticle[id]
		total := art.Result.TotalMatches()

		if total == 0 {
			rows = append(rows, CorpusRow{
				Article:   id,
				WordCount: art.WordCount,
			})
			continue
		}

		for _, module := range art.Result.ModuleNames() {
			moduleRows := art.Result[module]
			moduleTotal := 0
			for _, r := range moduleRows {
				moduleTotal += r.Matches
			}
			for _, r := range moduleRows {
				rows = append(rows, CorpusRow{
					Article:               id,
					Module:                r.Module,
					Category:              r.Category,
					Matches:               r.Matches,
					TotalMatchesInArticle: total,
					PropOfArticleTotal:    ratio2(r.Matches, total),
					PropOfModuleTotal:     ratio2(r.Matches, moduleTotal),
					WordCount:             art.WordCount,
					MatchesPer1000Words:   density(r.Matches, art.WordCount),
				})
			}
		}
	}
	return rows
}

// ratio2 is 100*num/den rounded to two decimals, 0 when den is 0.
func ratio2(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return round2(100 * float64(num) / float64(den))
}

// density is matches per thousand words, 0 for zero-word documents.
func density(matches, wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	return round2(float64(matches) * 1000 / float64(wordCount))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
