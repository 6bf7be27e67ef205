// Package report renders classification output as CSV tables and an
// optional narrative summary.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cognicore/lexiscan/pkg/lexiscan/aggregate"
	"github.com/cognicore/lexiscan/pkg/lexiscan/classify"
)

var articleHeader = []string{"module", "category", "matches", "percentage"}

var corpusHeader = []string{
	"module", "category", "matches", "article",
	"total_matches_in_article", "prop_of_article_total",
	"prop_of_module_total", "word_count", "matches_per_1000_words",
}

// WriteArticleCSV writes one article's classification table. When
// summary is true, a narrative row naming each module's topN leading
// categories is appended after the data rows.
func WriteArticleCSV(w io.Writer, result classify.Result, wordCount int, summary bool, topN int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(articleHeader); err != nil {
		return err
	}
	for _, module := range result.ModuleNames() {
		for _, row := range result[module] {
			record := []string{
				row.Module,
				row.Category,
				strconv.Itoa(row.Matches),
				formatFloat(row.Percentage, 1),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	if summary {
		text, err := Narrative(result, wordCount, topN)
		if err != nil {
			return err
		}
		if err := cw.Write([]string{"summary", text, "", ""}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCorpusCSV writes the aggregated corpus table.
func WriteCorpusCSV(w io.Writer, rows []aggregate.CorpusRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(corpusHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Module,
			row.Category,
			strconv.Itoa(row.Matches),
			row.Article,
			strconv.Itoa(row.TotalMatchesInArticle),
			formatFloat(row.PropOfArticleTotal, 2),
			formatFloat(row.PropOfModuleTotal, 2),
			strconv.Itoa(row.WordCount),
			formatFloat(row.MatchesPer1000Words, 2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
