// Package classify implements the keyword classification engine: a
// pure function from normalized article text plus a taxonomy to
// per-module category match counts and percentage shares.
package classify

import (
	"math"
	"sort"
	"strings"

	"github.com/cognicore/lexiscan/pkg/lexiscan/taxonomy"
)

// CategoryResult is one matched category within one module.
type CategoryResult struct {
	Module     string
	Category   string
	Matches    int
	Percentage float64 // this category's share of the module's matches
}

// Result maps module name to the module's matched categories, in
// taxonomy declaration order. Modules with no matching category are
// absent from the map; there are no zero-match rows.
type Result map[string][]CategoryResult

// TotalMatches sums Matches over all modules.
func (r Result) TotalMatches() int {
	total := 0
	for _, rows := range r {
		for _, row := range rows {
			total += row.Matches
		}
	}
	return total
}

// ModuleNames returns the matched module names sorted
// alphabetically, for deterministic iteration over the map.
func (r Result) ModuleNames() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Classify counts keyword occurrences in text against the taxonomy.
//
// Matching is a literal non-overlapping substring count per term: a
// term that is a substring of a longer word matches inside it. That
// is the established matching policy for these taxonomies and is
// preserved for reproducibility; switching to word-boundary matching
// would change classification outcomes. Text must already be
// normalized (lowercase, punctuation and stopwords removed); the
// engine does not re-normalize.
//
// Percentages are each surviving category's share of its module's
// total matches, rounded half away from zero to one decimal, so
// they sum to 100 per module within rounding tolerance.
func Classify(text string, tax *taxonomy.Taxonomy) Result {
	result := make(Result)
	if text == "" || tax == nil {
		return result
	}

	for _, module := range tax.Modules() {
		var rows []CategoryResult
		moduleTotal := 0
		for _, cat := range module.Categories {
			matches := countTerms(text, cat.Terms)
			if matches == 0 {
				continue
			}
			moduleTotal += matches
			rows = append(rows, CategoryResult{
				Module:   module.Name,
				Category: cat.Name,
				Matches:  matches,
			})
		}
		if len(rows) == 0 {
			continue
		}
		for i := range rows {
			rows[i].Percentage = round1(100 * float64(rows[i].Matches) / float64(moduleTotal))
		}
		result[module.Name] = rows
	}
	return result
}

// countTerms sums non-overlapping occurrences of each term in text.
func countTerms(text string, terms []string) int {
	total := 0
	for _, term := range terms {
		total += strings.Count(text, term)
	}
	return total
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
