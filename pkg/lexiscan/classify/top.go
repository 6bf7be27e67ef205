package classify

import "sort"

// DefaultTopN is the number of leading categories reported per
// module when no explicit limit is given.
const DefaultTopN = 3

// TopCategories returns, per matched module, up to n category names
// ordered by match count descending. Ties keep taxonomy declaration
// order, which the per-module result slices already carry, so the
// selection is deterministic. n <= 0 falls back to DefaultTopN.
func TopCategories(result Result, n int) map[string][]string {
	if n <= 0 {
		n = DefaultTopN
	}
	top := make(map[string][]string, len(result))
	for module, rows := range result {
		ordered := make([]CategoryResult, len(rows))
		copy(ordered, rows)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Matches > ordered[j].Matches
		})
		if len(ordered) > n {
			ordered = ordered[:n]
		}
		names := make([]string, len(ordered))
		for i, row := range ordered {
			names[i] = row.Category
		}
		top[module] = names
	}
	return top
}
