package taxonomy

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// LoadCSV loads a taxonomy from a CSV file with columns
// module,category,keywords. A header row is detected by its first
// cell and skipped. Row order is declaration order.
func LoadCSV(path string) (*Taxonomy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // keywords fields may be quoted unevenly
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse taxonomy %s: %w", path, err)
	}

	start := 0
	if len(records) > 0 && len(records[0]) > 0 && strings.EqualFold(strings.TrimSpace(records[0][0]), "module") {
		start = 1
	}

	tax := New()
	for _, row := range records[start:] {
		if len(row) < 3 {
			continue
		}
		module := strings.TrimSpace(row[0])
		category := strings.TrimSpace(row[1])
		if module == "" || category == "" {
			continue
		}
		tax.AddCategory(module, category, row[2])
	}
	if err := tax.Validate(); err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return tax, nil
}
