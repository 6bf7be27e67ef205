package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cognicore/lexiscan/pkg/lexiscan/aggregate"
	"github.com/cognicore/lexiscan/pkg/lexiscan/classify"
)

func sampleResult() classify.Result {
	return classify.Result{
		"uncertainty": {
			{Module: "uncertainty", Category: "Epistemic", Matches: 3, Percentage: 75.0},
			{Module: "uncertainty", Category: "Aleatory", Matches: 1, Percentage: 25.0},
		},
	}
}

func TestWriteArticleCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteArticleCSV(&buf, sampleResult(), 120, false, 0); err != nil {
		t.Fatalf("WriteArticleCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse output: %v", err)
	}

	want := [][]string{
		{"module", "category", "matches", "percentage"},
		{"uncertainty", "Epistemic", "3", "75.0"},
		{"uncertainty", "Aleatory", "1", "25.0"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("article CSV mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteArticleCSVWithSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteArticleCSV(&buf, sampleResult(), 120, true, 0); err != nil {
		t.Fatalf("WriteArticleCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse output: %v", err)
	}

	last := records[len(records)-1]
	if last[0] != "summary" {
		t.Fatalf("expected trailing summary row, got %v", last)
	}
	if !strings.Contains(last[1], "Epistemic") || !strings.Contains(last[1], "120") {
		t.Errorf("summary text incomplete: %q", last[1])
	}
}

func TestWriteCorpusCSV(t *testing.T) {
	rows := []aggregate.CorpusRow{
		{
			Article:               "smith-2023",
			Module:                "uncertainty",
			Category:              "Epistemic",
			Matches:               4,
			TotalMatchesInArticle: 10,
			PropOfArticleTotal:    40.00,
			PropOfModuleTotal:     66.67,
			WordCount:             2000,
			MatchesPer1000Words:   2.00,
		},
		{Article: "empty-article", WordCount: 50},
	}

	var buf bytes.Buffer
	if err := WriteCorpusCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCorpusCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse output: %v", err)
	}

	want := [][]string{
		{"module", "category", "matches", "article", "total_matches_in_article",
			"prop_of_article_total", "prop_of_module_total", "word_count",
			"matches_per_1000_words"},
		{"uncertainty", "Epistemic", "4", "smith-2023", "10", "40.00", "66.67", "2000", "2.00"},
		{"", "", "0", "empty-article", "0", "0.00", "0.00", "50", "0.00"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("corpus CSV mismatch (-want +got):\n%s", diff)
	}
}

func TestNarrative(t *testing.T) {
	text, err := Narrative(sampleResult(), 120, 0)
	if err != nil {
		t.Fatalf("Narrative: %v", err)
	}

	if !strings.Contains(text, "uncertainty") {
		t.Errorf("narrative should name the module: %q", text)
	}
	// Top categories are match-count ordered.
	if strings.Index(text, "Epistemic") > strings.Index(text, "Aleatory") {
		t.Errorf("dominant category should come first: %q", text)
	}
	if !strings.Contains(text, "120 analyzed words") {
		t.Errorf("narrative should report the word count: %q", text)
	}
}

func TestNarrativeTopN(t *testing.T) {
	text, err := Narrative(sampleResult(), 120, 1)
	if err != nil {
		t.Fatalf("Narrative: %v", err)
	}
	if !strings.Contains(text, "Epistemic") {
		t.Errorf("leading category missing: %q", text)
	}
	if strings.Contains(text, "Aleatory") {
		t.Errorf("topN=1 should name only the leading category: %q", text)
	}
}

func TestNarrativeEmptyResult(t *testing.T) {
	text, err := Narrative(classify.Result{}, 0, 0)
	if err != nil {
		t.Fatalf("Narrative: %v", err)
	}
	if text != "The article contains 0 analyzed words." {
		t.Errorf("unexpected narrative for empty result: %q", text)
	}
}
