package classify

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTopCategories(t *testing.T) {
	result := Result{
		"uncertainty": {
			{Module: "uncertainty", Category: "Epistemic", Matches: 2},
			{Module: "uncertainty", Category: "Aleatory", Matches: 7},
			{Module: "uncertainty", Category: "Ontological", Matches: 4},
			{Module: "uncertainty", Category: "Moral", Matches: 1},
		},
	}

	top := TopCategories(result, 3)
	want := map[string][]string{
		"uncertainty": {"Aleatory", "Ontological", "Epistemic"},
	}
	if diff := cmp.Diff(want, top); diff != "" {
		t.Errorf("top categories mismatch (-want +got):\n%s", diff)
	}
}

func TestTopCategoriesTiesKeepDeclarationOrder(t *testing.T) {
	result := Result{
		"m": {
			{Module: "m", Category: "First", Matches: 2},
			{Module: "m", Category: "Second", Matches: 2},
			{Module: "m", Category: "Third", Matches: 2},
		},
	}

	top := TopCategories(result, 2)
	want := map[string][]string{"m": {"First", "Second"}}
	if diff := cmp.Diff(want, top); diff != "" {
		t.Errorf("tie-break mismatch (-want +got):\n%s", diff)
	}
}

func TestTopCategoriesDefaultN(t *testing.T) {
	result := Result{
		"m": {
			{Module: "m", Category: "A", Matches: 4},
			{Module: "m", Category: "B", Matches: 3},
			{Module: "m", Category: "C", Matches: 2},
			{Module: "m", Category: "D", Matches: 1},
		},
	}

	top := TopCategories(result, 0)
	if len(top["m"]) != DefaultTopN {
		t.Errorf("n<=0 should fall back to DefaultTopN, got %d names", len(top["m"]))
	}
}

func TestTopCategoriesFewerThanN(t *testing.T) {
	result := Result{
		"m": {{Module: "m", Category: "Only", Matches: 1}},
	}

	top := TopCategories(result, 5)
	if len(top["m"]) != 1 {
		t.Errorf("modules with fewer categories than n return what they have, got %v", top["m"])
	}
}

func TestTopCategoriesDoesNotMutateResult(t *testing.T) {
	result := Result{
		"m": {
			{Module: "m", Category: "A", Matches: 1},
			{Module: "m", Category: "B", Matches: 9},
		},
	}

	TopCategories(result, 1)
	if result["m"][0].Category != "A" {
		t.Error("TopCategories must not reorder the caller's rows")
	}
}
