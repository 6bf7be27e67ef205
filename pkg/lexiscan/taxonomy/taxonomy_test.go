package taxonomy

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cognicore/lexiscan/pkg/lexiscan/internalerr"
)

func TestParseTerms(t *testing.T) {
	got := ParseTerms("Epistemic,  risk , Knowledge Gap,")
	want := []string{"epistemic", "risk", "knowledge gap"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseTerms mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTermsEmpty(t *testing.T) {
	if terms := ParseTerms("   "); terms != nil {
		t.Errorf("whitespace-only keywords should parse to nil, got %v", terms)
	}
	if terms := ParseTerms(",,,"); terms != nil {
		t.Errorf("comma-only keywords should parse to nil, got %v", terms)
	}
}

func TestAddCategoryPreservesOrder(t *testing.T) {
	tax := New()
	tax.AddCategory("uncertainty", "Epistemic", "epistemic, knowledge gap")
	tax.AddCategory("uncertainty", "Aleatory", "aleatory, randomness")
	tax.AddCategory("stakeholders", "Regulators", "regulator, agency")

	modules := tax.Modules()
	if len(modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(modules))
	}
	if modules[0].Name != "uncertainty" || modules[1].Name != "stakeholders" {
		t.Errorf("module order not preserved: %q, %q", modules[0].Name, modules[1].Name)
	}
	cats := modules[0].Categories
	if len(cats) != 2 || cats[0].Name != "Epistemic" || cats[1].Name != "Aleatory" {
		t.Errorf("category order not preserved: %v", cats)
	}
}

func TestAddCategorySkipsEmptyKeywords(t *testing.T) {
	tax := New()
	tax.AddCategory("uncertainty", "Empty", "")
	tax.AddCategory("uncertainty", "Blank", "   ")

	if tax.Len() != 0 {
		t.Errorf("categories without usable terms should be skipped entirely, got %d modules", tax.Len())
	}
}

func TestModuleLookup(t *testing.T) {
	tax := New()
	tax.AddCategory("uncertainty", "Epistemic", "epistemic")

	if _, ok := tax.Module("uncertainty"); !ok {
		t.Error("expected to find module 'uncertainty'")
	}
	if _, ok := tax.Module("missing"); ok {
		t.Error("lookup of absent module should report false")
	}
}

func TestValidateEmpty(t *testing.T) {
	err := New().Validate()
	if !errors.Is(err, internalerr.ErrInvalidTaxonomy) {
		t.Errorf("empty taxonomy should fail validation with ErrInvalidTaxonomy, got %v", err)
	}
}

func TestValidateDuplicateCategory(t *testing.T) {
	tax := New()
	tax.AddCategory("uncertainty", "Epistemic", "epistemic")
	tax.AddCategory("uncertainty", "Epistemic", "knowledge")

	err := tax.Validate()
	if !errors.Is(err, internalerr.ErrInvalidTaxonomy) {
		t.Errorf("duplicate category should fail validation, got %v", err)
	}
}
