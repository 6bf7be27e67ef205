package taxonomy

import (
	"fmt"
	"strings"

	"github.com/cognicore/lexiscan/pkg/lexiscan/internalerr"
)

// Category is a named concept within a module, defined by a list of
// lowercase keyword terms. Terms are alternatives: any occurrence of
// any term counts toward the category.
type Category struct {
	Name  string
	Terms []string
}

// Module is a top-level grouping of related categories, e.g.
// "types of uncertainty". Category order is the declaration order
// of the source file and is preserved through classification.
type Module struct {
	Name       string
	Categories []Category
}

// Taxonomy is the full category scheme for a run. It is immutable
// once loaded; classification receives it by explicit reference,
// never through shared state.
type Taxonomy struct {
	modules []Module
	index   map[string]int // module name → position in modules
}

// New creates an empty taxonomy.
func New() *Taxonomy {
	return &Taxonomy{index: make(map[string]int)}
}

// AddModule appends a module. Categories with no usable terms are
// dropped here, so downstream code never sees an empty term list.
// A module that ends up with zero categories is dropped entirely.
func (t *Taxonomy) AddModule(name string, categories []Category) {
	kept := make([]Category, 0, len(categories))
	for _, c := range categories {
		if strings.TrimSpace(c.Name) == "" || len(c.Terms) == 0 {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return
	}
	if pos, ok := t.index[name]; ok {
		t.modules[pos].Categories = append(t.modules[pos].Categories, kept...)
		return
	}
	t.index[name] = len(t.modules)
	t.modules = append(t.modules, Module{Name: name, Categories: kept})
}

// AddCategory appends one category to the named module, creating the
// module if needed. The keywords string is parsed with ParseTerms;
// an empty or whitespace-only keywords field skips the category.
func (t *Taxonomy) AddCategory(module, category, keywords string) {
	terms := ParseTerms(keywords)
	if len(terms) == 0 {
		return
	}
	t.AddModule(module, []Category{{Name: category, Terms: terms}})
}

// Modules returns the modules in declaration order.
func (t *Taxonomy) Modules() []Module {
	return t.modules
}

// Module returns the named module.
func (t *Taxonomy) Module(name string) (Module, bool) {
	pos, ok := t.index[name]
	if !ok {
		return Module{}, false
	}
	return t.modules[pos], true
}

// Len returns the number of modules.
func (t *Taxonomy) Len() int {
	return len(t.modules)
}

// Validate checks structural soundness: at least one module, and no
// duplicate category names within a module.
func (t *Taxonomy) Validate() error {
	if len(t.modules) == 0 {
		return fmt.Errorf("%w: no modules with usable categories", internalerr.ErrInvalidTaxonomy)
	}
	for _, m := range t.modules {
		seen := make(map[string]struct{}, len(m.Categories))
		for _, c := range m.Categories {
			if _, dup := seen[c.Name]; dup {
				return fmt.Errorf("%w: duplicate category %q in module %q", internalerr.ErrInvalidTaxonomy, c.Name, m.Name)
			}
			seen[c.Name] = struct{}{}
		}
	}
	return nil
}

// ParseTerms splits a comma-separated keywords field into individual
// lowercase terms, trimming surrounding whitespace and dropping
// empties. Parsing happens once at load time so classification works
// on precompiled term lists.
func ParseTerms(keywords string) []string {
	var terms []string
	for _, raw := range strings.Split(keywords, ",") {
		term := strings.ToLower(strings.TrimSpace(raw))
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}
