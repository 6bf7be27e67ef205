package report

import (
	"sort"
	"strings"
	"text/template"

	"github.com/cognicore/lexiscan/pkg/lexiscan/classify"
)

// narrativeTmpl renders one sentence per matched module naming its
// leading categories, plus a closing word-count sentence.
var narrativeTmpl = template.Must(template.New("narrative").Parse(
	`{{- range .Modules -}}
For {{.Name}}, the dominant categories are {{.Categories}}. {{end -}}
The article contains {{.WordCount}} analyzed words.`))

type narrativeModule struct {
	Name       string
	Categories string
}

type narrativeData struct {
	Modules   []narrativeModule
	WordCount int
}

// Narrative summarizes a classification result as free text: the
// topN leading categories per module in module name order (topN <= 0
// falls back to the default). An empty result yields only the
// word-count sentence.
func Narrative(result classify.Result, wordCount, topN int) (string, error) {
	top := classify.TopCategories(result, topN)

	names := make([]string, 0, len(top))
	for name := range top {
		names = append(names, name)
	}
	sort.Strings(names)

	data := narrativeData{WordCount: wordCount}
	for _, name := range names {
		data.Modules = append(data.Modules, narrativeModule{
			Name:       name,
			Categories: strings.Join(top[name], ", "),
		})
	}

	var sb strings.Builder
	if err := narrativeTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
