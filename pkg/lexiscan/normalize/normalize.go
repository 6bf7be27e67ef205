// Package normalize turns raw extracted text into the cleaned form
// the classification engine counts against: lowercase, punctuation
// and stopwords removed, single spaces between words.
package normalize

import (
	"strings"
	"unicode"
)

// Document is one input article after normalization. Immutable once
// built; raw text is not retained.
type Document struct {
	ID        string
	Text      string
	WordCount int
}

// Normalizer cleans article text against a stopword set. The zero
// value is not usable; construct with New.
type Normalizer struct {
	stopwords map[string]struct{}
}

// New creates a Normalizer with the embedded English stopword set
// plus any extra stopwords.
func New(extra ...string) *Normalizer {
	n := &Normalizer{stopwords: make(map[string]struct{}, len(defaultStopwords)+len(extra))}
	for _, w := range defaultStopwords {
		n.stopwords[w] = struct{}{}
	}
	for _, w := range extra {
		n.AddStopword(w)
	}
	return n
}

// AddStopword adds a word to the stopword set.
func (n *Normalizer) AddStopword(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word != "" {
		n.stopwords[word] = struct{}{}
	}
}

// IsStopword reports whether the word is filtered during
// normalization.
func (n *Normalizer) IsStopword(word string) bool {
	_, ok := n.stopwords[strings.ToLower(word)]
	return ok
}

// Normalize lowercases the text, strips punctuation, drops
// stopwords, single-character and pure-numeric tokens, and rejoins
// the surviving words with single spaces. The returned count is the
// number of surviving words and is the document's word count for
// density metrics.
func (n *Normalizer) Normalize(raw string) (string, int) {
	words := n.words(raw)
	return strings.Join(words, " "), len(words)
}

// NewDocument normalizes raw text into a Document with the given ID.
func (n *Normalizer) NewDocument(id, raw string) Document {
	text, count := n.Normalize(raw)
	return Document{ID: id, Text: text, WordCount: count}
}

// words splits on any rune that is not a letter, digit, or hyphen,
// lowercasing as it goes. Hyphens are kept inside words ("half-life")
// but stripped from the edges. Apostrophes are dropped without
// splitting, so "don't" becomes "dont" and matches the stopword list.
func (n *Normalizer) words(raw string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := n.clean(current.String())
		current.Reset()
		if word != "" {
			words = append(words, word)
		}
	}

	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			current.WriteRune(unicode.ToLower(r))
		case r == '\'' || r == '’':
		default:
			flush()
		}
	}
	flush()
	return words
}

func (n *Normalizer) clean(word string) string {
	word = strings.Trim(word, "-")
	for strings.Contains(word, "--") {
		word = strings.ReplaceAll(word, "--", "-")
	}
	if len(word) <= 1 || isNumericOnly(word) {
		return ""
	}
	if _, stop := n.stopwords[word]; stop {
		return ""
	}
	return word
}

// isNumericOnly reports whether the word is digits and hyphens only.
// Mixed tokens like "gpt-4" survive.
func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}
