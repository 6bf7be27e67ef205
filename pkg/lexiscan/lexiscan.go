// Package lexiscan classifies article corpora against keyword-defined
// category taxonomies and aggregates cross-corpus statistics.
package lexiscan

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/cognicore/lexiscan/pkg/lexiscan/aggregate"
	"github.com/cognicore/lexiscan/pkg/lexiscan/classify"
	"github.com/cognicore/lexiscan/pkg/lexiscan/extract"
	"github.com/cognicore/lexiscan/pkg/lexiscan/normalize"
	"github.com/cognicore/lexiscan/pkg/lexiscan/store"
	"github.com/cognicore/lexiscan/pkg/lexiscan/taxonomy"
)

// Lexiscan is the main classification engine facade.
type Lexiscan struct {
	tax        *taxonomy.Taxonomy
	taxPath    string
	normalizer *normalize.Normalizer
	store      store.Store
	workers    int
}

// Options configures a Lexiscan instance. Store is optional; without
// one, runs are not persisted. Workers bounds corpus concurrency
// (0 means sequential).
type Options struct {
	Taxonomy     *taxonomy.Taxonomy
	TaxonomyPath string // recorded with persisted runs
	Normalizer   *normalize.Normalizer
	Store        store.Store
	Workers      int
}

// New creates a Lexiscan instance with the given dependencies.
func New(opts Options) *Lexiscan {
	normalizer := opts.Normalizer
	if normalizer == nil {
		normalizer = normalize.New()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Lexiscan{
		tax:        opts.Taxonomy,
		taxPath:    opts.TaxonomyPath,
		normalizer: normalizer,
		store:      opts.Store,
		workers:    workers,
	}
}

// Close cleanly shuts down the instance.
func (l *Lexiscan) Close() error {
	if l.store == nil {
		return nil
	}
	return l.store.Close()
}

// Article is one classified document.
type Article struct {
	ID        string
	WordCount int
	Result    classify.Result
}

// ClassifyDocument classifies one already-normalized document.
func (l *Lexiscan) ClassifyDocument(doc normalize.Document) Article {
	return Article{
		ID:        doc.ID,
		WordCount: doc.WordCount,
		Result:    classify.Classify(doc.Text, l.tax),
	}
}

// ClassifyFile extracts, normalizes, and classifies one file.
func (l *Lexiscan) ClassifyFile(path string) (Article, error) {
	raw, err := extract.Extract(path)
	if err != nil {
		return Article{}, err
	}
	doc := l.normalizer.NewDocument(extract.DocumentID(path), raw)
	return l.ClassifyDocument(doc), nil
}

// Failure records one document that failed during a corpus run.
type Failure struct {
	Path string
	Err  error
}

// CorpusResult is the outcome of a corpus run. Failures never abort
// the run; a failed document is skipped and reported here.
type CorpusResult struct {
	RunID    string
	Articles map[string]Article
	Rows     []aggregate.CorpusRow
	Failures []Failure
}

// RunCorpus classifies every file and aggregates the results. Files
// are processed by a bounded pool of workers writing to indexed
// slots, so output is identical regardless of scheduling; the
// aggregation itself is order-independent. Article IDs derive from
// file names, disambiguated so no document displaces another. If a
// store is configured, the run, its rows, and its failures are
// persisted.
func (l *Lexiscan) RunCorpus(ctx context.Context, paths []string) (CorpusResult, error) {
	startedAt := time.Now()
	ids := documentIDs(paths)

	type outcome struct {
		article Article
		err     error
	}
	outcomes := make([]outcome, len(paths))

	sem := make(chan struct{}, l.workers)
	var wg sync.WaitGroup
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return CorpusResult{}, err
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			article, err := l.ClassifyFile(path)
			if err == nil {
				article.ID = ids[i]
			}
			outcomes[i] = outcome{article: article, err: err}
		}(i, path)
	}
	wg.Wait()

	result := CorpusResult{Articles: make(map[string]Article, len(paths))}
	perArticle := make(map[string]aggregate.ArticleClassification, len(paths))
	for i, out := range outcomes {
		if out.err != nil {
			result.Failures = append(result.Failures, Failure{Path: paths[i], Err: out.err})
			continue
		}
		result.Articles[out.article.ID] = out.article
		perArticle[out.article.ID] = aggregate.ArticleClassification{
			Result:    out.article.Result,
			WordCount: out.article.WordCount,
		}
	}
	result.Rows = aggregate.Aggregate(perArticle)

	if l.store != nil {
		result.RunID = store.NewRunID(startedAt)
		if err := l.persist(ctx, startedAt, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// documentIDs assigns each path a unique article ID. IDs are the
// base name minus extension; paths sharing that stem keep the full
// base name, and paths whose base names also collide keep the path
// itself. Every input ends up in the aggregate under its own ID.
func documentIDs(paths []string) []string {
	stems := make(map[string]int, len(paths))
	bases := make(map[string]int, len(paths))
	for _, path := range paths {
		stems[extract.DocumentID(path)]++
		bases[filepath.Base(path)]++
	}

	ids := make([]string, len(paths))
	for i, path := range paths {
		id := extract.DocumentID(path)
		if stems[id] > 1 {
			id = filepath.Base(path)
			if bases[id] > 1 {
				id = path
			}
		}
		ids[i] = id
	}
	return ids
}

func (l *Lexiscan) persist(ctx context.Context, startedAt time.Time, result CorpusResult) error {
	run := store.Run{
		ID:           result.RunID,
		StartedAt:    startedAt,
		TaxonomyPath: l.taxPath,
		Articles:     len(result.Articles),
		Failures:     len(result.Failures),
	}
	if err := l.store.SaveRun(ctx, run); err != nil {
		return err
	}
	if err := l.store.SaveCorpusRows(ctx, result.RunID, result.Rows); err != nil {
		return err
	}
	failures := make([]store.Failure, len(result.Failures))
	for i, f := range result.Failures {
		failures[i] = store.Failure{Path: f.Path, Reason: f.Err.Error()}
	}
	return l.store.SaveFailures(ctx, result.RunID, failures)
}

// IsSkippable reports whether a corpus-run error is a per-document
// condition (unsupported format or unreadable file) rather than a
// fault in the run itself.
func IsSkippable(err error) bool {
	var unsupported *extract.UnsupportedFormatError
	var load *extract.LoadError
	return errors.As(err, &unsupported) || errors.As(err, &load)
}
