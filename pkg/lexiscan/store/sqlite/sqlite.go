// Package sqlite implements store.Store on a SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/lexiscan/pkg/lexiscan/aggregate"
	"github.com/cognicore/lexiscan/pkg/lexiscan/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	taxonomy_path TEXT,
	articles INTEGER DEFAULT 0,
	failures INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS corpus_rows (
	run_id TEXT NOT NULL,
	article TEXT NOT NULL,
	module TEXT,
	category TEXT,
	matches INTEGER NOT NULL,
	total_matches_in_article INTEGER NOT NULL,
	prop_of_article_total REAL NOT NULL,
	prop_of_module_total REAL NOT NULL,
	word_count INTEGER NOT NULL,
	matches_per_1000_words REAL NOT NULL,
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_corpus_rows_run ON corpus_rows(run_id);

CREATE TABLE IF NOT EXISTS run_failures (
	run_id TEXT NOT NULL,
	path TEXT NOT NULL,
	reason TEXT,
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or updates a run record.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	const stmt = `
INSERT INTO runs (id, started_at, taxonomy_path, articles, failures)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	started_at=excluded.started_at,
	taxonomy_path=excluded.taxonomy_path,
	articles=excluded.articles,
	failures=excluded.failures;
`
	_, err := s.db.ExecContext(
		ctx,
		stmt,
		r.ID,
		r.StartedAt.UTC().Format(time.RFC3339),
		r.TaxonomyPath,
		r.Articles,
		r.Failures,
	)
	return err
}

// GetRun returns a run by ID.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, started_at, taxonomy_path, articles, failures FROM runs WHERE id=?`,
		id,
	)
	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

// ListRuns returns runs newest first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, started_at, taxonomy_path, articles, failures FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (store.Run, error) {
	var r store.Run
	var startedAt string
	if err := row.Scan(&r.ID, &startedAt, &r.TaxonomyPath, &r.Articles, &r.Failures); err != nil {
		return store.Run{}, err
	}
	if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
		r.StartedAt = t
	}
	return r, nil
}

// SaveCorpusRows replaces the corpus rows of a run.
func (s *sqliteStore) SaveCorpusRows(ctx context.Context, runID string, rows []aggregate.CorpusRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM corpus_rows WHERE run_id=?`, runID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO corpus_rows (
	run_id, article, module, category, matches,
	total_matches_in_article, prop_of_article_total,
	prop_of_module_total, word_count, matches_per_1000_words
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(
			ctx,
			runID,
			row.Article,
			row.Module,
			row.Category,
			row.Matches,
			row.TotalMatchesInArticle,
			row.PropOfArticleTotal,
			row.PropOfModuleTotal,
			row.WordCount,
			row.MatchesPer1000Words,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetCorpusRows returns the corpus rows of a run in insertion order.
func (s *sqliteStore) GetCorpusRows(ctx context.Context, runID string) ([]aggregate.CorpusRow, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT article, module, category, matches,
	total_matches_in_article, prop_of_article_total,
	prop_of_module_total, word_count, matches_per_1000_words
FROM corpus_rows WHERE run_id=? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []aggregate.CorpusRow
	for rows.Next() {
		var r aggregate.CorpusRow
		err := rows.Scan(
			&r.Article,
			&r.Module,
			&r.Category,
			&r.Matches,
			&r.TotalMatchesInArticle,
			&r.PropOfArticleTotal,
			&r.PropOfModuleTotal,
			&r.WordCount,
			&r.MatchesPer1000Words,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SaveFailures replaces the failure records of a run.
func (s *sqliteStore) SaveFailures(ctx context.Context, runID string, failures []store.Failure) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM run_failures WHERE run_id=?`, runID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO run_failures (run_id, path, reason) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range failures {
		if _, err := stmt.ExecContext(ctx, runID, f.Path, f.Reason); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetFailures returns the failure records of a run.
func (s *sqliteStore) GetFailures(ctx context.Context, runID string) ([]store.Failure, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path, reason FROM run_failures WHERE run_id=? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Failure
	for rows.Next() {
		var f store.Failure
		if err := rows.Scan(&f.Path, &f.Reason); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
