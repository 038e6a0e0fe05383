// Package recommend ranks catalog songs by feature-vector similarity and
// answers the queries the playlist builder and CLI are built on.
package recommend

import (
	"path/filepath"
	"strings"

	"github.com/nkapur/auralist/classify"
	"github.com/nkapur/auralist/features"
	"github.com/nkapur/auralist/logging"
)

// Engine answers similarity queries over an immutable song catalog. The
// feature table and its standardized matrix are built once at construction
// and are safe to share across concurrent read-only queries.
type Engine struct {
	cfg    *Config
	table  *features.Table
	moods  *classify.MoodClassifier
	logger logging.Logger
}

// New constructs an engine from a feature file. All fatal conditions
// (missing, empty, or malformed file) surface here; queries afterwards never
// fail the process.
func New(featuresPath string, cfg *Config, logger logging.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	table, err := features.LoadWithTraits(featuresPath, cfg.TraitColumns, logger)
	if err != nil {
		return nil, err
	}
	return NewFromTable(table, cfg, logger), nil
}

// NewFromTable constructs an engine over an already loaded table.
func NewFromTable(table *features.Table, cfg *Config, logger logging.Logger) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger = logging.Or(logger)
	return &Engine{
		cfg:    cfg,
		table:  table,
		moods:  classify.NewMoodClassifier(logger),
		logger: logger.WithFields(logging.Fields{"component": "recommend_engine"}),
	}
}

// Table exposes the underlying feature table.
func (e *Engine) Table() *features.Table {
	return e.table
}

// Size returns the number of songs in the catalog.
func (e *Engine) Size() int {
	return e.table.Len()
}

// PathAt returns the canonical catalog path for row i.
func (e *Engine) PathAt(i int) string {
	return e.table.Record(i).FilePath
}

// Resolve maps a song reference (absolute path, relative path, or bare
// filename) to a catalog row. A miss is an expected condition reported as
// ok=false, never an error.
//
// Resolution order, first match wins:
//  1. exact file_path match for absolute references
//  2. file_path suffix match on the reference's filename, case-sensitive
//  3. the same, case-insensitive
//  4. exact then case-insensitive match against the file_name column
func (e *Engine) Resolve(ref string) (int, bool) {
	if ref == "" {
		return 0, false
	}

	if filepath.IsAbs(ref) {
		abs := filepath.Clean(ref)
		for i := range e.table.Records() {
			if e.table.Record(i).FilePath == abs {
				return i, true
			}
		}
	}

	base := filepath.Base(ref)
	for i := range e.table.Records() {
		if strings.HasSuffix(e.table.Record(i).FilePath, base) {
			return i, true
		}
	}

	lowerBase := strings.ToLower(base)
	for i := range e.table.Records() {
		if strings.HasSuffix(strings.ToLower(e.table.Record(i).FilePath), lowerBase) {
			return i, true
		}
	}

	for i := range e.table.Records() {
		if name := e.table.Record(i).FileName; name != "" && name == base {
			return i, true
		}
	}
	for i := range e.table.Records() {
		if name := e.table.Record(i).FileName; name != "" && strings.EqualFold(name, base) {
			return i, true
		}
	}

	return 0, false
}

// QueryOption narrows a similarity query.
type QueryOption func(*query)

type query struct {
	genre classify.Label
	mood  classify.Label
}

// WithGenre keeps only songs whose derived genre equals label.
func WithGenre(label classify.Label) QueryOption {
	return func(q *query) { q.genre = label }
}

// WithMood keeps only songs whose derived mood is compatible with label.
func WithMood(label classify.Label) QueryOption {
	return func(q *query) { q.mood = label }
}

// FindSimilar resolves ref and returns up to n catalog paths ranked by cosine
// similarity. An unresolvable reference logs a warning and returns an empty
// result.
func (e *Engine) FindSimilar(ref string, n int, opts ...QueryOption) []string {
	row, ok := e.Resolve(ref)
	if !ok {
		e.logger.Warn("Song not found in catalog", logging.Fields{"song": ref})
		return nil
	}

	var q query
	for _, opt := range opts {
		opt(&q)
	}
	return e.SimilarTo(row, n, q.genre, q.mood)
}

// SimilarTo returns up to n catalog paths most similar to the song at row,
// ranked by descending cosine similarity with ties kept in row order. The
// reference row itself is never part of the result; restrictive filters or a
// small catalog simply yield fewer results.
func (e *Engine) SimilarTo(row, n int, genreFilter, moodFilter classify.Label) []string {
	if row < 0 || row >= e.table.Len() || n <= 0 {
		return nil
	}

	ranking := rankBySimilarity(e.table.Vectors(), row)

	results := make([]string, 0, n)
	for _, candidate := range ranking {
		if candidate == row {
			continue
		}
		rec := e.table.Record(candidate)
		if genreFilter != classify.None && classify.Genre(rec.FilePath) != genreFilter {
			continue
		}
		if moodFilter != classify.None && !e.moodCompatible(candidate, moodFilter) {
			continue
		}
		results = append(results, rec.FilePath)
		if len(results) == n {
			break
		}
	}

	return results
}

// MoodOf returns the derived mood label for a catalog row.
func (e *Engine) MoodOf(row int) classify.Label {
	rec := e.table.Record(row)
	return e.moods.Classify(rec.Traits(), rec.FilePath)
}

func (e *Engine) moodCompatible(row int, filter classify.Label) bool {
	score := classify.MoodCompatibility(e.MoodOf(row), filter, e.cfg.PartialMatchScore)
	return score >= e.cfg.MoodMatchThreshold
}
