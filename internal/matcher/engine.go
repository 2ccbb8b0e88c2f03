package matcher

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/kent-titlemap/internal/normalize"
	"github.com/kent-titlemap/internal/reference"
	"github.com/kent-titlemap/internal/symspell"
)

// DefaultTopK is the number of candidates returned when no exact match exists
const DefaultTopK = 3

var (
	// ErrEmptyQuery is returned when the client role is blank after normalization
	ErrEmptyQuery = errors.New("client role is required")
	// ErrNoMatches is returned when the filters leave no rows to match against
	ErrNoMatches = errors.New("no titles match the selected filters")
)

// Query is one mapping request: a free-text client title plus optional
// grade/country filters (empty string means "All")
type Query struct {
	Title   string
	Grade   string
	Country string
}

// Match is one reference row annotated with a confidence score
type Match struct {
	Row         reference.Row
	Probability float64 // 0-100
}

// ProbabilityLabel formats the score the way the results table shows it
func (m Match) ProbabilityLabel() string {
	if m.Probability >= 100 {
		return "100%"
	}
	// Truncate rather than round so a near-perfect fuzzy score never
	// renders as "100.0%" and collides with the exact-match label
	return fmt.Sprintf("%.1f%%", math.Floor(m.Probability*10)/10)
}

// Result is the ranked outcome of a mapping request
type Result struct {
	Query   Query
	Exact   bool
	Matches []Match
}

// Ranker scores filtered reference rows against a normalized query
type Ranker interface {
	Name() string
	Rank(cleanQuery string, rows []reference.Row, limit int) ([]Match, error)
}

// Engine maps client titles onto the reference table: normalize, filter,
// short-circuit on exact matches, otherwise rank by similarity
type Engine struct {
	table     *reference.Table
	ranker    Ranker
	corrector *symspell.Corrector
	topK      int
}

// NewEngine creates a matching engine over the loaded reference table.
// A spelling corrector is built from the table's title vocabulary and
// applied to query tokens before ranking.
func NewEngine(table *reference.Table, ranker Ranker, topK int) *Engine {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Engine{
		table:     table,
		ranker:    ranker,
		corrector: symspell.NewCorrector(table.Titles(), nil),
		topK:      topK,
	}
}

// Table exposes the engine's reference table for meta endpoints
func (e *Engine) Table() *reference.Table {
	return e.table
}

// Match runs one mapping request. Rows whose normalized title equals the
// normalized query replace fuzzy results entirely and score 100%.
func (e *Engine) Match(q Query) (*Result, error) {
	clean := normalize.CleanTitle(q.Title)
	if clean == "" {
		return nil, ErrEmptyQuery
	}

	rows := e.table.Filter(q.Grade, q.Country)
	if len(rows) == 0 {
		return nil, ErrNoMatches
	}

	// Exact match first
	var exact []Match
	for _, row := range rows {
		if row.CleanTitle == clean {
			exact = append(exact, Match{Row: row, Probability: 100})
		}
	}
	if len(exact) > 0 {
		return &Result{Query: q, Exact: true, Matches: exact}, nil
	}

	limit := e.topK
	if limit > len(rows) {
		limit = len(rows)
	}

	// Correct query typos against the title vocabulary before ranking;
	// the exact-match check above always sees the raw query
	corrected, _ := e.corrector.CorrectTitle(clean)

	matches, err := e.ranker.Rank(corrected, rows, limit)
	if err != nil {
		return nil, fmt.Errorf("%s ranking failed: %w", e.ranker.Name(), err)
	}

	for i := range matches {
		matches[i].Probability = clampProbability(matches[i].Probability)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Probability > matches[j].Probability
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	return &Result{Query: q, Matches: matches}, nil
}

func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
