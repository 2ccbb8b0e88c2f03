package matcher

import (
	"sort"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/hbollon/go-edlib"

	"github.com/kent-titlemap/internal/normalize"
	"github.com/kent-titlemap/internal/reference"
)

// LexicalRanker scores candidates by surface string similarity. It takes
// the better of two views per candidate: Jaro-Winkler on the canonical
// titles, which rewards shared prefixes and tolerates typos, and a
// Levenshtein ratio over sorted tokens, which tolerates word reordering
// ("engineer, senior drilling" vs "senior drilling engineer").
type LexicalRanker struct {
	levenshtein *metrics.Levenshtein
}

// NewLexicalRanker creates a lexical ranker
func NewLexicalRanker() *LexicalRanker {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	return &LexicalRanker{levenshtein: lev}
}

// Name identifies the ranker in errors and logs
func (r *LexicalRanker) Name() string {
	return "lexical"
}

// Rank scores every row against the query and returns the top matches
func (r *LexicalRanker) Rank(cleanQuery string, rows []reference.Row, limit int) ([]Match, error) {
	queryCanonical := normalize.CanonicalTitle(cleanQuery)
	querySorted := normalize.SortedTokens(queryCanonical)
	queryTokens := normalize.Tokens(queryCanonical)

	matches := make([]Match, 0, len(rows))
	overlaps := make([]float64, 0, len(rows))
	for _, row := range rows {
		candidate := normalize.CanonicalTitle(row.CleanTitle)

		score := float64(edlib.JaroWinklerSimilarity(queryCanonical, candidate))

		tokenScore := strutil.Similarity(querySorted, normalize.SortedTokens(candidate), r.levenshtein)
		if tokenScore > score {
			score = tokenScore
		}

		matches = append(matches, Match{Row: row, Probability: score * 100})
		overlaps = append(overlaps, normalize.TokenOverlap(queryTokens, normalize.Tokens(candidate)))
	}

	sortWithOverlap(matches, overlaps)
	return matches, nil
}

// sortWithOverlap orders matches by probability, breaking equal scores by
// how many query tokens the candidate shares. overlaps is parallel to
// matches and reordered with it.
func sortWithOverlap(matches []Match, overlaps []float64) {
	sort.Stable(matchesWithOverlap{matches, overlaps})
}

type matchesWithOverlap struct {
	matches  []Match
	overlaps []float64
}

func (m matchesWithOverlap) Len() int { return len(m.matches) }
func (m matchesWithOverlap) Less(i, j int) bool {
	if m.matches[i].Probability != m.matches[j].Probability {
		return m.matches[i].Probability > m.matches[j].Probability
	}
	return m.overlaps[i] > m.overlaps[j]
}
func (m matchesWithOverlap) Swap(i, j int) {
	m.matches[i], m.matches[j] = m.matches[j], m.matches[i]
	m.overlaps[i], m.overlaps[j] = m.overlaps[j], m.overlaps[i]
}
