package matcher

import (
	"fmt"

	"github.com/kent-titlemap/internal/reference"
	"github.com/kent-titlemap/internal/vector"
)

// Embedder interface for generating title embeddings
type Embedder interface {
	Embed(text string) ([]float32, error)
}

// SemanticRanker scores candidates by cosine similarity between title
// embeddings. The index is rebuilt per request over the filtered rows,
// which stays cheap at reference-table scale and keeps filtering exact.
type SemanticRanker struct {
	embedder Embedder
}

// NewSemanticRanker creates a semantic ranker backed by the given embedder
func NewSemanticRanker(embedder Embedder) *SemanticRanker {
	return &SemanticRanker{embedder: embedder}
}

// Name identifies the ranker in errors and logs
func (r *SemanticRanker) Name() string {
	return "semantic"
}

// Rank embeds the query and the filtered titles and returns the top
// matches by cosine similarity
func (r *SemanticRanker) Rank(cleanQuery string, rows []reference.Row, limit int) ([]Match, error) {
	queryVec, err := r.embedder.Embed(cleanQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	items := make([]vector.Item, len(rows))
	for i, row := range rows {
		vec, err := r.embedder.Embed(row.CleanTitle)
		if err != nil {
			return nil, fmt.Errorf("failed to embed title %q: %w", row.ClientJobTitle, err)
		}
		items[i] = vector.Item{ID: i, Vector: vec}
	}

	results := vector.NewIndex(items).Search(queryVec, limit)

	matches := make([]Match, len(results))
	for i, res := range results {
		matches[i] = Match{
			Row:         rows[res.ID],
			Probability: res.Score * 100,
		}
	}

	return matches, nil
}
