package vector

import (
	"math"
	"sort"
)

// Item is a vector stored in the index, keyed by the caller's row identifier
type Item struct {
	ID     int
	Vector []float32
}

// Result is a nearest-neighbour hit with its cosine similarity score
type Result struct {
	ID    int
	Score float64
}

// Index is a brute-force in-memory cosine similarity index. The reference
// table is small enough that exhaustive search beats maintaining an
// approximate structure.
type Index struct {
	items []Item
}

// NewIndex builds an index over the given items
func NewIndex(items []Item) *Index {
	return &Index{items: items}
}

// Size returns the number of stored vectors
func (idx *Index) Size() int {
	return len(idx.items)
}

// Search returns the top-k items by cosine similarity to the query vector,
// best first
func (idx *Index) Search(query []float32, k int) []Result {
	if len(idx.items) == 0 || len(query) == 0 || k <= 0 {
		return nil
	}

	results := make([]Result, 0, len(idx.items))
	for _, item := range idx.items {
		results = append(results, Result{
			ID:    item.ID,
			Score: CosineSimilarity(query, item.Vector),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths are compared over the shorter prefix; zero vectors
// score zero.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		fa := float64(a[i])
		fb := float64(b[i])
		dot += fa * fb
		normA += fa * fa
		normB += fb * fb
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
