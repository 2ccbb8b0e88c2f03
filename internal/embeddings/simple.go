package embeddings

import (
	"crypto/md5"
	"math"

	"github.com/kent-titlemap/internal/normalize"
)

// roleTerms are common job-title words whose presence is encoded as
// dedicated vector features, so titles sharing a role family land closer
// together than raw hashing alone would put them
var roleTerms = []string{
	"engineer", "manager", "supervisor", "technician", "specialist",
	"director", "analyst", "coordinator", "superintendent", "lead",
	"senior", "junior", "principal", "head", "chief", "officer",
}

// SimpleEmbedder creates deterministic embeddings from job titles without
// any external model
type SimpleEmbedder struct {
	dimensions int
}

// NewSimpleEmbedder creates a simple embedder
func NewSimpleEmbedder(dimensions int) *SimpleEmbedder {
	if dimensions < len(roleTerms)+8 {
		dimensions = len(roleTerms) + 8
	}
	return &SimpleEmbedder{dimensions: dimensions}
}

// Dimensions returns the vector size this embedder produces
func (se *SimpleEmbedder) Dimensions() int {
	return se.dimensions
}

// Embed creates a vector representation of a job title. Identical canonical
// titles always produce identical vectors regardless of casing, punctuation
// or word order.
func (se *SimpleEmbedder) Embed(text string) ([]float32, error) {
	vector := make([]float32, se.dimensions)

	canonical := normalize.CanonicalTitle(text)
	if canonical == "" {
		return vector, nil
	}

	tokens := normalize.Tokens(canonical)
	hashDims := se.dimensions - len(roleTerms) - 4

	// Hash each token separately and sum the contributions, so word order
	// does not change the base vector
	for _, token := range tokens {
		hash := md5.Sum([]byte(token))
		for i := 0; i < hashDims; i++ {
			hashIndex := (i + i/len(hash)) % len(hash)
			vector[i] += (float32(hash[hashIndex])/255.0)*2.0 - 1.0
		}
	}

	// Role-term features occupy fixed slots after the hash region
	for i, term := range roleTerms {
		for _, token := range tokens {
			if token == term {
				vector[hashDims+i] = 1.0
				break
			}
		}
	}

	// Shape features: token count and title length
	vector[se.dimensions-4] = float32(len(tokens)) / 8.0
	vector[se.dimensions-3] = float32(len(canonical)) / 64.0

	// Qualified titles carry a word beyond the bare role
	if len(tokens) > 1 {
		vector[se.dimensions-2] = 1.0
	}

	// Seniority marker
	for _, token := range tokens {
		switch token {
		case "senior", "lead", "principal", "head", "chief":
			vector[se.dimensions-1] = 1.0
		}
	}

	// Normalize vector to unit length
	var norm float32
	for _, val := range vector {
		norm += val * val
	}
	norm = float32(math.Sqrt(float64(norm)))

	if norm > 0 {
		for i := range vector {
			vector[i] /= norm
		}
	}

	return vector, nil
}
