// Package symspell implements the SymSpell spelling correction algorithm
// over the reference-table title vocabulary.
//
// SymSpell uses a pre-computed "delete dictionary" approach for O(1) lookup
// performance, so correcting query tokens adds no measurable latency to a
// match request.
package symspell

// Config holds SymSpell configuration parameters.
type Config struct {
	// MaxEditDistance is the maximum Damerau-Levenshtein distance for corrections.
	// Default: 2 (catches most typos while avoiding false corrections)
	MaxEditDistance int

	// MinTermLength is the minimum token length to attempt correction.
	// Default: 3 (avoids mangling short grade-like tokens)
	MinTermLength int

	// MinFrequency is the minimum frequency for a term to be included in the dictionary.
	// Default: 1 (include all vocabulary terms)
	MinFrequency int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxEditDistance: 2,
		MinTermLength:   3,
		MinFrequency:    1,
	}
}

// DictionaryEntry is a vocabulary term with its corpus frequency.
type DictionaryEntry struct {
	Term      string
	Frequency int64
}

// Suggestion is a candidate correction for a token.
type Suggestion struct {
	Term      string
	Distance  int
	Frequency int64
}

// CorrectionResult records what happened to one token.
type CorrectionResult struct {
	Original     string
	Corrected    string
	Distance     int
	WasCorrected bool
	Confidence   float64
}

// DictionaryStats describes the loaded dictionary.
type DictionaryStats struct {
	TermCount      int
	DeleteCount    int
	TotalFrequency int64
	MaxFrequency   int64
}
