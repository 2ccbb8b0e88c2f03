package symspell

import (
	"strings"
	"unicode"

	"github.com/kent-titlemap/internal/normalize"
)

// Corrector provides query-token spelling correction against the
// vocabulary of the loaded reference titles. The dictionary is immutable
// after construction.
type Corrector struct {
	symspell *SymSpell
	config   *Config
}

// NewCorrector builds a corrector from the reference titles. Term
// frequencies come straight from token counts across the titles, so common
// vocabulary ("engineer") wins ties over rare terms.
func NewCorrector(titles []string, config *Config) *Corrector {
	if config == nil {
		config = DefaultConfig()
	}

	counts := make(map[string]int64)
	for _, title := range titles {
		for _, token := range normalize.Tokens(normalize.CleanTitle(title)) {
			counts[token]++
		}
	}

	entries := make([]DictionaryEntry, 0, len(counts))
	for term, freq := range counts {
		if freq < config.MinFrequency {
			continue
		}
		entries = append(entries, DictionaryEntry{Term: term, Frequency: freq})
	}

	return NewCorrectorFromEntries(entries, config)
}

// NewCorrectorFromEntries builds a corrector from a pre-built vocabulary.
func NewCorrectorFromEntries(entries []DictionaryEntry, config *Config) *Corrector {
	if config == nil {
		config = DefaultConfig()
	}
	symspell := New(config)
	symspell.AddTerms(entries)
	return &Corrector{
		symspell: symspell,
		config:   config,
	}
}

// CorrectTitle corrects spelling in a normalized title string.
// Returns the corrected title and a list of corrections made.
func (c *Corrector) CorrectTitle(clean string) (string, []CorrectionResult) {
	if c == nil || c.symspell == nil {
		return clean, nil
	}

	tokens := strings.Fields(clean)
	var corrections []CorrectionResult
	modified := false

	for i, token := range tokens {
		result := c.correctToken(token)
		if result.WasCorrected {
			tokens[i] = result.Corrected
			corrections = append(corrections, result)
			modified = true
		}
	}

	if !modified {
		return clean, nil
	}

	return strings.Join(tokens, " "), corrections
}

// correctToken attempts to correct a single token.
func (c *Corrector) correctToken(token string) CorrectionResult {
	token = strings.ToLower(strings.TrimSpace(token))
	unchanged := CorrectionResult{Original: token, Corrected: token}

	// Short tokens are usually grades or abbreviations, leave them alone
	if len(token) < c.config.MinTermLength {
		return unchanged
	}

	// Tokens carrying digits (grade codes like "p5", levels like "iii2")
	// are identifiers, not words
	if containsDigit(token) {
		return unchanged
	}

	suggestion := c.symspell.LookupBest(token, c.config.MaxEditDistance)
	if suggestion == nil || suggestion.Distance == 0 {
		return unchanged
	}

	confidence := 1.0 - float64(suggestion.Distance)/float64(c.config.MaxEditDistance)

	return CorrectionResult{
		Original:     token,
		Corrected:    suggestion.Term,
		Distance:     suggestion.Distance,
		WasCorrected: true,
		Confidence:   confidence,
	}
}

// LookupSuggestions returns all suggestions for a token.
func (c *Corrector) LookupSuggestions(token string, maxResults int) []Suggestion {
	if c == nil || c.symspell == nil {
		return nil
	}

	suggestions := c.symspell.Lookup(token, c.config.MaxEditDistance)
	if maxResults > 0 && len(suggestions) > maxResults {
		return suggestions[:maxResults]
	}
	return suggestions
}

// Stats returns dictionary statistics.
func (c *Corrector) Stats() DictionaryStats {
	if c == nil || c.symspell == nil {
		return DictionaryStats{}
	}
	return c.symspell.Stats()
}

func containsDigit(token string) bool {
	for _, r := range token {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
