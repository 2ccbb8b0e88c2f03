package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// AbbrevRules handles job title abbreviation expansion
type AbbrevRules struct {
	rules []abbrevRule
}

type abbrevRule struct {
	re          *regexp.Regexp
	replacement string
}

// NewAbbrevRules creates abbreviation rules covering the short forms that
// show up in client-supplied titles
func NewAbbrevRules() *AbbrevRules {
	rules := map[string]string{
		`\bsr\b`:    "senior",
		`\bsnr\b`:   "senior",
		`\bjr\b`:    "junior",
		`\bjnr\b`:   "junior",
		`\beng\b`:   "engineer",
		`\bengr\b`:  "engineer",
		`\bmgr\b`:   "manager",
		`\bmgmt\b`:  "management",
		`\bdir\b`:   "director",
		`\bsupt\b`:  "superintendent",
		`\bsupv\b`:  "supervisor",
		`\bcoord\b`: "coordinator",
		`\btech\b`:  "technician",
		`\bspec\b`:  "specialist",
		`\basst\b`:  "assistant",
		`\bassoc\b`: "associate",
		`\badmin\b`: "administrator",
		`\bpm\b`:    "project manager",
		`\bhse\b`:   "health safety environment",
		`\bqa\b`:    "quality assurance",
		`\bqc\b`:    "quality control",
	}

	ar := &AbbrevRules{}
	for pattern, replacement := range rules {
		ar.rules = append(ar.rules, abbrevRule{
			re:          regexp.MustCompile(pattern),
			replacement: replacement,
		})
	}
	return ar
}

// Expand applies abbreviation rules to already-lowercased text
func (ar *AbbrevRules) Expand(text string) string {
	result := text
	for _, rule := range ar.rules {
		result = rule.re.ReplaceAllString(result, rule.replacement)
	}
	return result
}

var defaultRules = NewAbbrevRules()

// CleanTitle normalizes a job title for comparison: trim, lowercase, strip
// punctuation, collapse whitespace. This is the minimal form every reference
// row and query passes through before any matching.
func CleanTitle(raw string) string {
	if raw == "" {
		return ""
	}

	s := strings.ToLower(strings.TrimSpace(raw))

	// Replace punctuation with spaces, keep letters/digits intact
	b := strings.Builder{}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// CanonicalTitle goes one step further than CleanTitle and expands common
// abbreviations, so "Sr Drilling Eng" and "Senior Drilling Engineer" compare
// equal. Used by the scorers, not by the exact-match check.
func CanonicalTitle(raw string) string {
	s := CleanTitle(raw)
	if s == "" {
		return ""
	}
	s = defaultRules.Expand(s)
	return strings.Join(strings.Fields(s), " ")
}

// Tokens splits a cleaned title into its word tokens
func Tokens(clean string) []string {
	return strings.Fields(clean)
}

// SortedTokens returns the title's tokens in lexicographic order joined by
// single spaces. Comparing sorted-token forms makes scoring insensitive to
// word order ("engineer drilling senior" vs "senior drilling engineer").
func SortedTokens(clean string) string {
	tokens := Tokens(clean)
	if len(tokens) < 2 {
		return clean
	}
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	for i := 0; i < len(sorted)-1; i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j] < sorted[i] {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	return strings.Join(sorted, " ")
}

// IsBlank checks if a title is effectively blank after normalization
func IsBlank(title string) bool {
	return CleanTitle(title) == ""
}

// TokenOverlap calculates overlap ratio between two token sets, as a
// fraction of the smaller set
func TokenOverlap(tokens1, tokens2 []string) float64 {
	if len(tokens1) == 0 && len(tokens2) == 0 {
		return 1.0
	}
	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0.0
	}

	set1 := make(map[string]bool)
	for _, token := range tokens1 {
		set1[token] = true
	}

	overlap := 0
	for _, token := range tokens2 {
		if set1[token] {
			overlap++
		}
	}

	minLen := len(tokens1)
	if len(tokens2) < minLen {
		minLen = len(tokens2)
	}

	return float64(overlap) / float64(minLen)
}
