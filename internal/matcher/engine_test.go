package matcher

import (
	"errors"
	"testing"

	"github.com/kent-titlemap/internal/embeddings"
	"github.com/kent-titlemap/internal/reference"
)

func testTable() *reference.Table {
	return reference.NewTable([]reference.Row{
		{ClientJobTitle: "Senior Drilling Engineer", PositionTitle: "Drilling Engineer III", Grade: "P5", Country: "United Kingdom", JobCode: "ENG-301"},
		{ClientJobTitle: "Drilling Engineer", PositionTitle: "Drilling Engineer II", Grade: "P4", Country: "United Kingdom", JobCode: "ENG-201"},
		{ClientJobTitle: "Senior Process Engineer", PositionTitle: "Process Engineer III", Grade: "P5", Country: "Australia", JobCode: "ENG-311"},
		{ClientJobTitle: "Project Manager", PositionTitle: "Project Manager", Grade: "PM2", Country: "United States", JobCode: "PMO-102"},
		{ClientJobTitle: "Construction Superintendent", PositionTitle: "Construction Superintendent", Grade: "M3", Country: "United Arab Emirates", JobCode: "CON-520"},
		{ClientJobTitle: "HR Advisor", PositionTitle: "Human Resources Advisor", Grade: "A3", Country: "United Kingdom", JobCode: "HRM-110"},
	})
}

func rankers(t *testing.T) map[string]Ranker {
	t.Helper()
	return map[string]Ranker{
		"lexical":  NewLexicalRanker(),
		"semantic": NewSemanticRanker(embeddings.NewSimpleEmbedder(64)),
	}
}

func TestMatchExactScoresFull(t *testing.T) {
	for name, ranker := range rankers(t) {
		t.Run(name, func(t *testing.T) {
			engine := NewEngine(testTable(), ranker, DefaultTopK)

			// Case and whitespace insensitive
			result, err := engine.Match(Query{Title: "  senior DRILLING engineer "})
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}

			if !result.Exact {
				t.Fatal("expected an exact match")
			}
			if len(result.Matches) != 1 {
				t.Fatalf("got %d matches, want 1", len(result.Matches))
			}
			if result.Matches[0].Probability != 100 {
				t.Errorf("exact match probability = %v, want 100", result.Matches[0].Probability)
			}
			if result.Matches[0].ProbabilityLabel() != "100%" {
				t.Errorf("label = %q, want 100%%", result.Matches[0].ProbabilityLabel())
			}
			if result.Matches[0].Row.JobCode != "ENG-301" {
				t.Errorf("matched JobCode = %q, want ENG-301", result.Matches[0].Row.JobCode)
			}
		})
	}
}

func TestMatchFuzzyTopK(t *testing.T) {
	for name, ranker := range rankers(t) {
		t.Run(name, func(t *testing.T) {
			engine := NewEngine(testTable(), ranker, DefaultTopK)

			result, err := engine.Match(Query{Title: "Snr Drilling Enginer"})
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}

			if result.Exact {
				t.Fatal("typo query should not be an exact match")
			}
			if len(result.Matches) == 0 || len(result.Matches) > DefaultTopK {
				t.Fatalf("got %d matches, want 1..%d", len(result.Matches), DefaultTopK)
			}

			for i := 1; i < len(result.Matches); i++ {
				if result.Matches[i].Probability > result.Matches[i-1].Probability {
					t.Error("matches should be in descending probability order")
				}
			}
			for _, m := range result.Matches {
				if m.Probability < 0 || m.Probability > 100 {
					t.Errorf("probability %v outside [0,100]", m.Probability)
				}
			}
		})
	}
}

func TestMatchRespectsFilters(t *testing.T) {
	for name, ranker := range rankers(t) {
		t.Run(name, func(t *testing.T) {
			engine := NewEngine(testTable(), ranker, DefaultTopK)

			result, err := engine.Match(Query{Title: "engineer", Grade: "P5", Country: "Australia"})
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}

			for _, m := range result.Matches {
				if m.Row.Grade != "P5" {
					t.Errorf("match grade = %q, want P5", m.Row.Grade)
				}
				if m.Row.Country != "Australia" {
					t.Errorf("match country = %q, want Australia", m.Row.Country)
				}
			}
		})
	}
}

func TestMatchResultCountBoundedByFilteredRows(t *testing.T) {
	engine := NewEngine(testTable(), NewLexicalRanker(), DefaultTopK)

	// Only one row carries this grade/country pair
	result, err := engine.Match(Query{Title: "site manager", Grade: "M3", Country: "United Arab Emirates"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(result.Matches) != 1 {
		t.Errorf("got %d matches, want 1 (bounded by filtered rows)", len(result.Matches))
	}
}

func TestMatchEmptyQuery(t *testing.T) {
	engine := NewEngine(testTable(), NewLexicalRanker(), DefaultTopK)

	_, err := engine.Match(Query{Title: "   "})
	if !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("Match() error = %v, want ErrEmptyQuery", err)
	}
}

func TestMatchNoRowsAfterFilter(t *testing.T) {
	engine := NewEngine(testTable(), NewLexicalRanker(), DefaultTopK)

	_, err := engine.Match(Query{Title: "engineer", Grade: "EM3", Country: "Brunei"})
	if !errors.Is(err, ErrNoMatches) {
		t.Errorf("Match() error = %v, want ErrNoMatches", err)
	}
}

func TestMatchExactWithinFilter(t *testing.T) {
	engine := NewEngine(testTable(), NewLexicalRanker(), DefaultTopK)

	// Exact title exists but outside the selected country, so the exact
	// short-circuit must not fire
	result, err := engine.Match(Query{Title: "Senior Drilling Engineer", Country: "Australia"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if result.Exact {
		t.Error("exact match outside the filter should not short-circuit")
	}
}

func TestMatchCorrectsQueryTypos(t *testing.T) {
	engine := NewEngine(testTable(), NewLexicalRanker(), DefaultTopK)

	// "enginer" is corrected against the title vocabulary before ranking
	result, err := engine.Match(Query{Title: "senior drilling enginer"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if result.Exact {
		t.Error("corrected query must not count as an exact match")
	}
	if result.Matches[0].Row.ClientJobTitle != "Senior Drilling Engineer" {
		t.Errorf("best match = %q, want Senior Drilling Engineer", result.Matches[0].Row.ClientJobTitle)
	}
	if result.Matches[0].Probability < 99 {
		t.Errorf("corrected query probability = %v, want >= 99", result.Matches[0].Probability)
	}
}

func TestProbabilityLabel(t *testing.T) {
	tests := []struct {
		probability float64
		want        string
	}{
		{100, "100%"},
		{87.35, "87.3%"},
		{0, "0.0%"},
		// near-perfect fuzzy scores must not collide with the exact label
		{99.97, "99.9%"},
		{99.95, "99.9%"},
		{99.90, "99.9%"},
	}

	for _, tt := range tests {
		m := Match{Probability: tt.probability}
		if got := m.ProbabilityLabel(); got != tt.want {
			t.Errorf("ProbabilityLabel(%v) = %q, want %q", tt.probability, got, tt.want)
		}
	}
}
