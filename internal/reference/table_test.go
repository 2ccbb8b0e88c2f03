package reference

import (
	"reflect"
	"testing"
)

func sampleRows() []Row {
	return []Row{
		{ClientJobTitle: "Senior Drilling Engineer", PositionTitle: "Drilling Engineer III", Grade: "P5", Country: "United Kingdom", JobCode: "ENG-301"},
		{ClientJobTitle: "Drilling Engineer", PositionTitle: "Drilling Engineer II", Grade: "P4", Country: "United Kingdom", JobCode: "ENG-201"},
		{ClientJobTitle: "Project Manager", PositionTitle: "Project Manager", Grade: "PM2", Country: "United States", JobCode: "PMO-102"},
		{ClientJobTitle: "Lead Process Engineer", PositionTitle: "Process Engineer IV", Grade: "P5", Country: "Australia", JobCode: "ENG-410"},
		{ClientJobTitle: "   ", PositionTitle: "Orphan", Grade: "P1", Country: "Canada", JobCode: "X-1"},
	}
}

func TestNewTableDropsBlankTitles(t *testing.T) {
	table := NewTable(sampleRows())

	if table.Len() != 4 {
		t.Fatalf("expected 4 rows after dropping blank titles, got %d", table.Len())
	}

	for _, row := range table.Rows() {
		if row.CleanTitle == "" {
			t.Errorf("row %q has empty CleanTitle", row.ClientJobTitle)
		}
	}
}

func TestTableFilter(t *testing.T) {
	table := NewTable(sampleRows())

	tests := []struct {
		name    string
		grade   string
		country string
		want    int
	}{
		{name: "no filters returns all", grade: "", country: "", want: 4},
		{name: "grade only", grade: "P5", country: "", want: 2},
		{name: "country only", grade: "", country: "United Kingdom", want: 2},
		{name: "grade and country conjunctive", grade: "P5", country: "United Kingdom", want: 1},
		{name: "no rows match", grade: "EM3", country: "Brunei", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := table.Filter(tt.grade, tt.country)
			if len(filtered) != tt.want {
				t.Fatalf("Filter(%q, %q) returned %d rows, want %d", tt.grade, tt.country, len(filtered), tt.want)
			}

			// No row outside the selected categories may appear
			for _, row := range filtered {
				if tt.grade != "" && row.Grade != tt.grade {
					t.Errorf("row %q has grade %q, want %q", row.ClientJobTitle, row.Grade, tt.grade)
				}
				if tt.country != "" && row.Country != tt.country {
					t.Errorf("row %q has country %q, want %q", row.ClientJobTitle, row.Country, tt.country)
				}
			}
		})
	}
}

func TestTableUniqueValues(t *testing.T) {
	table := NewTable(sampleRows())

	wantGrades := []string{"P4", "P5", "PM2"}
	if got := table.Grades(); !reflect.DeepEqual(got, wantGrades) {
		t.Errorf("Grades() = %v, want %v", got, wantGrades)
	}

	wantCountries := []string{"Australia", "United Kingdom", "United States"}
	if got := table.Countries(); !reflect.DeepEqual(got, wantCountries) {
		t.Errorf("Countries() = %v, want %v", got, wantCountries)
	}
}

func TestTableTitles(t *testing.T) {
	table := NewTable(sampleRows())
	titles := table.Titles()

	if len(titles) != 4 {
		t.Fatalf("Titles() returned %d entries, want 4", len(titles))
	}
	if titles[0] != "Senior Drilling Engineer" {
		t.Errorf("Titles()[0] = %q, want load order preserved", titles[0])
	}
}
