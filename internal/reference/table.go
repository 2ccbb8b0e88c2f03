package reference

import (
	"sort"

	"github.com/kent-titlemap/internal/normalize"
)

// Row represents one standardized position in the reference table
type Row struct {
	ClientJobTitle string
	PositionTitle  string
	Grade          string
	Country        string
	JobCode        string
	CleanTitle     string
}

// Table holds the in-memory reference dataset. Rows are immutable once
// loaded; Filter returns views over the same backing rows.
type Table struct {
	rows []Row
}

// NewTable builds a table from loaded rows, computing CleanTitle and
// dropping rows whose client title is blank after normalization
func NewTable(rows []Row) *Table {
	kept := make([]Row, 0, len(rows))
	for _, row := range rows {
		clean := normalize.CleanTitle(row.ClientJobTitle)
		if clean == "" {
			continue
		}
		row.CleanTitle = clean
		kept = append(kept, row)
	}
	return &Table{rows: kept}
}

// Rows returns all rows in load order
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Filter restricts the table to rows matching the given grade and country.
// An empty string means "All" for that dimension; both filters are
// conjunctive.
func (t *Table) Filter(grade, country string) []Row {
	if grade == "" && country == "" {
		return t.rows
	}

	var filtered []Row
	for _, row := range t.rows {
		if grade != "" && row.Grade != grade {
			continue
		}
		if country != "" && row.Country != country {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// Grades returns the sorted unique grade values present in the table
func (t *Table) Grades() []string {
	return t.uniqueValues(func(r Row) string { return r.Grade })
}

// Countries returns the sorted unique country values present in the table
func (t *Table) Countries() []string {
	return t.uniqueValues(func(r Row) string { return r.Country })
}

// Titles returns every client job title in load order
func (t *Table) Titles() []string {
	titles := make([]string, len(t.rows))
	for i, row := range t.rows {
		titles[i] = row.ClientJobTitle
	}
	return titles
}

func (t *Table) uniqueValues(field func(Row) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, row := range t.rows {
		v := field(row)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
