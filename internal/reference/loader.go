package reference

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// RequiredColumns are the headers every reference dataset must carry
var RequiredColumns = []string{
	"Client Job Title",
	"Position Title",
	"Grade",
	"Country",
	"Job Code",
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Load reads the reference table from a local CSV file, a local Excel
// workbook, or a remote CSV URL, depending on the source string
func Load(source string) (*Table, error) {
	if source == "" {
		return nil, fmt.Errorf("no data source configured")
	}

	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return LoadCSVURL(source)
	case strings.HasSuffix(strings.ToLower(source), ".xlsx"), strings.HasSuffix(strings.ToLower(source), ".xls"):
		return LoadExcel(source)
	default:
		return LoadCSV(source)
	}
}

// LoadCSV reads the reference table from a local CSV file
func LoadCSV(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", filename, err)
	}
	defer file.Close()

	table, err := parseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}

	log.Info().Str("source", filename).Int("rows", table.Len()).Msg("reference table loaded")
	return table, nil
}

// LoadCSVURL reads the reference table from a remote CSV URL, such as a
// published Google Sheets export
func LoadCSVURL(url string) (*Table, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("data URL returned status %d", resp.StatusCode)
	}

	table, err := parseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to load remote dataset: %w", err)
	}

	log.Info().Str("source", url).Int("rows", table.Len()).Msg("remote reference table loaded")
	return table, nil
}

// LoadExcel reads the reference table from the first sheet of an Excel
// workbook
func LoadExcel(filename string) (*Table, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", filename)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var refRows []Row
	for _, record := range rows[1:] {
		refRows = append(refRows, rowFromRecord(record, columns))
	}

	table := NewTable(refRows)
	log.Info().Str("source", filename).Str("sheet", sheets[0]).Int("rows", table.Len()).Msg("workbook reference table loaded")
	return table, nil
}

func parseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		rows = append(rows, rowFromRecord(record, columns))
	}

	return NewTable(rows), nil
}

// mapColumns resolves header names to column indexes, trimming whitespace
// around header cells, and reports every missing required column at once
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, required := range RequiredColumns {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return columns, nil
}

func rowFromRecord(record []string, columns map[string]int) Row {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	return Row{
		ClientJobTitle: field("Client Job Title"),
		PositionTitle:  field("Position Title"),
		Grade:          field("Grade"),
		Country:        field("Country"),
		JobCode:        field("Job Code"),
	}
}
