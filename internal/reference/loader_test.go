package reference

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `Client Job Title,Position Title,Grade,Country,Job Code
Senior Drilling Engineer,Drilling Engineer III,P5,United Kingdom,ENG-301
Drilling Engineer,Drilling Engineer II,P4,United Kingdom,ENG-201
Project Manager,Project Manager,PM2,United States,PMO-102
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp CSV: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)

	table, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("loaded %d rows, want 3", table.Len())
	}

	first := table.Rows()[0]
	if first.CleanTitle != "senior drilling engineer" {
		t.Errorf("CleanTitle = %q, want normalized title", first.CleanTitle)
	}
	if first.JobCode != "ENG-301" {
		t.Errorf("JobCode = %q, want ENG-301", first.JobCode)
	}
}

func TestLoadCSVHeaderWhitespace(t *testing.T) {
	csv := "Client Job Title , Position Title ,Grade,Country,Job Code\n" +
		"Welder,Welder I,L1,Canada,TRD-001\n"
	path := writeTempCSV(t, csv)

	table, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("loaded %d rows, want 1", table.Len())
	}
}

func TestLoadCSVMissingColumns(t *testing.T) {
	csv := "Client Job Title,Grade,Country\nEngineer,P1,India\n"
	path := writeTempCSV(t, csv)

	_, err := LoadCSV(path)
	if err == nil {
		t.Fatal("LoadCSV() should fail when required columns are missing")
	}
	if !strings.Contains(err.Error(), "Position Title") || !strings.Contains(err.Error(), "Job Code") {
		t.Errorf("error should name every missing column, got: %v", err)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("LoadCSV() should fail for a missing file")
	}
}

func TestLoadCSVURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	table, err := LoadCSVURL(server.URL)
	if err != nil {
		t.Fatalf("LoadCSVURL() error = %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("loaded %d rows, want 3", table.Len())
	}
}

func TestLoadCSVURLBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := LoadCSVURL(server.URL)
	if err == nil {
		t.Fatal("LoadCSVURL() should fail on non-200 status")
	}
}

func TestLoadDispatch(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)

	if _, err := Load(path); err != nil {
		t.Errorf("Load() should dispatch local CSV paths, got error: %v", err)
	}
	if _, err := Load(""); err == nil {
		t.Error("Load() should fail when no source is configured")
	}
}
