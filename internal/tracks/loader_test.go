package tracks

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/hr-diagram/internal/model"
)

func TestFileNames(t *testing.T) {
	names := FileNames()
	expected := []string{"filtered_df_0.008.csv", "filtered_df_0.019.csv"}

	if len(names) != len(expected) {
		t.Fatalf("Expected %d file names, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("File name %d: expected %s, got %s", i, expected[i], names[i])
		}
	}
}

func TestDirLoader_LoadTestdata(t *testing.T) {
	loader := NewDirLoader("testdata")

	table, err := loader.Load(FileNameFor(0.008))
	if err != nil {
		t.Fatalf("Failed to load table: %v", err)
	}

	for _, col := range model.RequiredColumns {
		if !table.HasColumn(col) {
			t.Errorf("Expected column %s in %v", col, table.Columns)
		}
	}
	if len(table.Rows) != 9 {
		t.Errorf("Expected 9 rows, got %d", len(table.Rows))
	}

	groups, skipped, err := model.GroupByMass(table)
	if err != nil {
		t.Fatalf("GroupByMass failed: %v", err)
	}
	if len(groups) != 3 || skipped != 0 {
		t.Errorf("Expected 3 groups and no skipped rows, got %d groups, %d skipped", len(groups), skipped)
	}
}

func TestDirLoader_MissingFile(t *testing.T) {
	loader := NewDirLoader(t.TempDir())

	_, err := loader.Load("filtered_df_0.019.csv")
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestNewDirLoader_DefaultDir(t *testing.T) {
	if NewDirLoader("").Dir != "." {
		t.Error("Empty directory should default to the working directory")
	}
}

func TestReadTable_HeaderVariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		columns []string
	}{
		{
			name:    "escaped quotes",
			input:   "mass,\"\"\"Log Teff\"\"\",\"\"\"Log L\"\"\"\n1.0,3.7,0.0\n",
			columns: []string{"mass", `"Log Teff"`, `"Log L"`},
		},
		{
			name:    "plain quoted",
			input:   "mass,\"Log Teff\",\"Log L\"\n1.0,3.7,0.0\n",
			columns: []string{"mass", "Log Teff", "Log L"},
		},
		{
			name:    "byte order mark",
			input:   "\ufeffmass,age,x\n1,2,3\n",
			columns: []string{"mass", "age", "x"},
		},
		{
			name:    "spaces kept",
			input:   " mass,age , x\n1,2,3\n",
			columns: []string{" mass", "age ", " x"},
		},
	}

	for _, test := range tests {
		table, err := ReadTable(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if len(table.Columns) != len(test.columns) {
			t.Errorf("%s: expected columns %q, got %q", test.name, test.columns, table.Columns)
			continue
		}
		for i := range test.columns {
			if table.Columns[i] != test.columns[i] {
				t.Errorf("%s: column %d: expected %q, got %q", test.name, i, test.columns[i], table.Columns[i])
			}
		}
	}
}

func TestReadTable_PaddedHeaderIsMissing(t *testing.T) {
	input := " mass,\"\"\"Log Teff\"\"\",\"\"\"Log L\"\"\"\n1.0, 3.7, 0.0\n"

	table, err := ReadTable(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	missing := table.MissingColumns(model.RequiredColumns...)
	if len(missing) != 1 || missing[0] != model.ColumnMass {
		t.Errorf("Expected only %q missing, got %q", model.ColumnMass, missing)
	}
}

func TestReadTable_Empty(t *testing.T) {
	if _, err := ReadTable(strings.NewReader("")); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestDirLoader_ReadsFreshEachTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.csv")
	if err := os.WriteFile(path, []byte("mass\n1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewDirLoader(dir)
	first, err := loader.Load("t.csv")
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("mass\n1\n2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	second, err := loader.Load("t.csv")
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Rows) != 1 || len(second.Rows) != 2 {
		t.Errorf("Expected 1 then 2 rows, got %d then %d", len(first.Rows), len(second.Rows))
	}
}
