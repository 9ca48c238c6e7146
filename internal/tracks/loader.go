package tracks

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/hr-diagram/internal/model"
)

// File naming
const (
	FilePrefix    = "filtered_df_"
	FileExtension = ".csv"
)

// Loader reads a named track table
type Loader interface {
	Load(name string) (*model.TrackTable, error)
}

// DirLoader reads track tables from a directory on disk
type DirLoader struct {
	Dir string
}

// NewDirLoader creates a loader rooted at dir ("" means the working directory)
func NewDirLoader(dir string) *DirLoader {
	if dir == "" {
		dir = "."
	}
	return &DirLoader{Dir: dir}
}

// FileNameFor returns the table file name for a metallicity
func FileNameFor(m model.Metallicity) string {
	return FilePrefix + m.String() + FileExtension
}

// FileNames returns the table file names for all metallicities in render order
func FileNames() []string {
	names := make([]string, 0, len(model.Metallicities))
	for _, m := range model.Metallicities {
		names = append(names, FileNameFor(m))
	}
	return names
}

// Load reads <Dir>/<name>. A missing file yields an error matching fs.ErrNotExist.
func (l *DirLoader) Load(name string) (*model.TrackTable, error) {
	path := filepath.Join(l.Dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track table %s: %w", path, err)
	}
	defer f.Close()

	table, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("read track table %s: %w", path, err)
	}
	return table, nil
}

// ReadTable parses CSV with a header row. Header cells are kept verbatim
// apart from a leading byte order mark.
func ReadTable(r io.Reader) (*model.TrackTable, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty table: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	table := &model.TrackTable{Columns: make([]string, len(header))}
	copy(table.Columns, header)
	table.Columns[0] = strings.TrimPrefix(table.Columns[0], "\ufeff")

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse row %d: %w", len(table.Rows)+2, err)
		}
		table.Rows = append(table.Rows, rec)
	}
	return table, nil
}
