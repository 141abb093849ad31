// Package dataset loads the publications CSV and searches it by title.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ytgebes/biospace/pkg/domain"
)

// Table is an immutable, ordered collection of publications
type Table struct {
	columns []string
	records []domain.Publication
}

// Load reads a CSV file into a Table. Title and Link columns are always required,
// additional required columns may be passed by the caller.
func Load(path string, required ...string) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.Fail(domain.KindNotFound, fmt.Sprintf("dataset file %s not found", path), err)
		}
		return nil, domain.Fail(domain.KindSchema, fmt.Sprintf("can't open dataset %s", path), err)
	}
	defer f.Close()

	return Read(f, required...)
}

// Read parses CSV data into a Table
func Read(r io.Reader, required ...string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are padded below

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.Fail(domain.KindSchema, "dataset is empty", nil)
	}
	if err != nil {
		return nil, domain.Fail(domain.KindSchema, "can't read dataset header", err)
	}

	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		columns[i] = name
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	for _, col := range append([]string{domain.ColumnTitle, domain.ColumnLink}, required...) {
		if _, ok := index[col]; !ok {
			return nil, domain.Fail(domain.KindSchema, fmt.Sprintf("dataset must contain %q column, got %v", col, columns), nil)
		}
	}

	t := &Table{columns: columns}
	titleIdx, linkIdx := index[domain.ColumnTitle], index[domain.ColumnLink]
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.Fail(domain.KindSchema, fmt.Sprintf("malformed dataset row %d", line), err)
		}

		rec := domain.Publication{
			Index: len(t.records),
			Title: field(row, titleIdx),
			Link:  strings.TrimSpace(field(row, linkIdx)),
		}
		for i, col := range columns {
			if i == titleIdx || i == linkIdx {
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string, len(columns)-2)
			}
			rec.Extra[col] = field(row, i)
		}
		t.records = append(t.records, rec)
	}

	return t, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// Columns returns the header in file order
func (t *Table) Columns() []string {
	res := make([]string, len(t.columns))
	copy(res, t.columns)
	return res
}

// Len returns the number of records
func (t *Table) Len() int {
	return len(t.records)
}

// Get returns the record at row index i
func (t *Table) Get(i int) (domain.Publication, bool) {
	if i < 0 || i >= len(t.records) {
		return domain.Publication{}, false
	}
	return t.records[i], true
}

// Search returns records whose title contains query, ignoring case, in table order.
// A blank query returns nothing. limit <= 0 means no limit.
func (t *Table) Search(query string, limit int) []domain.Publication {
	if strings.TrimSpace(query) == "" {
		return []domain.Publication{}
	}
	q := strings.ToLower(query)

	res := []domain.Publication{}
	for _, rec := range t.records {
		if rec.Title == "" || !strings.Contains(strings.ToLower(rec.Title), q) {
			continue
		}
		res = append(res, rec)
		if limit > 0 && len(res) >= limit {
			break
		}
	}
	return res
}

// Loader memoizes loaded tables per path for the process lifetime
type Loader struct {
	required []string

	mu     sync.Mutex
	tables map[string]*Table
}

// NewLoader makes a Loader requiring the given extra columns
func NewLoader(required ...string) *Loader {
	return &Loader{required: required, tables: map[string]*Table{}}
}

// Load returns the cached table for path, reading the file on first use only
func (l *Loader) Load(path string) (*Table, error) {
	key := filepath.Clean(path)

	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.tables[key]; ok {
		return t, nil
	}

	t, err := Load(key, l.required...)
	if err != nil {
		return nil, err
	}
	l.tables[key] = t
	return t, nil
}
