// Package sources loads the three external tabular exports into typed records.
//
// Each loader maps the vendor's column headers to canonical field names. A
// missing column resolves to an empty field, never an error: the derivation
// fallback chains downstream are the defined handling for absent data. A
// structurally malformed row, by contrast, aborts the whole run, because the
// emitted report totals must reconcile exactly against the source files.
package sources

import (
	"encoding/csv"
	"os"

	"github.com/agentstation/giftledger/pkg/errors"
)

// table is a parsed tabular source with header-keyed column access.
type table struct {
	path    string
	headers []string
	index   map[string]int
	rows    [][]string
}

// readTable parses a header-keyed CSV file. Every data row must have the same
// field count as the header row; encoding/csv enforces that and the resulting
// error is treated as fatal.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	if len(records) == 0 {
		return nil, errors.NewParseError("csv", path, "missing header row", errors.ErrMalformedSource)
	}

	return newTable(path, records), nil
}

// newTable builds a table from already-parsed records, the first of which is
// the header row.
func newTable(path string, records [][]string) *table {
	t := &table{
		path:    path,
		headers: records[0],
		index:   make(map[string]int, len(records[0])),
		rows:    records[1:],
	}
	for i, h := range t.headers {
		// First occurrence wins for duplicate headers.
		if _, ok := t.index[h]; !ok {
			t.index[h] = i
		}
	}
	return t
}

// field returns the named column's value in the given row, or the empty
// string when the source does not carry that column.
func (t *table) field(row []string, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
