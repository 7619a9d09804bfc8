package importer

import "strings"

// Table is the abstracted tabular import source: ordered rows of named
// cells. The Excel reader produces one, tests build them directly.
type Table struct {
	Columns []string
	Rows    []Row
}

func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Row maps column names to cell values. A column missing from the map is an
// empty cell.
type Row map[string]string

// Has distinguishes "present with a value" from absent or blank.
func (r Row) Has(column string) bool {
	v, ok := r[column]
	return ok && strings.TrimSpace(v) != ""
}

func (r Row) Get(column string) string {
	return r[column]
}
