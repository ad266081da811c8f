// Package table provides the columnar structure the column anonymizer works
// over: ordered named columns of arbitrary values with a defined text
// coercion, plus CSV read/write for the CLI.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Table is a set of equal-length named columns. Column order is the order
// of first assignment.
type Table struct {
	names   []string
	columns map[string][]any
}

// New returns an empty table.
func New() *Table {
	return &Table{columns: map[string][]any{}}
}

// SetColumn assigns a column, creating it if absent or overwriting if
// present. The first column fixes the table length; later columns must
// match it.
func (t *Table) SetColumn(name string, values []any) error {
	if _, exists := t.columns[name]; !exists {
		if len(t.names) > 0 && len(values) != t.Len() {
			return fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), t.Len())
		}
		t.names = append(t.names, name)
	} else if len(values) != t.Len() {
		return fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), t.Len())
	}
	t.columns[name] = values
	return nil
}

// Column returns the values of a named column.
func (t *Table) Column(name string) ([]any, error) {
	vals, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}
	return vals, nil
}

// Columns returns column names in assignment order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.columns[t.names[0]])
}

// Coerce renders a cell value as text. Nil cells become the placeholder
// "None"; strings pass through; everything else goes through fmt.
func Coerce(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// ReadCSV loads a table from CSV with a header row. All cells are strings.
func ReadCSV(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: missing header row")
	}
	t := New()
	header := records[0]
	for i, name := range header {
		col := make([]any, 0, len(records)-1)
		for _, row := range records[1:] {
			if i < len(row) {
				col = append(col, row[i])
			} else {
				col = append(col, "")
			}
		}
		if err := t.SetColumn(name, col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// WriteCSV writes the table as CSV with a header row, coercing cells to text.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for row := 0; row < t.Len(); row++ {
		record := make([]string, len(t.names))
		for i, name := range t.names {
			record[i] = Coerce(t.columns[name][row])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
