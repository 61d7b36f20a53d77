package ui

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
)

var (
	ErrNoSelection       = errors.New("no row selected")
	ErrMultipleSelection = errors.New("more than one row selected")
)

// Row is one displayed record. Values holds the raw text of each field,
// keyed by field name, so an update form can start from the current row.
type Row struct {
	ID     int64
	Cells  []string
	Values map[string]string
}

// Table is a list of rows with a multi-row selection.
type Table struct {
	Columns  []string
	rows     []Row
	selected map[int64]bool
}

func NewTable(columns ...string) *Table {
	return &Table{Columns: columns, selected: make(map[int64]bool)}
}

// SetRows replaces the contents. Selected ids that no longer exist are dropped.
func (t *Table) SetRows(rows []Row) {
	t.rows = rows
	present := make(map[int64]bool, len(rows))
	for _, r := range rows {
		present[r.ID] = true
	}
	for id := range t.selected {
		if !present[id] {
			delete(t.selected, id)
		}
	}
}

func (t *Table) Rows() []Row { return t.rows }

// Select adds ids to the selection. Unknown ids are rejected and leave the
// selection as it was.
func (t *Table) Select(ids ...int64) error {
	for _, id := range ids {
		if _, ok := t.find(id); !ok {
			return fmt.Errorf("no row with id %d", id)
		}
	}
	for _, id := range ids {
		t.selected[id] = true
	}
	return nil
}

func (t *Table) ClearSelection() {
	t.selected = make(map[int64]bool)
}

// Selected returns the single selected row.
func (t *Table) Selected() (Row, error) {
	switch len(t.selected) {
	case 0:
		return Row{}, ErrNoSelection
	case 1:
		for id := range t.selected {
			row, _ := t.find(id)
			return row, nil
		}
	}
	return Row{}, ErrMultipleSelection
}

// SelectedIDs returns the selection in ascending order.
func (t *Table) SelectedIDs() []int64 {
	ids := make([]int64, 0, len(t.selected))
	for id := range t.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (t *Table) find(id int64) (Row, bool) {
	for _, r := range t.rows {
		if r.ID == id {
			return r, true
		}
	}
	return Row{}, false
}

// Render writes the table with aligned columns; selected rows are marked *.
func (t *Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, " \t%s\n", strings.Join(t.Columns, "\t"))
	for _, r := range t.rows {
		mark := " "
		if t.selected[r.ID] {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\n", mark, strings.Join(r.Cells, "\t"))
	}
	if len(t.rows) == 0 {
		fmt.Fprintln(tw, " \t(no rows)")
	}
	return tw.Flush()
}
