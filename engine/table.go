package engine

// Cell holds a mutable byte string. The zero value is the empty-cell
// sentinel spec.md §3 requires for freshly grown slots.
type Cell struct {
	content string
}

// Content returns the cell's current string.
func (c *Cell) Content() string { return c.content }

// Row is an ordered, growable sequence of cells. Growth always happens
// in cfg.CellsStep increments (spec.md §4.2); len(cells) tracks logical
// length, cap(cells) tracks the allocated capacity.
type Row struct {
	cells []Cell
}

// NumCells reports the row's logical cell count.
func (r *Row) NumCells() int { return len(r.cells) }

func (r *Row) growBy(step, n int) {
	need := len(r.cells) + n
	if need <= cap(r.cells) {
		return
	}
	newCap := cap(r.cells)
	for newCap < need {
		if step <= 0 {
			step = 1
		}
		newCap += step
	}
	grown := make([]Cell, len(r.cells), newCap)
	copy(grown, r.cells)
	r.cells = grown
}

func (r *Row) appendEmptyCells(step, n int) {
	r.growBy(step, n)
	r.cells = r.cells[:len(r.cells)+n]
}

func (r *Row) insertEmptyCellAt(step int, j int) {
	r.growBy(step, 1)
	r.cells = r.cells[:len(r.cells)+1]
	copy(r.cells[j+1:], r.cells[j:len(r.cells)-1])
	r.cells[j] = Cell{}
}

func (r *Row) deleteCellRange(j1, j2 int) {
	// j1..j2 inclusive
	copy(r.cells[j1:], r.cells[j2+1:])
	r.cells = r.cells[:len(r.cells)-(j2-j1+1)]
}

// Table is an ordered, growable sequence of equal-length rows, plus the
// single output delimiter byte used on save (spec.md §3).
type Table struct {
	rows  []Row
	cfg   Config
	delim byte
}

// NewTable builds an empty table configured with cfg, writing output
// with the given canonical delimiter.
func NewTable(cfg Config, delim byte) *Table {
	return &Table{cfg: cfg, delim: delim}
}

// Delimiter returns the canonical output delimiter byte.
func (t *Table) Delimiter() byte { return t.delim }

// NumRows reports the table's logical row count.
func (t *Table) NumRows() int { return len(t.rows) }

// NumCols reports the logical cell count of row 0, or 0 if the table
// has no rows. Per spec.md §3 invariant (a), every row has the same
// cell count once the table has been normalized/mutated consistently.
func (t *Table) NumCols() int {
	if len(t.rows) == 0 {
		return 0
	}
	return t.rows[0].NumCells()
}

func (t *Table) growRowsBy(n int) {
	need := len(t.rows) + n
	if need <= cap(t.rows) {
		return
	}
	newCap := cap(t.rows)
	step := t.cfg.RowsStep
	if step <= 0 {
		step = 1
	}
	for newCap < need {
		newCap += step
	}
	grown := make([]Row, len(t.rows), newCap)
	copy(grown, t.rows)
	t.rows = grown
}

// AppendEmptyRow appends one row with NumCols() empty cells (or a
// single empty cell if the table currently has zero columns and zero
// rows — this is how spec.md §4.9 wants "arow on an empty table" to
// behave: it produces a one-cell row).
func (t *Table) AppendEmptyRow() {
	ncols := t.NumCols()
	if len(t.rows) == 0 {
		ncols = 1
	}
	t.insertRowAt(len(t.rows), ncols)
}

// InsertRowAt inserts an empty row at index i (existing rows at i.. are
// shifted down), with the table's current column count.
func (t *Table) InsertRowAt(i int) {
	t.insertRowAt(i, t.NumCols())
}

// appendRawRow appends a row with exactly ncols cells, independent of
// any other row's width. Used only by the loader (engine/io.go), which
// must be able to build rows of varying width before Normalize runs.
func (t *Table) appendRawRow(ncols int) int {
	t.insertRowAt(len(t.rows), ncols)
	return len(t.rows) - 1
}

func (t *Table) insertRowAt(i, ncols int) {
	t.growRowsBy(1)
	t.rows = t.rows[:len(t.rows)+1]
	copy(t.rows[i+1:], t.rows[i:len(t.rows)-1])
	var row Row
	if ncols > 0 {
		row.appendEmptyCells(t.cfg.CellsStep, ncols)
	}
	t.rows[i] = row
}

// DeleteRowAt deletes row i; rows below shift up.
func (t *Table) DeleteRowAt(i int) {
	copy(t.rows[i:], t.rows[i+1:])
	t.rows = t.rows[:len(t.rows)-1]
}

// AppendCol appends one empty-cell column to every row.
func (t *Table) AppendCol() {
	t.InsertColAt(t.NumCols())
}

// InsertColAt inserts one empty-cell column at j in every row. Per
// spec.md §4.6, structural column operators touch every row so
// rectangularity is preserved.
func (t *Table) InsertColAt(j int) {
	for i := range t.rows {
		t.rows[i].insertEmptyCellAt(t.cfg.CellsStep, j)
	}
}

// DeleteColRange deletes columns j1..j2 inclusive from every row.
func (t *Table) DeleteColRange(j1, j2 int) {
	for i := range t.rows {
		t.rows[i].deleteCellRange(j1, j2)
	}
}

// SetCell assigns s (copied) to the cell at (r,c).
func (t *Table) SetCell(r, c int, s string) {
	t.rows[r].cells[c].content = s
}

// GetCell returns the content of the cell at (r,c).
func (t *Table) GetCell(r, c int) string {
	return t.rows[r].cells[c].content
}

// Normalize is the one-shot post-load pass of spec.md §6 "Normalization
// on load": pad every row with empty cells to the longest row's length,
// then trim fully-empty trailing columns (stopping at the first column,
// from the right, that has any non-empty cell; column 0 is never
// trimmed).
func (t *Table) Normalize() {
	if len(t.rows) == 0 {
		return
	}

	maxCols := 0
	for i := range t.rows {
		if n := t.rows[i].NumCells(); n > maxCols {
			maxCols = n
		}
	}
	for i := range t.rows {
		if short := maxCols - t.rows[i].NumCells(); short > 0 {
			t.rows[i].appendEmptyCells(t.cfg.CellsStep, short)
		}
	}

	trimTo := maxCols
	for trimTo > 1 {
		col := trimTo - 1
		anyNonEmpty := false
		for i := range t.rows {
			if t.rows[i].cells[col].content != "" {
				anyNonEmpty = true
				break
			}
		}
		if anyNonEmpty {
			break
		}
		trimTo--
	}
	if trimTo < maxCols {
		t.DeleteColRange(trimTo, maxCols-1)
	}
}
