package engine

// Config is the configuration record spec.md §9 asks for in place of the
// original's module-level constants. The zero value is not usable;
// callers should start from DefaultConfig().
type Config struct {
	// RowsStep is the number of row-slots allocated at a time when a
	// table's row capacity is exhausted.
	RowsStep int
	// CellsStep is the number of cell-slots allocated at a time when a
	// row's cell capacity is exhausted.
	CellsStep int
	// ContentStep is carried in the record (and can be overridden from
	// the YAML file), but the table does not read it: a cell's content
	// is held as a Go string, not in a buffer grown in ContentStep steps.
	ContentStep int
	// VariableCount is the number of temporary-variable slots (spec.md
	// §4.8 fixes this at 10, but it is kept configurable here since the
	// original exposed it as a preprocessor constant).
	VariableCount int
	// BlacklistedDelims lists bytes that may never appear in DELIMS.
	BlacklistedDelims string
}

// DefaultConfig returns the configuration spec.md §9 specifies.
func DefaultConfig() Config {
	return Config{
		RowsStep:          3,
		CellsStep:         3,
		ContentStep:       6,
		VariableCount:     10,
		BlacklistedDelims: "'\"\\",
	}
}
