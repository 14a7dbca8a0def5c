package engine

import (
	"strconv"
	"strings"
)

// Region is a rectangular selection: four 0-based indices, r1<=r2,
// c1<=c2 (spec.md §3).
type Region struct {
	R1, C1, R2, C2 int
}

// Selector is the stateful object of spec.md §4.5: it carries the
// current region (read by every non-selector command) and the saved
// region (written by [set], restored by [_]).
type Selector struct {
	Current Region
	Saved   Region
}

// NewSelector returns a selector with both regions at their initial
// value (0,0,0,0), per spec.md §4.5.
func NewSelector() *Selector {
	return &Selector{}
}

// Apply interprets the text inside a selector command's brackets
// (already stripped of '[' and ']') against t, updating sel.Current (or
// sel.Saved, for "set"; "_" copies sel.Saved back into sel.Current).
// warn, if non-nil, is invoked with a
// human-readable message when min/max find no numeric cell (spec.md
// §4.5/§7: a warning, not an error, that leaves the region unchanged).
func (sel *Selector) Apply(expr string, t *Table, warn func(string)) error {
	head, rest := splitFirstSpace(expr)

	if head == "find" {
		sel.find(t, rest)
		return nil
	}

	switch head {
	case "max":
		return sel.extremum(t, warn, false)
	case "min":
		return sel.extremum(t, warn, true)
	case "_,_":
		sel.Current = Region{0, 0, t.NumRows() - 1, t.NumCols() - 1}
		return nil
	case "-,-", "-,-,-,-":
		lr, lc := t.NumRows()-1, t.NumCols()-1
		sel.Current = Region{lr, lc, lr, lc}
		return nil
	case "_,-":
		lc := t.NumCols() - 1
		sel.Current = Region{0, lc, t.NumRows() - 1, lc}
		return nil
	case "-,_":
		lr := t.NumRows() - 1
		sel.Current = Region{lr, 0, lr, t.NumCols() - 1}
		return nil
	case "_":
		sel.Current = sel.Saved
		return nil
	case "set":
		sel.Saved = sel.Current
		return nil
	}

	parts := splitIgnoreEscapes(head, ',')
	switch len(parts) {
	case 2:
		return sel.select2p(t, parts)
	case 4:
		return sel.select4p(t, parts)
	default:
		return errf(ErrSelector, "malformed selector %q", "["+expr+"]")
	}
}

// coord is a parsed selector coordinate part: either a 1-based integer
// or one of the sentinels "_"/"-".
type coord struct {
	isInt bool
	value int
	text  string
}

func parseCoord(s string) coord {
	if s == "_" || s == "-" {
		return coord{text: s}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return coord{text: s}
	}
	return coord{isInt: true, value: int(n), text: s}
}

func (sel *Selector) select2p(t *Table, parts []string) error {
	a, b := parseCoord(parts[0]), parseCoord(parts[1])
	nrows, ncols := t.NumRows(), t.NumCols()

	switch {
	case a.isInt && b.isInt:
		if a.value < 1 || a.value > nrows || b.value < 1 || b.value > ncols {
			return errf(ErrSelector, "coordinate out of range in [%s,%s]", parts[0], parts[1])
		}
		r, c := a.value-1, b.value-1
		sel.Current = Region{r, c, r, c}
		return nil

	case a.isInt && !b.isInt:
		if a.value < 1 || a.value > nrows {
			return errf(ErrSelector, "row out of range in [%s,%s]", parts[0], parts[1])
		}
		r := a.value - 1
		switch b.text {
		case "_":
			sel.Current = Region{r, 0, r, ncols - 1}
			return nil
		case "-":
			sel.Current = Region{r, ncols - 1, r, ncols - 1}
			return nil
		}

	case !a.isInt && b.isInt:
		if b.value < 1 || b.value > ncols {
			return errf(ErrSelector, "column out of range in [%s,%s]", parts[0], parts[1])
		}
		c := b.value - 1
		switch a.text {
		case "_":
			sel.Current = Region{0, c, nrows - 1, c}
			return nil
		case "-":
			sel.Current = Region{nrows - 1, c, nrows - 1, c}
			return nil
		}
	}

	return errf(ErrSelector, "malformed selector [%s,%s]", parts[0], parts[1])
}

func (sel *Selector) select4p(t *Table, parts []string) error {
	cs := [4]coord{parseCoord(parts[0]), parseCoord(parts[1]), parseCoord(parts[2]), parseCoord(parts[3])}
	for _, c := range cs {
		if !c.isInt && c.text != "-" {
			// spec.md §4.5: "_" is not allowed in the 4-arg form
			return errf(ErrSelector, "malformed selector [%s]", strings.Join(parts, ","))
		}
	}

	// a '-' in position 1/2 is only allowed mirrored by '-' in 3/4
	if !cs[0].isInt && cs[2].isInt {
		return errf(ErrSelector, "mixed '-' form in [%s]", strings.Join(parts, ","))
	}
	if !cs[1].isInt && cs[3].isInt {
		return errf(ErrSelector, "mixed '-' form in [%s]", strings.Join(parts, ","))
	}

	nrows, ncols := t.NumRows(), t.NumCols()
	if cs[0].isInt && cs[2].isInt && cs[0].value > cs[2].value {
		return errf(ErrSelector, "R1 > R2 in [%s]", strings.Join(parts, ","))
	}
	if cs[1].isInt && cs[3].isInt && cs[1].value > cs[3].value {
		return errf(ErrSelector, "C1 > C2 in [%s]", strings.Join(parts, ","))
	}
	for _, c := range []coord{cs[0], cs[2]} {
		if c.isInt && (c.value < 1 || c.value > nrows) {
			return errf(ErrSelector, "row out of range in [%s]", strings.Join(parts, ","))
		}
	}
	for _, c := range []coord{cs[1], cs[3]} {
		if c.isInt && (c.value < 1 || c.value > ncols) {
			return errf(ErrSelector, "column out of range in [%s]", strings.Join(parts, ","))
		}
	}

	r1 := nrows - 1
	if cs[0].isInt {
		r1 = cs[0].value - 1
	}
	c1 := ncols - 1
	if cs[1].isInt {
		c1 = cs[1].value - 1
	}
	r2 := nrows - 1
	if cs[2].isInt {
		r2 = cs[2].value - 1
	}
	c2 := ncols - 1
	if cs[3].isInt {
		c2 = cs[3].value - 1
	}
	sel.Current = Region{r1, c1, r2, c2}
	return nil
}

func (sel *Selector) find(t *Table, needle string) {
	reg := sel.Current
	for i := reg.R1; i <= reg.R2 && i < t.NumRows(); i++ {
		for j := reg.C1; j <= reg.C2 && j < t.NumCols(); j++ {
			if strings.HasPrefix(t.GetCell(i, j), needle) {
				sel.Current = Region{i, j, i, j}
				return
			}
		}
	}
	// not found: region unchanged
}

func (sel *Selector) extremum(t *Table, warn func(string), wantMin bool) error {
	reg := sel.Current
	found := false
	var best float64
	var br, bc int

	for i := reg.R1; i <= reg.R2 && i < t.NumRows(); i++ {
		for j := reg.C1; j <= reg.C2 && j < t.NumCols(); j++ {
			raw := t.GetCell(i, j)
			v, ok := parseNumericCell(raw)
			if !ok {
				continue
			}
			if !found || (wantMin && v < best) || (!wantMin && v > best) {
				best = v
				br, bc = i, j
				found = true
			}
		}
	}

	if !found {
		name := "maximum"
		if wantMin {
			name = "minimum"
		}
		if warn != nil {
			warn("cannot find " + name + " in selection")
		}
		return nil
	}
	sel.Current = Region{br, bc, br, bc}
	return nil
}

// parseNumericCell implements spec.md §4.5's min/max numeric coercion:
// unwrap a single layer of matching "…"/'…' quoting, then parse as a
// real number.
func parseNumericCell(s string) (float64, bool) {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func splitFirstSpace(s string) (head, rest string) {
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// splitIgnoreEscapes splits s on every occurrence of d, quoting
// notwithstanding — spec.md §4.1's ignore_escapes mode, used for
// argument pairs (e.g. the comma inside "[R,C]") where quoted runs are
// not expected to occur.
func splitIgnoreEscapes(s string, d byte) []string {
	return splitOn(s, d, true)
}

// splitEscapeAware splits s on active occurrences of d only: a d byte
// inside a matched '...'/"..." run, or escaped by a preceding '\', is
// not a separator (spec.md §4.1, boundary B3).
func splitEscapeAware(s string, d byte) []string {
	return splitOn(s, d, false)
}

func splitOn(s string, d byte, ignoreEscapes bool) []string {
	n := countActive([]byte(s), d, ignoreEscapes)
	parts := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		f, _ := substringField([]byte(s), d, i, ignoreEscapes, false)
		parts = append(parts, f)
	}
	return parts
}
