package engine

import "strconv"

// VariableBank is the fixed bank of temporary string slots spec.md §3
// describes. An unset slot is distinct from one holding the empty
// string, so it is modeled as *string rather than string.
type VariableBank struct {
	slots []*string
}

// NewVariableBank allocates a bank with n slots, all unset.
func NewVariableBank(n int) *VariableBank {
	return &VariableBank{slots: make([]*string, n)}
}

// ParseVariableIndex parses the "_N" argument syntax of spec.md §4.8.
func ParseVariableIndex(arg string, count int) (int, error) {
	if len(arg) < 2 || arg[0] != '_' {
		return 0, errf(ErrCommand, "bad variable reference %q", arg)
	}
	n, err := strconv.Atoi(arg[1:])
	if err != nil || n < 0 || n >= count {
		return 0, errf(ErrCommand, "variable index out of range: %q", arg)
	}
	return n, nil
}

// Get returns the slot's value and whether it is set.
func (b *VariableBank) Get(n int) (string, bool) {
	if b.slots[n] == nil {
		return "", false
	}
	return *b.slots[n], true
}

// Set assigns v to slot n, replacing any prior value.
func (b *VariableBank) Set(n int, v string) {
	b.slots[n] = &v
}

// Inc implements spec.md §4.8 "inc": if the slot is set and numeric,
// replace with value+1; if set but non-numeric, replace with "1"; if
// unset, set to "1". Integral results render without a fractional part.
func (b *VariableBank) Inc(n int) {
	cur, ok := b.Get(n)
	if !ok {
		b.Set(n, "1")
		return
	}
	v, isNum := parseNumericRaw(cur)
	if !isNum {
		b.Set(n, "1")
		return
	}
	b.Set(n, formatNumber(v+1))
}
