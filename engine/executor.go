package engine

import "strings"

var structuralCommands = map[string]bool{
	"irow": true, "arow": true, "drow": true,
	"icol": true, "acol": true, "dcol": true,
}

var dataCommands = map[string]bool{
	"set": true, "clear": true, "swap": true,
	"sum": true, "avg": true, "count": true, "len": true,
}

var tempVarCommands = map[string]bool{
	"def": true, "use": true, "inc": true,
}

// Executor is the command-type dispatch loop of spec.md §4.9.
type Executor struct {
	Table    *Table
	Selector *Selector
	Vars     *VariableBank
	Config   Config

	// Warn receives the warning text for min/max "not found" (spec.md
	// §4.5/§7: stdout, not an error, selector unchanged).
	Warn func(string)
}

// NewExecutor builds an executor over t, with a fresh selector and
// variable bank sized per cfg.
func NewExecutor(t *Table, cfg Config) *Executor {
	return &Executor{
		Table:    t,
		Selector: NewSelector(),
		Vars:     NewVariableBank(cfg.VariableCount),
		Config:   cfg,
	}
}

// Run executes parsed commands in order, aborting at the first error
// (spec.md §4.9 / §7). The table is left exactly as it was at the point
// of failure — it is not re-normalized.
func (e *Executor) Run(commands []Command) error {
	for _, cmd := range commands {
		if err := e.step(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) step(cmd Command) error {
	if cmd.Function == "" {
		// Empty command (spec.md §8 boundary B2, e.g. a bare ";" in the
		// script) is a no-op, not an unknown command.
		return nil
	}

	if cmd.IsSelector() {
		inner := cmd.Function[1 : len(cmd.Function)-1]
		return e.Selector.Apply(inner, e.Table, e.Warn)
	}

	switch {
	case structuralCommands[cmd.Function]:
		return e.dispatchStructural(cmd)
	case dataCommands[cmd.Function]:
		if e.Table.NumRows() == 0 || e.Table.NumCols() == 0 {
			return nil
		}
		return e.dispatchData(cmd)
	case tempVarCommands[cmd.Function]:
		if e.Table.NumRows() == 0 || e.Table.NumCols() == 0 {
			return nil
		}
		return e.dispatchTempVar(cmd)
	default:
		return errf(ErrCommand, "unknown command %q", cmd.Function)
	}
}

func (e *Executor) dispatchStructural(cmd Command) error {
	reg := e.Selector.Current
	switch cmd.Function {
	case "irow":
		return OpInsertRow(e.Table, reg)
	case "arow":
		return OpAppendRow(e.Table, reg)
	case "drow":
		return OpDeleteRow(e.Table, reg)
	case "icol":
		return OpInsertCol(e.Table, reg)
	case "acol":
		return OpAppendCol(e.Table, reg)
	case "dcol":
		return OpDeleteCol(e.Table, reg)
	}
	return errf(ErrInternal, "unreachable structural command %q", cmd.Function)
}

func (e *Executor) dispatchData(cmd Command) error {
	reg := e.Selector.Current
	switch cmd.Function {
	case "set":
		return OpSet(e.Table, reg, cmd.Arguments)
	case "clear":
		return OpClear(e.Table, reg)
	case "swap":
		r, c, err := ParseArgPair(cmd.Arguments, e.Table)
		if err != nil {
			return err
		}
		return OpSwap(e.Table, reg, r, c)
	case "sum":
		r, c, err := ParseArgPair(cmd.Arguments, e.Table)
		if err != nil {
			return err
		}
		return OpSum(e.Table, reg, r, c)
	case "avg":
		r, c, err := ParseArgPair(cmd.Arguments, e.Table)
		if err != nil {
			return err
		}
		return OpAvg(e.Table, reg, r, c)
	case "count":
		r, c, err := ParseArgPair(cmd.Arguments, e.Table)
		if err != nil {
			return err
		}
		return OpCount(e.Table, reg, r, c)
	case "len":
		r, c, err := ParseArgPair(cmd.Arguments, e.Table)
		if err != nil {
			return err
		}
		return OpLen(e.Table, reg, r, c)
	}
	return errf(ErrInternal, "unreachable data command %q", cmd.Function)
}

func (e *Executor) dispatchTempVar(cmd Command) error {
	n, err := ParseVariableIndex(cmd.Arguments, e.Config.VariableCount)
	if err != nil {
		return err
	}
	reg := clampRegion(e.Selector.Current, e.Table)

	switch cmd.Function {
	case "def":
		if reg.R1 != reg.R2 || reg.C1 != reg.C2 {
			return errf(ErrValue, "def requires a single-cell selection")
		}
		e.Vars.Set(n, e.Table.GetCell(reg.R1, reg.C1))
		return nil
	case "use":
		v, ok := e.Vars.Get(n)
		if !ok {
			return nil
		}
		for i := reg.R1; i <= reg.R2; i++ {
			for j := reg.C1; j <= reg.C2; j++ {
				e.Table.SetCell(i, j, v)
			}
		}
		return nil
	case "inc":
		e.Vars.Inc(n)
		return nil
	}
	return errf(ErrInternal, "unreachable temp-var command %q", cmd.Function)
}

// ParseCommands parses a batch of raw command strings, per spec.md §4.4.
func ParseCommands(raws []string) []Command {
	out := make([]Command, 0, len(raws))
	for _, raw := range raws {
		out = append(out, ParseCommand(raw))
	}
	return out
}

// Classify reports a command's category without executing it.
func Classify(function string) string {
	switch {
	case strings.HasPrefix(function, "[") && strings.HasSuffix(function, "]"):
		return "selector"
	case structuralCommands[function]:
		return "structural"
	case dataCommands[function]:
		return "data"
	case tempVarCommands[function]:
		return "tempvar"
	default:
		return "unknown"
	}
}
