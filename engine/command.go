package engine

import "strings"

// Command is a parsed command (spec.md §3): Function is the head token,
// Arguments is the remainder, or "" if absent.
type Command struct {
	Function  string
	Arguments string
}

// IsSelector reports whether c is a selector command: Function begins
// with '[' and ends with ']', and Arguments is empty (spec.md §3/§4.4).
func (c Command) IsSelector() bool {
	return c.Arguments == "" && strings.HasPrefix(c.Function, "[") && strings.HasSuffix(c.Function, "]")
}

// ReadCommandsFromScript splits an inline script on ';', escape-aware:
// a ';' inside a matched quoted run in the script is not a separator
// (spec.md §4.3, boundary B3). An empty script yields zero commands.
func ReadCommandsFromScript(script string) []string {
	if script == "" {
		return nil
	}
	return splitEscapeAware(script, ';')
}

// ReadCommandsFromLines splits the contents of a -cPATH command file
// into one raw command per line: each line is stripped of the first
// '\n' or '\r' and everything after it, per spec.md §4.3.
func ReadCommandsFromLines(content string) []string {
	var commands []string
	for _, line := range strings.Split(content, "\n") {
		if i := strings.IndexByte(line, '\r'); i >= 0 {
			line = line[:i]
		}
		commands = append(commands, line)
	}
	// strings.Split on a trailing "\n" produces one trailing empty
	// element that does not correspond to a line in the file.
	if len(commands) > 0 && commands[len(commands)-1] == "" && strings.HasSuffix(content, "\n") {
		commands = commands[:len(commands)-1]
	}
	return commands
}

// ParseCommand implements spec.md §4.4's command parser.
func ParseCommand(raw string) Command {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") && len(raw) >= 2 {
		return Command{Function: raw}
	}
	i := strings.IndexByte(raw, ' ')
	if i < 0 {
		return Command{Function: raw}
	}
	args := raw[i+1:]
	return Command{Function: raw[:i], Arguments: args}
}

// ParseArgPair parses the "[R,C]" argument form of spec.md §4.7: each
// part is a 1-based positive integer or '-' ("last row"/"last column").
// Returns 0-based indices, validated to be within the table.
func ParseArgPair(arg string, t *Table) (r, c int, err error) {
	if !strings.HasPrefix(arg, "[") || !strings.HasSuffix(arg, "]") || len(arg) < 2 {
		return 0, 0, errf(ErrFunctionArgument, "malformed argument %q", arg)
	}
	inner := arg[1 : len(arg)-1]
	if countActive([]byte(inner), ',', true) != 1 {
		return 0, 0, errf(ErrFunctionArgument, "malformed argument %q", arg)
	}
	rowPart, colPart := substringField([]byte(inner), ',', 0, true, true)

	r, err = resolveRowOrCol(rowPart, t.NumRows())
	if err != nil {
		return 0, 0, err
	}
	c, err = resolveRowOrCol(colPart, t.NumCols())
	if err != nil {
		return 0, 0, err
	}
	return r, c, nil
}

func resolveRowOrCol(s string, n int) (int, error) {
	if s == "-" {
		if n == 0 {
			return 0, errf(ErrFunctionArgument, "no last index in empty table")
		}
		return n - 1, nil
	}
	v, ok := parseIntStrict(s)
	if !ok || v < 1 || v > n {
		return 0, errf(ErrFunctionArgument, "bad index %q", s)
	}
	return v - 1, nil
}

func parseIntStrict(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	i := 0
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		i++
	}
	if i == len(s) {
		return 0, false
	}
	n := 0
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}
