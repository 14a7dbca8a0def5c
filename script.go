package tablesed

import (
	"os"

	"github.com/nystrom/tablesed/engine"
)

// ResolveScript implements the SCRIPT vs. -cPATH branch of spec.md §6:
// when cPath is non-empty, raw commands come from its newline-separated
// contents; otherwise they come from splitting the literal script on
// ';' (spec.md §4.3).
func ResolveScript(script, cPath string) ([]string, error) {
	if cPath != "" {
		data, err := os.ReadFile(cPath)
		if err != nil {
			return nil, ioErr(err)
		}
		return engine.ReadCommandsFromLines(string(data)), nil
	}
	return engine.ReadCommandsFromScript(script), nil
}
