package tablesed

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"

	"github.com/nystrom/tablesed/engine"
)

// DumpDebug writes a structural dump of the table and the final state of
// the variable bank, for the --debug flag (spec.md §6). It runs after a
// successful script execution, before the table is saved.
func DumpDebug(t *engine.Table, vars *engine.VariableBank, out logrus.FieldLogger) {
	if out == nil {
		return
	}
	out.Info("final table state:")
	fmt.Fprintln(os.Stderr, repr.String(t))
	out.Info("variable bank:")
	fmt.Fprintln(os.Stderr, repr.String(vars))
}
