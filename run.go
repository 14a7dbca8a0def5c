package tablesed

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nystrom/tablesed/engine"
)

// RunOptions is the decoded form of spec.md §6's CLI surface.
type RunOptions struct {
	Delims string // DELIMS; first byte is canonical

	// Script is the inline ;-separated script. ScriptGiven distinguishes
	// an explicitly empty SCRIPT positional argument (spec.md §4.3: "an
	// empty literal yields zero commands", a legal no-op run) from SCRIPT
	// being omitted entirely, which is only valid when CommandsFile is
	// set.
	Script      string
	ScriptGiven bool

	CommandsFile string // -cPATH; if set, takes precedence over Script
	InputFile    string
	ConfigFile   string // optional YAML engine.Config override
	Debug        bool
}

// Run implements spec.md §4.12: validate, load, read the script,
// parse, execute, and — only on success — write the table back.
func Run(opts RunOptions, stdout, stderr logrus.FieldLogger) error {
	if opts.InputFile == "" {
		return argErr("missing required argument: INPUT_FILE")
	}
	if !opts.ScriptGiven && opts.CommandsFile == "" {
		return argErr("missing required argument: SCRIPT or -c PATH")
	}
	if opts.Delims == "" {
		return argErr("DELIMS must not be empty")
	}

	cfg, err := LoadEngineConfig(opts.ConfigFile)
	if err != nil {
		return err
	}

	if err := validateDelims(opts.Delims, cfg.BlacklistedDelims); err != nil {
		return err
	}

	table, err := LoadFile(opts.InputFile, []byte(opts.Delims), cfg)
	if err != nil {
		return err
	}

	rawCommands, err := ResolveScript(opts.Script, opts.CommandsFile)
	if err != nil {
		return err
	}
	commands := engine.ParseCommands(rawCommands)

	exec := engine.NewExecutor(table, cfg)
	exec.Warn = func(msg string) {
		if stdout != nil {
			stdout.Info(msg)
		}
	}

	if err := exec.Run(commands); err != nil {
		if stderr != nil {
			stderr.Error(err)
		}
		return wrapEngineError(err)
	}

	if opts.Debug {
		DumpDebug(table, exec.Vars, stderr)
	}

	if err := SaveFile(opts.InputFile, table); err != nil {
		return err
	}
	return nil
}

func validateDelims(delims string, blacklist string) error {
	for _, b := range []byte(delims) {
		if strings.IndexByte(blacklist, b) >= 0 {
			return delimiterErr("delimiter byte %q is not allowed", b)
		}
	}
	return nil
}
