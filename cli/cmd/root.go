package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nystrom/tablesed"
)

var (
	rootCmd = &cobra.Command{
		Use:           "tablesed [-d DELIMS] (SCRIPT | -c PATH) INPUT_FILE",
		Short:         "tablesed",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long:          `A batch editor for delimiter-separated tables, driven by a small selector/mutation script language.`,
		Args:          cobra.MaximumNArgs(2),
		RunE:          runRoot,
	}

	delims       string
	commandsFile string
	configPath   string
	debug        bool
)

// Execute runs the root command.
func Execute() error {
	rootCmd.Flags().StringVarP(&delims, "delims", "d", " ", "delimiter bytes; first byte is canonical, the rest are normalized on load")
	rootCmd.Flags().StringVarP(&commandsFile, "commands-file", "c", "", "read commands one-per-line from PATH instead of the SCRIPT argument")
	rootCmd.Flags().StringVar(&configPath, "config", "", "optional YAML file overriding engine defaults")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "dump the final table and variable bank to stderr")
	return rootCmd.Execute()
}

func runRoot(_ *cobra.Command, args []string) error {
	opts := tablesed.RunOptions{
		Delims:       delims,
		CommandsFile: commandsFile,
		ConfigFile:   configPath,
		Debug:        debug,
	}

	switch {
	case commandsFile != "" && len(args) == 1:
		opts.InputFile = args[0]
	case commandsFile == "" && len(args) == 2:
		opts.Script = args[0]
		opts.ScriptGiven = true
		opts.InputFile = args[1]
	default:
		return tablesed.ArgumentUsageError()
	}

	stdout := newLogger(os.Stdout)
	stderr := newLogger(os.Stderr)

	return tablesed.Run(opts, stdout, stderr)
}

func newLogger(w *os.File) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}
