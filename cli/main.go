package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nystrom/tablesed"
	"github.com/nystrom/tablesed/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var cliErr tablesed.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintln(os.Stderr, cliErr.Error())
			os.Exit(cliErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(5)
	}
}
