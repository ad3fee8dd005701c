package main

import (
	"os"

	"github.com/codice-tools/plastic-ctl/cmd"
	"github.com/codice-tools/plastic-ctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
