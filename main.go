package main

import (
	"os"

	"github.com/mit-orcd/coldfront-deployctl/cmd"
	"github.com/mit-orcd/coldfront-deployctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
