package main

import (
	"errors"
	"os"

	"github.com/hpkotak/clx/cmd"
	"github.com/hpkotak/clx/internal/config"
	"github.com/hpkotak/clx/internal/executor"
	"github.com/hpkotak/clx/internal/render"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		render.Error(os.Stderr, err)
	}

	if err := cmd.Execute(); err != nil {
		// The command already reported its own failure.
		var exitErr *executor.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		render.Error(os.Stderr, err)
		os.Exit(1)
	}
}
