package main

import (
	"os"

	"github.com/newsplit/newsplit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
