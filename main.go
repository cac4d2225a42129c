package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"leavetime/cli"
)

func main() {
	app := &cli.App{
		IsInteractive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}

	err := cli.NewRootCmd(app).Execute()
	if closeErr := app.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
