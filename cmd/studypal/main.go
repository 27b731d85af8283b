package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/csheth/studypal/internal/cli"
)

func main() {
	app := cli.NewApp()
	err := app.Execute()
	_ = app.Close()
	if err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
