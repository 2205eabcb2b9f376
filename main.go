package main

import (
	"fmt"
	"os"
)

const (
	progName = "rate"
	version  = "1.0.0"
)

func main() {
	app := &App{}
	if err := app.Commandline(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err)
		os.Exit(1)
	}
}
