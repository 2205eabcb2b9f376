package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/gnuvince/rate/rate"
)

var isWindowsOS = runtime.GOOS == "windows"

// App represents application settings and run execution
type App struct {
	useColors bool
	colorSet  colorSet
	args      []string
}

type colorSet struct {
	value, unit, period func(string) string
}

// Commandline create command line parameter parser and parse them
func (a *App) Commandline() error {
	app := kingpin.New(progName, "Convert a data-rate expression and print it over the standard time periods.\n\n"+
		"The expression is a number, a unit ("+strings.Join(rate.Units, " ")+"), a '/' and a period ("+strings.Join(rate.PeriodNames, " ")+"), e.g. '1.25 MB / s'.")
	app.Version(version)
	app.HelpFlag.Short('h')
	app.VersionFlag.Short('v')
	app.Flag("color", "Use colored outputs").Default(strconv.FormatBool(!isWindowsOS)).BoolVar(&a.useColors)
	app.Arg("expression", "rate expression, e.g. '1.25 MB / s'").Required().StringsVar(&a.args)

	if len(os.Args) == 1 {
		app.Usage(nil)
		os.Exit(0)
	}

	if _, err := app.Parse(os.Args[1:]); err != nil {
		return err
	}

	if a.useColors {
		a.colorSet = colorSet{
			value:  chalk.Yellow.Color,
			unit:   chalk.Cyan.Color,
			period: chalk.Green.Color,
		}
	}
	return nil
}

// Run parses the expression and prints the rate over each period
func (a *App) Run() error {
	input := strings.Join(a.args, " ")
	expr, err := rate.Parse(input)
	if err != nil {
		return errors.Wrapf(err, "%q", input)
	}
	for _, row := range rate.Table(expr.BytesPerSecond()) {
		fmt.Println(a.renderRow(row))
	}
	return nil
}

func (a *App) renderRow(r rate.Row) string {
	if !a.useColors {
		return r.String()
	}
	return a.colorSet.value(fmt.Sprintf("%7.3f", r.Value)) +
		" " + a.colorSet.unit(fmt.Sprintf("%2s", r.Unit)) +
		" / " + a.colorSet.period(r.Period)
}
