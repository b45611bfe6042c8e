// Command vectorcheck exercises the simplevector package.
//
// Usage:
//
//	vectorcheck [flags] <command> [command flags]
//
// Commands:
//
//	check   run the behavioural scenario suite and report each result
//	grow    append integers to a vector and print its metrics
//
// Examples:
//
//	vectorcheck check
//	vectorcheck --log.level=debug check
//	vectorcheck grow --count 1000000
//	vectorcheck --format=yaml grow --count 1000 --reserve 1000
//	vectorcheck --format=prometheus grow --count 4096
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	app := kingpin.New("vectorcheck", "Exercise and inspect simplevector.")
	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").Enum("debug", "info", "warn", "error")
	format := app.Flag("format", "Output format for metrics.").
		Default("logfmt").Enum(formatLogfmt, formatYAML, formatPrometheus)

	check := &checkCommand{}
	app.Command("check", "Run the scenario suite.").Action(func(*kingpin.ParseContext) error {
		check.logger = newLogger(*logLevel)
		return check.run()
	})

	grow := &growCommand{out: os.Stdout}
	growCmd := app.Command("grow", "Append integers and print vector metrics.")
	growCmd.Flag("count", "Number of elements to append.").Default("1024").IntVar(&grow.count)
	growCmd.Flag("reserve", "Capacity to reserve before appending.").Default("0").IntVar(&grow.reserve)
	growCmd.Action(func(*kingpin.ParseContext) error {
		grow.logger = newLogger(*logLevel)
		grow.format = *format
		return grow.run()
	})

	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vectorcheck: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(lvl, level.InfoValue())))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}
