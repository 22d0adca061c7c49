package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/quintans/faults"
)

func main() {
	rawValues := flag.String("values", "[1,2,3]", "JSON array of integers, pushed in order")
	depth := flag.Int("depth", 100_000, "number of nodes in the teardown run")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		slog.Error("invalid log level", "level", *logLevel, "error", err)
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*rawValues, *depth); err != nil {
		slog.Error("stackdemo failed", "error", err)
		os.Exit(1)
	}
}

func run(rawValues string, depth int) error {
	values, err := parseValues(rawValues)
	if err != nil {
		return faults.Errorf("parsing values: %w", err)
	}

	err = walk(os.Stdout, values)
	if err != nil {
		return faults.Errorf("walking stack: %w", err)
	}

	_, err = teardown(depth)
	if err != nil {
		return faults.Errorf("teardown: %w", err)
	}

	return nil
}
