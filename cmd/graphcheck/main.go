// SPDX-License-Identifier: MIT

// Command graphcheck grades one submitted graph against a trusted one.
//
//	graphcheck -trusted answer.json -submitted attempt.json [-tolerances t.yaml] [-parallel] [-v]
//
// Exit status is 0 for a match, 1 for a mismatch and 2 for unusable input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"

	"github.com/katalvlaran/graphcheck/checker"
	"github.com/katalvlaran/graphcheck/geom"
	"github.com/katalvlaran/graphcheck/internal/config"
	"github.com/katalvlaran/graphcheck/parser"
)

const (
	exitMatch    = 0
	exitMismatch = 1
	exitInput    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("graphcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	trustedPath := fs.String("trusted", "", "path of the trusted (reference) graph JSON")
	submittedPath := fs.String("submitted", "", "path of the submitted graph JSON")
	tolerancesPath := fs.String("tolerances", "", "optional YAML tolerance profile")
	parallel := fs.Bool("parallel", false, "evaluate colour channels concurrently")
	verbose := fs.Bool("v", false, "log every gate at debug level")

	if err := fs.Parse(args); err != nil {
		return exitInput
	}
	if *trustedPath == "" || *submittedPath == "" {
		fmt.Fprintln(stderr, "both -trusted and -submitted are required")
		fs.Usage()
		return exitInput
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	tol := checker.DefaultTolerances()
	if *tolerancesPath != "" {
		var err error
		if tol, err = config.LoadTolerances(*tolerancesPath); err != nil {
			return fail(stderr, err)
		}
	}

	trusted, err := load(*trustedPath)
	if err != nil {
		return fail(stderr, err)
	}
	submitted, err := load(*submittedPath)
	if err != nil {
		return fail(stderr, err)
	}

	c := checker.New(checker.WithTolerances(tol), checker.WithLogger(logger), checker.WithParallel(*parallel))
	v := c.Test(trusted, submitted)
	if v.Correct {
		fmt.Fprintln(stdout, chalk.Green.Color("match"))
		return exitMatch
	}
	fmt.Fprintln(stdout, chalk.Red.Color("mismatch: "+v.Cause()))

	return exitMismatch
}

func load(path string) (*geom.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	g, err := parser.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return g, nil
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, chalk.Red.Color("error: "+err.Error()))
	return exitInput
}
