package main

import (
	"fmt"
	"strconv"

	"github.com/docopt/docopt-go"
)

const version = "0.1.0"

//nolint:gochecknoglobals
var usage = `ratcalc

Usage:
  ratcalc [-s SCALE] [-e EXPR]
  ratcalc -h
  ratcalc -v

Options:
  -e, --expr=EXPR    Evaluate the expression and exit.
  -s, --scale=SCALE  Also print results as decimals with SCALE fractional digits.
  -h, --help         Display this help.
  -v, --version      Print ratcalc version.

Expressions are written in reverse Polish notation, for example "1 3 /" or
"2 -10 ^". Literals are decimals such as 3.14 or fractions such as 22/7.
The word "pi" pushes an approximation of π and "neg" negates the topmost value.

If ratcalc's stdin is a TTY, expressions are read interactively with line
editing and history. Otherwise, every line of stdin is evaluated in turn.
`

type config struct {
	expr     string
	scale    int
	hasScale bool
}

func parseOptions(argv []string) (config, error) {
	opts, err := docopt.ParseArgs(usage, argv, version)
	if err != nil {
		return config{}, err
	}

	var cfg config
	cfg.expr, _ = opts.String("--expr")

	if s, _ := opts.String("--scale"); s != "" {
		cfg.scale, err = strconv.Atoi(s)
		if err != nil {
			return config{}, fmt.Errorf("parsing scale %q: %w", s, err)
		}
		cfg.hasScale = true
	}

	return cfg, nil
}
