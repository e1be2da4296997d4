/*
Ratcalc is a calculator for the terminal working on exact rational numbers.

	$ ratcalc -e "1 3 /"
	1/3, approx. 0.3333333333
	$ ratcalc -s 4 -e "pi 2 *"
	approx. 6.2831853071
	6.2831

For the expression syntax, see: ratcalc -h
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/govalues/bigrat"
	"github.com/govalues/bigrat/internal/rpn"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

func main() {
	cfg, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ratcalc: %v\n", err)
		os.Exit(2)
	}

	irq := new(bigrat.Flag)
	handleInterrupts(irq)

	switch fd := os.Stdin.Fd(); {
	case cfg.expr != "":
		err = evaluate(os.Stdout, cfg, irq, cfg.expr)
	case isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd):
		err = interactive(cfg, irq)
	default:
		err = batch(os.Stdin, os.Stdout, os.Stderr, cfg, irq)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ratcalc: %v\n", err)
		os.Exit(1)
	}
}

// handleInterrupts raises irq on SIGINT.
// A second SIGINT before irq is reset terminates the process.
func handleInterrupts(irq *bigrat.Flag) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		for range sig {
			if irq.Interrupt() {
				os.Exit(1)
			}
		}
	}()
}

// evaluate evaluates a single expression and writes its result to w.
func evaluate(w io.Writer, cfg config, irq *bigrat.Flag, expr string) error {
	irq.Reset()

	r, err := rpn.Eval(expr, irq)
	if err != nil {
		return err
	}
	s, err := r.StringInterruptible(irq)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, s)

	if cfg.hasScale {
		d, err := r.Decimal(cfg.scale)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, d)
	}

	return nil
}

// batch evaluates every non-blank line of in.
// Errors are reported on errw and do not stop the evaluation.
func batch(in io.Reader, out, errw io.Writer, cfg config, irq *bigrat.Flag) error {
	failed := 0
	s := bufio.NewScanner(in)
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := evaluate(out, cfg, irq, line); err != nil {
			fmt.Fprintf(errw, "error: %v\n", err)
			failed++
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%v expression(s) failed", failed)
	}
	return nil
}

// interactive reads expressions from the terminal until EOF.
func interactive(cfg config, irq *bigrat.Flag) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	_ = loadHistory(cli.ReadHistory)

	for {
		line, err := cli.Prompt("> ")
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()
			return saveHistory(cli.WriteHistory)
		default:
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		cli.AppendHistory(line)

		if err := evaluate(os.Stdout, cfg, irq, line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}
