/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command quadopt reads the quadruples of one basic block, optimizes them
// with constant folding, common sub-expression elimination and copy
// propagation, and prints the table before and after.
//
// Usage:
//
//	quadopt [flags] < block.txt
//
// The default text input is the quadruple count followed by that many
// "op arg1 arg2 result" records, e.g.
//
//	3
//	+ 2 3 t1
//	+ 2 3 t2
//	* t1 4 t3
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"

	"github.com/cloudwego/quadopt"
	"github.com/cloudwego/quadopt/internal/codec"
	"github.com/cloudwego/quadopt/internal/opts"
	"github.com/cloudwego/quadopt/internal/quadio"
)

type config struct {
	in          string
	out         string
	from        string
	to          string
	maxQuads    int
	maxToken    int
	interactive bool
	trace       bool
	stats       bool
	verbose     bool
	quiet       bool
}

var (
	inputFormats  = map[string]bool{"text": true, "yaml": true, "thrift": true}
	outputFormats = map[string]bool{"table": true, "text": true, "yaml": true, "thrift": true}
)

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := new(config)
	fs := flag.NewFlagSet("quadopt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "-", "input file, - for stdin")
	fs.StringVar(&cfg.out, "out", "-", "output file, - for stdout")
	fs.StringVar(&cfg.from, "from", "text", "input format: text, yaml or thrift")
	fs.StringVar(&cfg.to, "to", "table", "output format: table, text, yaml or thrift")
	fs.IntVar(&cfg.maxQuads, "max-quads", opts.MaxQuads, "maximum number of quadruples, 0 for unlimited")
	fs.IntVar(&cfg.maxToken, "max-token", opts.MaxTokenLen, "maximum length of a quadruple field, 0 for unlimited")
	fs.BoolVar(&cfg.interactive, "interactive", false, "prompt for the input on stderr")
	fs.BoolVar(&cfg.trace, "trace", false, "print every rewrite on stderr")
	fs.BoolVar(&cfg.stats, "stats", false, "print rewrite counts on stderr")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	fs.BoolVar(&cfg.quiet, "q", false, "only log warnings and errors")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	/* validate the options */
	switch {
	case fs.NArg() != 0:
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	case !inputFormats[cfg.from]:
		return nil, fmt.Errorf("invalid input format: %q", cfg.from)
	case !outputFormats[cfg.to]:
		return nil, fmt.Errorf("invalid output format: %q", cfg.to)
	case cfg.maxQuads < 0:
		return nil, fmt.Errorf("invalid -max-quads: %d", cfg.maxQuads)
	case cfg.maxToken < 0:
		return nil, fmt.Errorf("invalid -max-token: %d", cfg.maxToken)
	}
	return cfg, nil
}

func newLogger(cfg *config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	} else if cfg.quiet {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func readTable(cfg *config, r io.Reader, prompt io.Writer) (*quadopt.Table, error) {
	tab := quadopt.NewTable(quadopt.WithMaxQuads(cfg.maxQuads), quadopt.WithMaxTokenLen(cfg.maxToken))
	switch cfg.from {
	case "yaml":
		return tab, quadio.ReadYAML(r, tab)
	case "thrift":
		buf, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return tab, codec.Decode(buf, tab)
	default:
		if !cfg.interactive {
			prompt = nil
		}
		return tab, quadio.ReadText(r, tab, prompt)
	}
}

func writeTables(cfg *config, w io.Writer, orig *quadopt.Table, tab *quadopt.Table) error {
	switch cfg.to {
	case "yaml":
		return quadio.WriteYAML(w, tab)
	case "thrift":
		buf, err := codec.Encode(tab)
		if err != nil {
			return err
		}
		_, err = w.Write(buf)
		return err
	case "text":
		if err := writeSection(w, "--- Intermediate Code (Original) ---\n", orig); err != nil {
			return err
		}
		return writeSection(w, "\n--- Optimized Code (Final) ---\n", tab)
	default:
		if err := quadio.WritePretty(w, "Intermediate Code (Original)", orig); err != nil {
			return err
		}
		return quadio.WritePretty(w, "Optimized Code (Final)", tab)
	}
}

func writeSection(w io.Writer, title string, tab *quadopt.Table) error {
	if _, err := io.WriteString(w, title); err != nil {
		return err
	}
	return quadio.WriteText(w, tab)
}

func describe(err error) string {
	var ce quadopt.CapacityError
	var te quadopt.TokenError
	switch {
	case errors.As(err, &ce):
		return fmt.Sprintf("%v (raise it with -max-quads)", err)
	case errors.As(err, &te) && te.Token != "":
		return fmt.Sprintf("%v (raise it with -max-token)", err)
	default:
		return err.Error()
	}
}

func run(cfg *config, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	log := newLogger(cfg, stderr)

	/* read the basic block */
	tab, err := readTable(cfg, stdin, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "quadopt: cannot read %s input: %s\n", cfg.from, describe(err))
		return 1
	}

	/* optimize a copy, keeping the original for printing */
	orig := tab.Clone()
	log.Debug("table loaded", slog.Int("quads", tab.Len()), slog.Int("capacity", tab.Cap()))
	stats, rewrites := quadopt.OptimizeTrace(tab, quadopt.WithLogger(log))

	/* dump the rewrites if requested */
	if cfg.trace {
		for _, rw := range rewrites {
			fmt.Fprintln(stderr, rw)
		}
	}

	/* and the statistics */
	if cfg.stats {
		fmt.Fprintf(stderr, "stats: %s\n", stats)
	}

	/* write the result */
	if err = writeTables(cfg, stdout, orig, tab); err != nil {
		fmt.Fprintf(stderr, "quadopt: cannot write %s output: %v\n", cfg.to, err)
		return 1
	}
	return 0
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		atexit.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "quadopt: %v\n", err)
		atexit.Exit(2)
	}

	/* open the input file */
	var in io.Reader = os.Stdin
	if cfg.in != "-" {
		fp, err := os.Open(cfg.in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "quadopt: %v\n", err)
			atexit.Exit(1)
		}
		atexit.Register(func() { _ = fp.Close() })
		in = fp
	}

	/* create the output file */
	var out io.Writer = os.Stdout
	if cfg.out != "-" {
		fp, err := os.Create(cfg.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "quadopt: %v\n", err)
			atexit.Exit(1)
		}
		atexit.Register(func() { _ = fp.Close() })
		out = fp
	}

	/* closes the files registered above */
	atexit.Exit(run(cfg, in, out, os.Stderr))
}
