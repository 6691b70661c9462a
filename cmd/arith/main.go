package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/calcutil/arith"
)

func main() {
	var (
		inname string
		verb   string
		tree   bool
	)
	app := &cli.App{
		Name:      "arith",
		Usage:     "evaluate arithmetic expressions",
		ArgsUsage: "[expression ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "in",
				Usage:       "read expressions from `FILE`, one per line (- for stdin)",
				Destination: &inname,
			},
			&cli.StringFlag{
				Name:        "fmt",
				Value:       "%g",
				Usage:       "result formatting verb",
				Destination: &verb,
			},
			&cli.BoolFlag{
				Name:        "tree",
				Usage:       "print the parse tree alongside each result",
				Destination: &tree,
			},
		},
		Action: func(c *cli.Context) error {
			exprs, err := inputs(c.Args().Slice(), inname)
			if err != nil {
				return err
			}
			for _, src := range exprs {
				e, err := arith.Parse(src)
				if err != nil {
					return cli.Exit(err, 1)
				}
				if tree {
					fmt.Printf("%v : ", e)
				}
				r, err := arith.Eval(e)
				if err != nil {
					return cli.Exit(err, 1)
				}
				fmt.Printf(verb+"\n", r)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "check",
				Usage: "run the built-in verification list and report failures",
				Action: func(c *cli.Context) error {
					n := arith.Verify(func(input string, want, got float64, err error) {
						if err != nil {
							fmt.Printf("%s : error: %v\n", input, err)
							return
						}
						fmt.Printf("%s = %g : error, got %g\n", input, want, got)
					})
					fmt.Printf("Done with %d errors.\n", n)
					if n > 0 {
						return cli.Exit("", 1)
					}
					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// inputs collects the expressions to evaluate: command-line arguments,
// then lines of the -in file. With no arguments and no file, lines are
// read from stdin.
func inputs(args []string, inname string) ([]string, error) {
	exprs := append([]string(nil), args...)
	var f *os.File
	switch {
	case inname == "-":
		f = os.Stdin
	case inname != "":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	case len(args) == 0:
		f = os.Stdin
	}
	if f == nil {
		return exprs, nil
	}
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return exprs, nil
}
