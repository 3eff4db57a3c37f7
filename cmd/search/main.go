// Command search evaluates one boolean query per line against an
// already-built index.
//
//	search -d <dictionary-path> -p <postings-path> -q <queries-path> -o <output-path>
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/anchortide/govirgo/searcher"
)

func main() {
	app := &cli.App{
		Name:  "search",
		Usage: "evaluate boolean queries against an inverted index",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "d", Usage: "dictionary path", Required: true},
			&cli.StringFlag{Name: "p", Usage: "postings path", Required: true},
			&cli.StringFlag{Name: "q", Usage: "queries file, one query per line", Required: true},
			&cli.StringFlag{Name: "o", Usage: "output file, one result line per query", Required: true},
		},
		Action: func(c *cli.Context) error {
			return searcher.Run(c.String("d"), c.String("p"), c.String("q"), c.String("o"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		slog.Error("search failed", slog.Any("error", err))
		os.Exit(2)
	}
	slog.Info("search finished")
}
