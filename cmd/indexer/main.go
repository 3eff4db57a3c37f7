// Command indexer builds a dictionary + postings pair from a directory of
// documents.
//
//	indexer -i <doc-dir> -d <dictionary-path> -p <postings-path>
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/anchortide/govirgo/indexer"
)

func main() {
	app := &cli.App{
		Name:  "indexer",
		Usage: "build an inverted index from a document corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "i", Usage: "document corpus directory", Required: true},
			&cli.StringFlag{Name: "d", Usage: "output dictionary path", Required: true},
			&cli.StringFlag{Name: "p", Usage: "output postings path", Required: true},
		},
		Action: func(c *cli.Context) error {
			docDir := c.String("i")
			dictPath := c.String("d")
			postingsPath := c.String("p")
			return indexer.Build(afero.NewOsFs(), docDir, dictPath, postingsPath)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		slog.Error("indexer failed", slog.Any("error", err))
		os.Exit(2)
	}
	slog.Info("indexer finished")
}
