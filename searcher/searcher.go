// Package searcher is the online half of the engine: open an already-built
// index once, then evaluate one boolean query per line against it.
package searcher

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/anchortide/govirgo/analyze"
	"github.com/anchortide/govirgo/dictionary"
	"github.com/anchortide/govirgo/postinglist"
	"github.com/anchortide/govirgo/queryparse"
	"github.com/anchortide/govirgo/querytree"
)

// Session holds an open dictionary/postings pair for the life of a search
// run, so repeated queries share the per-term cache in dictionary.Session.
type Session struct {
	store *dictionary.Session
}

// Open opens the dictionary and postings files at the given paths.
func Open(dictPath, postingsPath string) (*Session, error) {
	store, err := dictionary.Open(dictPath, postingsPath)
	if err != nil {
		return nil, err
	}
	return &Session{store: store}, nil
}

// Close releases the underlying postings file.
func (s *Session) Close() error {
	return s.store.Close()
}

// Evaluate compiles and evaluates one boolean query line, returning the
// matching PostingIDs in ascending order.
func (s *Session) Evaluate(query string) ([]postinglist.PostingID, error) {
	tokens := queryparse.Tokenize(query)
	postfix, err := queryparse.ShuntingYard(tokens)
	if err != nil {
		return nil, err
	}

	for i, tok := range postfix {
		if !queryparse.IsOperator(tok) {
			postfix[i] = analyze.Term(tok)
		}
	}

	tree, err := querytree.Build(postfix, func(stem string) (*postinglist.SkipList, error) {
		ts, err := s.store.Load(stem)
		if err != nil {
			return nil, err
		}
		return ts.Postings, nil
	})
	if err != nil {
		return nil, err
	}

	universe, err := s.store.Universe()
	if err != nil {
		return nil, err
	}

	result, err := querytree.Evaluate(tree, universe)
	if err != nil {
		return nil, err
	}
	return result.ToList(), nil
}

// Run reads one query per line from queriesPath, evaluates each against
// dictPath/postingsPath, and writes one line of space-separated PostingIDs
// per query to outputPath, preserving input order. An empty result line is
// written for a query that matches nothing.
func Run(dictPath, postingsPath, queriesPath, outputPath string) error {
	session, err := Open(dictPath, postingsPath)
	if err != nil {
		return err
	}
	defer session.Close()
	slog.Info("search session opened", slog.String("dictionary", dictPath))

	in, err := os.Open(queriesPath)
	if err != nil {
		return fmt.Errorf("searcher: open %s: %w", queriesPath, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("searcher: create %s: %w", outputPath, err)
	}
	defer out.Close()

	writer := bufio.NewWriter(out)
	defer writer.Flush()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		query := scanner.Text()
		if strings.TrimSpace(query) == "" {
			continue
		}

		results, err := session.Evaluate(query)
		if err != nil {
			return fmt.Errorf("searcher: query %q: %w", query, err)
		}
		slog.Debug("query evaluated", slog.String("query", query), slog.Int("matches", len(results)))

		if _, err := writer.WriteString(formatResults(results) + "\n"); err != nil {
			return fmt.Errorf("searcher: write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("searcher: read %s: %w", queriesPath, err)
	}
	return nil
}

func formatResults(ids []postinglist.PostingID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, " ")
}
