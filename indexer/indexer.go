// Package indexer is the offline build step: walk a document corpus,
// analyze each document into a stem set, accumulate sorted posting lists
// per stem, and write them out through the dictionary store.
package indexer

import (
	"log/slog"
	"sort"

	"github.com/spf13/afero"

	"github.com/anchortide/govirgo/analyze"
	"github.com/anchortide/govirgo/dictionary"
	"github.com/anchortide/govirgo/docwalk"
	"github.com/anchortide/govirgo/postinglist"
)

// Build walks docDir, analyzes every document, and writes a dictionary +
// postings pair at dictPath / postingsPath. Documents are processed in
// ascending PostingID order, so each stem's accumulated ID list is already
// sorted by construction and needs no separate sort pass before being
// handed to the Writer, whose postinglist.EncodeRecord delta-encodes it.
func Build(fsys afero.Fs, docDir, dictPath, postingsPath string) error {
	docs, err := docwalk.Walk(fsys, docDir)
	if err != nil {
		return err
	}

	postingsByStem := make(map[string][]postinglist.PostingID)
	var universe []postinglist.PostingID

	for _, doc := range docs {
		slog.Debug("indexing document", slog.Int("id", int(doc.ID)))

		stems := analyze.Document(doc.Text)
		seen := make(map[string]struct{}, len(stems))
		for _, stem := range stems {
			if _, dup := seen[stem]; dup {
				continue
			}
			seen[stem] = struct{}{}
			postingsByStem[stem] = append(postingsByStem[stem], doc.ID)
		}
		universe = append(universe, doc.ID)
	}

	w, err := dictionary.NewWriter(dictPath, postingsPath)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.WriteUniversal(universe); err != nil {
		return err
	}

	stems := sortedKeys(postingsByStem)
	for _, stem := range stems {
		if err := w.WriteTerm(stem, postingsByStem[stem]); err != nil {
			return err
		}
	}

	slog.Info("index built", slog.Int("documents", len(docs)), slog.Int("stems", len(stems)))
	return nil
}

// sortedKeys returns m's keys in ascending order, so rebuilding the same
// corpus twice produces a byte-identical dictionary file.
func sortedKeys(m map[string][]postinglist.PostingID) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
