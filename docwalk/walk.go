// Package docwalk traverses a document corpus directory and assigns each
// file the PostingID its filename encodes. It reads the corpus through
// afero.Fs rather than the os package, so the indexer's traversal logic can
// be exercised against an in-memory corpus in tests without touching disk.
// The index files themselves are written and read by the dictionary package
// through the os package.
package docwalk

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strconv"

	"github.com/spf13/afero"

	"github.com/anchortide/govirgo/postinglist"
)

// ErrBadArguments is returned when a document's filename does not parse as
// a non-negative integer PostingID.
var ErrBadArguments = errors.New("docwalk: bad arguments")

// Document is one corpus file paired with its derived PostingID.
type Document struct {
	ID   postinglist.PostingID
	Text string
}

// Walk reads every regular file directly under dir, deriving each one's
// PostingID from its basename, and returns them sorted by ID ascending —
// the order the indexer needs to build posting lists without re-sorting.
func Walk(fsys afero.Fs, dir string) ([]Document, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("docwalk: read %s: %w", dir, err)
	}

	docs := make([]Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, err := strconv.Atoi(entry.Name())
		if err != nil || id < 0 {
			return nil, fmt.Errorf("%w: document filename %q is not a non-negative integer", ErrBadArguments, entry.Name())
		}

		fullPath := path.Join(dir, entry.Name())
		data, err := afero.ReadFile(fsys, fullPath)
		if err != nil {
			return nil, fmt.Errorf("docwalk: read %s: %w", fullPath, err)
		}
		docs = append(docs, Document{ID: postinglist.PostingID(id), Text: string(data)})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}
