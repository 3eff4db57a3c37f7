// ═══════════════════════════════════════════════════════════════════════════════
// DICTIONARY & POSTINGS STORE
// ═══════════════════════════════════════════════════════════════════════════════
// The on-disk index is two files: a postings file holding one self-delimited
// postinglist.EncodeRecord per stem, concatenated back to back, and a dictionary
// sidecar mapping "stem,offset" one per line so a lookup costs one map access plus
// one seek. The universal stem — every PostingID the index knows about, needed to
// realize NOT — is written first, at offset 0, under a sentinel key that can
// never collide with a real stem.
//
// Writer is used once, by the indexer, to build both files. Session is used by
// the searcher to answer repeated lookups against an already-built index: each
// resolved term is cached for the life of the session so a query that repeats a
// term (e.g. "dog and not dog") only seeks and decodes it once.
// ═══════════════════════════════════════════════════════════════════════════════

package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring"

	"github.com/anchortide/govirgo/postinglist"
)

// UniversalStem is the reserved dictionary key holding every PostingID the
// index knows about. It can never collide with a real stem because the
// analyzer never emits an empty token.
const UniversalStem = ""

// ErrCorruptIndex is returned when the dictionary sidecar or the postings
// file cannot be reconciled with each other: an offset with no decodable
// record behind it, or a dictionary line that doesn't parse.
var ErrCorruptIndex = errors.New("dictionary: corrupt index")

// TermStats is what a Session hands back for a resolved stem.
type TermStats struct {
	Length   int
	Postings *postinglist.SkipList
}

// Writer builds a fresh dictionary + postings pair. It is not safe for
// concurrent use — the indexer drives it from a single goroutine.
type Writer struct {
	dictFile      *os.File
	postingsFile  *os.File
	offset        int64
	wroteUniverse bool
}

// NewWriter creates (truncating if necessary) the dictionary file at
// dictPath and the postings file at postingsPath.
func NewWriter(dictPath, postingsPath string) (*Writer, error) {
	df, err := os.Create(dictPath)
	if err != nil {
		return nil, fmt.Errorf("dictionary: create %s: %w", dictPath, err)
	}
	pf, err := os.Create(postingsPath)
	if err != nil {
		df.Close()
		return nil, fmt.Errorf("dictionary: create %s: %w", postingsPath, err)
	}
	return &Writer{dictFile: df, postingsFile: pf}, nil
}

// WriteUniversal writes the universal posting list. It must be called
// exactly once, before any WriteTerm call, so the universal record lands at
// postings offset 0.
func (w *Writer) WriteUniversal(ids []postinglist.PostingID) error {
	if w.wroteUniverse {
		return errors.New("dictionary: universal stem already written")
	}
	w.wroteUniverse = true
	return w.writeRecord(UniversalStem, ids)
}

// WriteTerm writes one stem's posting list. Stems should be written in a
// deterministic order (the indexer writes them sorted) so rebuilding the
// same corpus produces a byte-identical index.
func (w *Writer) WriteTerm(stem string, ids []postinglist.PostingID) error {
	if !w.wroteUniverse {
		return errors.New("dictionary: universal stem must be written before any term")
	}
	if stem == UniversalStem {
		return fmt.Errorf("dictionary: stem %q collides with the universal sentinel", stem)
	}
	return w.writeRecord(stem, ids)
}

func (w *Writer) writeRecord(stem string, ids []postinglist.PostingID) error {
	record := postinglist.EncodeRecord(ids)
	if _, err := w.postingsFile.Write(record); err != nil {
		return fmt.Errorf("dictionary: write postings for %q: %w", stem, err)
	}
	if _, err := fmt.Fprintf(w.dictFile, "%s,%d\n", stem, w.offset); err != nil {
		return fmt.Errorf("dictionary: write dictionary entry for %q: %w", stem, err)
	}
	w.offset += int64(len(record))
	return nil
}

// Close flushes and closes both files.
func (w *Writer) Close() error {
	dictErr := w.dictFile.Close()
	postingsErr := w.postingsFile.Close()
	if dictErr != nil {
		return dictErr
	}
	return postingsErr
}

// Session is a read-only, seekable view of an already-built dictionary and
// postings pair, with per-term caching for the life of the session.
//
// The cache is split across two structures deliberately: stemIndex is keyed
// by stem text (a lookup has to start from the string the query compiler
// hands it) and maps it to a dictionary index, which also indexes the
// offsets slice; once a stem's dictionary index is known,
// whether it has already been resolved is answered by loaded, a dense
// roaring.Bitmap over those indices, and the resolved value itself lives in
// the parallel terms slice at that index — no second string-keyed map
// involved. loaded.Contains(idx) is the actual gate Load checks before
// touching the postings file at all.
type Session struct {
	postingsFile *os.File
	offsets      []int64
	stemIndex    map[string]uint32
	terms        []*TermStats
	loaded       *roaring.Bitmap
}

// Open loads the dictionary sidecar into memory and opens the postings file
// for seeking. The postings file itself is read lazily, one record at a
// time, as terms are looked up.
func Open(dictPath, postingsPath string) (*Session, error) {
	dictBytes, err := os.ReadFile(dictPath)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read %s: %w", dictPath, err)
	}
	offsets, stemIndex, err := parseDictionary(dictBytes)
	if err != nil {
		return nil, err
	}

	pf, err := os.Open(postingsPath)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", postingsPath, err)
	}

	return &Session{
		postingsFile: pf,
		offsets:      offsets,
		stemIndex:    stemIndex,
		terms:        make([]*TermStats, len(offsets)),
		loaded:       roaring.New(),
	}, nil
}

// Load resolves stem to its posting list. A stem absent from the
// dictionary is not an error: it resolves to an empty, zero-length posting
// list, same as any other term with no matches.
func (s *Session) Load(stem string) (*TermStats, error) {
	idx, known := s.stemIndex[stem]
	if !known {
		return &TermStats{Postings: postinglist.BuildFrom(nil)}, nil
	}

	if s.loaded.Contains(idx) {
		return s.terms[idx], nil
	}

	off := s.offsets[idx]
	if _, err := s.postingsFile.Seek(off, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seeking to %q at offset %d: %v", ErrCorruptIndex, stem, off, err)
	}
	sl, err := postinglist.DecodeRecord(s.postingsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %q at offset %d", ErrCorruptIndex, stem, off)
	}

	ts := &TermStats{Length: sl.Length, Postings: sl}
	s.terms[idx] = ts
	s.loaded.Add(idx)
	return ts, nil
}

// CachedTermCount reports how many distinct stems this session has
// resolved so far, via the roaring bitmap's cardinality — the same bitmap
// Load consults to decide whether a lookup needs to touch the postings
// file at all.
func (s *Session) CachedTermCount() uint64 {
	return s.loaded.GetCardinality()
}

// Universe resolves the universal posting list.
func (s *Session) Universe() (*postinglist.SkipList, error) {
	ts, err := s.Load(UniversalStem)
	if err != nil {
		return nil, err
	}
	return ts.Postings, nil
}

// Close releases the postings file handle.
func (s *Session) Close() error {
	return s.postingsFile.Close()
}

// parseDictionary parses the "stem,offset" sidecar format and assigns each
// stem a sequential index in file order. offsets is indexed by that same
// sequential index, so a resolved stemIndex lookup turns straight into an
// offsets slot with no second string-keyed map involved.
func parseDictionary(data []byte) (offsets []int64, stemIndex map[string]uint32, err error) {
	stemIndex = make(map[string]uint32)

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	var i uint32
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		sep := strings.LastIndex(line, ",")
		if sep < 0 {
			return nil, nil, fmt.Errorf("%w: malformed dictionary line %q", ErrCorruptIndex, line)
		}
		stem := line[:sep]
		offset, perr := strconv.ParseInt(line[sep+1:], 10, 64)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: malformed offset in line %q", ErrCorruptIndex, line)
		}
		offsets = append(offsets, offset)
		stemIndex[stem] = i
		i++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCorruptIndex, err)
	}
	return offsets, stemIndex, nil
}
