package postinglist

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

// ErrCorruptRecord is returned when a postings record cannot be decoded: a
// truncated varint or a declared count that runs past the available bytes.
// An offset that does not land on a record boundary is only caught when
// decoding from it runs into one of those two cases.
var ErrCorruptRecord = errors.New("postinglist: corrupt record")

// EncodeRecord serializes a SkipList as a self-delimited binary record:
//
//	[count uvarint] [delta uvarint]...
//
// Postings are delta-encoded against the previous ID (the first delta is
// against 0), so dense posting lists compress to a handful of small
// varints regardless of how large the absolute PostingIDs are. A reader
// never needs to know the record's length in advance — DecodeRecord stops
// after as many varints as the leading count demands, which is what lets
// the dictionary store pack records back-to-back in a single postings file
// and seek straight to any one of them. Given an io.ByteReader it consumes
// exactly the record's bytes; any other reader is wrapped in a bufio.Reader,
// which may read past the end of the record.
func EncodeRecord(ids []PostingID) []byte {
	buf := make([]byte, 0, 5+5*len(ids))
	var scratch [binary.MaxVarintLen64]byte

	n := binary.PutUvarint(scratch[:], uint64(len(ids)))
	buf = append(buf, scratch[:n]...)

	var prev PostingID
	for _, id := range ids {
		n := binary.PutUvarint(scratch[:], uint64(id-prev))
		buf = append(buf, scratch[:n]...)
		prev = id
	}
	return buf
}

// DecodeRecord reads one self-delimited record from r and rebuilds its
// SkipList, recomputing skip pointers from scratch via BuildFrom rather
// than persisting them — the stride is a pure function of the posting
// count, so there is nothing to gain from storing it.
func DecodeRecord(r io.Reader) (*SkipList, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	count, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, ErrCorruptRecord
	}

	ids := make([]PostingID, count)
	var prev PostingID
	for i := uint64(0); i < count; i++ {
		delta, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, ErrCorruptRecord
		}
		prev += PostingID(delta)
		ids[i] = prev
	}
	return BuildFrom(ids), nil
}
