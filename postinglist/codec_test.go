package postinglist

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]PostingID{
		nil,
		{0},
		{1, 2, 3, 4, 5},
		{3, 1000, 1001, 5_000_000},
	}
	for _, ids := range cases {
		buf := EncodeRecord(ids)
		sl, err := DecodeRecord(bytes.NewReader(buf))
		if err != nil {
			t.Fatalf("DecodeRecord(%v): %v", ids, err)
		}
		got := sl.ToList()
		if len(got) != len(ids) {
			t.Fatalf("got %v, want %v", got, ids)
		}
		for i := range ids {
			if got[i] != ids[i] {
				t.Errorf("index %d: got %d, want %d", i, got[i], ids[i])
			}
		}
	}
}

func TestDecodeRecordTruncated(t *testing.T) {
	full := EncodeRecord([]PostingID{1, 2, 3})
	if _, err := DecodeRecord(bytes.NewReader(full[:len(full)-1])); err != ErrCorruptRecord {
		t.Fatalf("DecodeRecord(truncated) error = %v, want ErrCorruptRecord", err)
	}
}

func TestEncodeRecordConcatenation(t *testing.T) {
	// Two records written back to back must each decode independently from
	// a single shared reader, since that is how the postings file packs
	// them — this is what makes the format "self-delimited".
	var buf bytes.Buffer
	buf.Write(EncodeRecord([]PostingID{1, 2}))
	buf.Write(EncodeRecord([]PostingID{10, 20, 30}))

	first, err := DecodeRecord(&buf)
	if err != nil {
		t.Fatalf("first record: %v", err)
	}
	second, err := DecodeRecord(&buf)
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if got := first.ToList(); len(got) != 2 {
		t.Fatalf("first record = %v, want 2 ids", got)
	}
	if got := second.ToList(); len(got) != 3 {
		t.Fatalf("second record = %v, want 3 ids", got)
	}
}
