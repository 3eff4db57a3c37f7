package booleanops

import (
	"errors"
	"testing"

	"github.com/anchortide/govirgo/postinglist"
)

func ids(xs ...postinglist.PostingID) *postinglist.SkipList {
	return postinglist.BuildFrom(xs)
}

func assertList(t *testing.T, got *postinglist.SkipList, want []postinglist.PostingID) {
	t.Helper()
	gotList := got.ToList()
	if len(gotList) != len(want) {
		t.Fatalf("got %v, want %v", gotList, want)
	}
	for i := range want {
		if gotList[i] != want[i] {
			t.Fatalf("got %v, want %v", gotList, want)
		}
	}
}

func TestUnion(t *testing.T) {
	cases := []struct {
		name string
		a, b *postinglist.SkipList
		want []postinglist.PostingID
	}{
		{"disjoint", ids(1, 3, 5), ids(2, 4, 6), []postinglist.PostingID{1, 2, 3, 4, 5, 6}},
		{"overlap", ids(1, 2, 3), ids(2, 3, 4), []postinglist.PostingID{1, 2, 3, 4}},
		{"empty-a", ids(), ids(1, 2), []postinglist.PostingID{1, 2}},
		{"empty-both", ids(), ids(), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertList(t, Union(c.a, c.b), c.want)
		})
	}
}

func TestIntersect(t *testing.T) {
	cases := []struct {
		name string
		a, b *postinglist.SkipList
		want []postinglist.PostingID
	}{
		{"overlap", ids(1, 2, 3, 4), ids(2, 4, 6), []postinglist.PostingID{2, 4}},
		{"disjoint", ids(1, 3, 5), ids(2, 4, 6), nil},
		{"identical", ids(1, 2, 3), ids(1, 2, 3), []postinglist.PostingID{1, 2, 3}},
		{"empty", ids(), ids(1, 2), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertList(t, Intersect(c.a, c.b), c.want)
		})
	}
}

func TestIntersectLargeWithSkips(t *testing.T) {
	var a []postinglist.PostingID
	for i := 0; i < 100; i++ {
		a = append(a, postinglist.PostingID(i))
	}
	b := []postinglist.PostingID{0, 25, 50, 75, 99}
	got := Intersect(postinglist.BuildFrom(a), postinglist.BuildFrom(b))
	assertList(t, got, b)
}

func TestComplement(t *testing.T) {
	universe := ids(1, 2, 3, 4, 5)
	x := ids(2, 4)
	got, err := Complement(x, universe)
	if err != nil {
		t.Fatalf("Complement: %v", err)
	}
	assertList(t, got, []postinglist.PostingID{1, 3, 5})
}

func TestComplementEmptyOperand(t *testing.T) {
	universe := ids(1, 2, 3)
	got, err := Complement(ids(), universe)
	if err != nil {
		t.Fatalf("Complement: %v", err)
	}
	assertList(t, got, []postinglist.PostingID{1, 2, 3})
}

func TestComplementNotSubsetIsCorruptIndex(t *testing.T) {
	universe := ids(1, 2, 3)
	x := ids(4) // not present in universe at all
	_, err := Complement(x, universe)
	if !errors.Is(err, ErrCorruptIndex) {
		t.Fatalf("error = %v, want ErrCorruptIndex", err)
	}
}
