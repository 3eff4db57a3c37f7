package postinglist

import "testing"

func TestBuildFromEmpty(t *testing.T) {
	sl := BuildFrom(nil)
	if sl.Length != 0 || sl.Head != nil {
		t.Fatalf("expected empty skip list, got length=%d head=%v", sl.Length, sl.Head)
	}
	if got := sl.ToList(); len(got) != 0 {
		t.Fatalf("ToList() = %v, want empty", got)
	}
}

func TestBuildFromPreservesOrder(t *testing.T) {
	ids := []PostingID{2, 5, 9, 11, 20, 21, 40}
	sl := BuildFrom(ids)

	if sl.Length != len(ids) {
		t.Fatalf("Length = %d, want %d", sl.Length, len(ids))
	}
	got := sl.ToList()
	if len(got) != len(ids) {
		t.Fatalf("ToList() length = %d, want %d", len(got), len(ids))
	}
	for i, id := range ids {
		if got[i] != id {
			t.Errorf("ToList()[%d] = %d, want %d", i, got[i], id)
		}
	}
}

func TestBuildFromSkipStride(t *testing.T) {
	// n=16 -> stride = floor(sqrt(16)) = 4. Skip sources: 0->4, 4->8, 8->12.
	// Node 12 gets no skip of its own: 12+4=16 is not < 16, so its target
	// would overrun the list — it is a skip target, not a source.
	ids := make([]PostingID, 16)
	for i := range ids {
		ids[i] = PostingID(i * 10)
	}
	sl := BuildFrom(ids)

	wantSkipSources := []int{0, 4, 8}
	node := sl.Head
	idx := 0
	skipSources := map[int]bool{}
	for node != nil {
		if node.Skip != nil {
			skipSources[idx] = true
			if node.Skip.Data != ids[idx+4] {
				t.Errorf("node %d skip points to %d, want %d", idx, node.Skip.Data, ids[idx+4])
			}
		}
		node = node.Next
		idx++
	}
	if len(skipSources) != len(wantSkipSources) {
		t.Fatalf("skip sources = %v, want indices %v", skipSources, wantSkipSources)
	}
	for _, want := range wantSkipSources {
		if !skipSources[want] {
			t.Errorf("missing skip pointer at index %d", want)
		}
	}
}

func TestBuildFromNoSkipsWhenShort(t *testing.T) {
	// n=3 -> stride = 1, below the stride>=2 threshold, so no skip pointers.
	sl := BuildFrom([]PostingID{1, 2, 3})
	for n := sl.Head; n != nil; n = n.Next {
		if n.Skip != nil {
			t.Fatalf("short list should carry no skip pointers, found one at %d", n.Data)
		}
	}
}
