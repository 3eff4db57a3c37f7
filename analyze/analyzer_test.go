package analyze

import "testing"

func TestDocumentPipeline(t *testing.T) {
	got := Document("The Quick Brown Foxes Jumped!")
	want := []string{"quick", "brown", "fox", "jump"}
	if len(got) != len(want) {
		t.Fatalf("Document() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDocumentWithConfigNoStopwords(t *testing.T) {
	got := DocumentWithConfig("the dog and the cat", Config{EnableStopwords: false})
	want := []string{"the", "dog", "and", "the", "cat"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTerm(t *testing.T) {
	cases := map[string]string{
		"Running": "run",
		"DOGS":    "dog",
	}
	for in, want := range cases {
		if got := Term(in); got != want {
			t.Errorf("Term(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTokenizeUnicodeAndDigits(t *testing.T) {
	got := tokenize("price: $9.99, café!")
	want := []string{"price", "9", "99", "café"}
	if len(got) != len(want) {
		t.Fatalf("tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsStopword(t *testing.T) {
	if !isStopword("the") {
		t.Error("expected \"the\" to be a stopword")
	}
	if isStopword("dog") {
		t.Error("did not expect \"dog\" to be a stopword")
	}
}
