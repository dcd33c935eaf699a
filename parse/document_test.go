package parse

import "testing"

func TestParseInPlaceMutatesCaller(t *testing.T) {
	data := []byte(`[a\nb]`)
	doc := ParseInPlace(data)
	if err := doc.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Root().Child(0).String(); got != "a\nb" {
		t.Fatalf("got %q, want %q", got, "a\nb")
	}
	if got := string(data[:4]); got != "[a\nb" {
		t.Errorf("caller's buffer: got %q, want the escape collapsed in place to %q", got, "[a\nb")
	}
}

func TestParseTextDoesNotMutateInput(t *testing.T) {
	const src = `[a\nb]`
	doc := ParseText(src)
	if err := doc.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != `[a\nb]` {
		t.Fatalf("ParseText's copy leaked a mutation back to a Go string constant, which should be impossible")
	}
}

func TestDocumentSize(t *testing.T) {
	doc := ParseText(`[a b c]`)
	if doc.Size() <= 0 {
		t.Fatalf("expected a positive arena size, got %d", doc.Size())
	}
}

func TestDocumentErrNilOnSuccess(t *testing.T) {
	doc := ParseText(`[ok]`)
	if err := doc.Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
