package parse

import "testing"

func printAll(t *testing.T, c Cursor, opts PrintOpts) string {
	t.Helper()
	needed, fit := c.Print(nil, opts)
	buf := make([]byte, needed+1)
	n, fit2 := c.Print(buf, opts)
	if !fit2 {
		t.Fatalf("second pass should fit a buffer sized to the first pass's reported need (needed=%d, fit=%v)", needed, fit)
	}
	if n != needed {
		t.Fatalf("needed length changed between passes: %d vs %d", needed, n)
	}
	return string(buf[:n])
}

func TestPrintBracketedRoundTrip(t *testing.T) {
	tests := []string{
		`[a b c]`,
		`[recipe [name Pancakes] [serves 4]]`,
		`[]`,
		`[a [] b]`,
	}
	for _, in := range tests {
		doc := ParseText(in)
		if err := doc.Err(); err != nil {
			t.Fatalf("%q: unexpected parse error: %v", in, err)
		}
		got := printAll(t, doc.Root(), PrintOpts{Bracketed: true})
		if got != in {
			t.Errorf("round trip mismatch: got %q, want %q", got, in)
		}
	}
}

func TestPrintEscaping(t *testing.T) {
	doc := ParseText(`[a\[b\]c\|d\\e]`)
	if err := doc.Err(); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	leaf := doc.Root().Child(0)
	if want := "a[b]c|d\\e"; leaf.String() != want {
		t.Fatalf("collapsed value: got %q, want %q", leaf.String(), want)
	}
	got := printAll(t, doc.Root(), PrintOpts{Bracketed: true})
	want := `[a\[b\]c\|d\\e]`
	if got != want {
		t.Errorf("escaped print: got %q, want %q", got, want)
	}
}

func TestPrintNonBracketedFlattensNestedLists(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`[]`, ``},
		{`[test]`, `test`},
		{`[this [is [a [test]]]]`, `this is a test`},
		{`[a [b c] d]`, `a b c d`},
	}
	for _, tt := range tests {
		doc := ParseText(tt.in)
		if err := doc.Err(); err != nil {
			t.Fatalf("%q: unexpected parse error: %v", tt.in, err)
		}
		got := printAll(t, doc.Root(), PrintOpts{Bracketed: false})
		if got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrintClampsToBufferSize(t *testing.T) {
	doc := ParseText(`[aaaa bbbb cccc]`)
	needed, fit := doc.Root().Print(nil, PrintOpts{Bracketed: true})
	if fit {
		t.Fatalf("a nil destination should never fit")
	}
	small := make([]byte, 5)
	n, fit2 := doc.Root().Print(small, PrintOpts{Bracketed: true})
	if fit2 {
		t.Fatalf("expected truncation into a 5-byte buffer")
	}
	if n != needed {
		t.Fatalf("reported needed length should be stable regardless of truncation: got %d, want %d", n, needed)
	}
}

func TestPrintNullCursor(t *testing.T) {
	var c Cursor
	buf := make([]byte, 16)
	needed, fit := c.Print(buf, PrintOpts{Bracketed: true})
	if needed != 0 || !fit {
		t.Fatalf("printing the null cursor should write nothing: needed=%d fit=%v", needed, fit)
	}
}
