package parse

import "testing"

func TestStreamPop(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenKind
	}{
		{"empty", "", []TokenKind{tokenEOF}},
		{"brackets", "[]", []TokenKind{tokenOpen, tokenClose, tokenEOF}},
		{"items", "a b c", []TokenKind{tokenItem, tokenItem, tokenItem, tokenEOF}},
		{"divider", "a | b", []TokenKind{tokenItem, tokenDivider, tokenItem, tokenEOF}},
		{"mixed", "[a [b c] d]", []TokenKind{
			tokenOpen, tokenItem, tokenOpen, tokenItem, tokenItem, tokenClose, tokenItem, tokenClose, tokenEOF,
		}},
		{"comment", "a || this is ignored\nb", []TokenKind{tokenItem, tokenItem, tokenEOF}},
		{"eof-is-sticky", "a", []TokenKind{tokenItem, tokenEOF, tokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := open([]byte(tt.input))
			for i, want := range tt.want {
				got := s.pop()
				if got.kind != want {
					t.Fatalf("token %d: got kind %v, want %v", i, got.kind, want)
				}
			}
		})
	}
}

func TestScanItemEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`hello`, "hello"},
		{`a\nb`, "a\nb"},
		{`a\rb`, "a\rb"},
		{`a\tb`, "a\tb"},
		{`a\sb`, "a b"},
		{`a\?b`, "a\x01b"},
		{`a\*b`, "a\x02b"},
		{`a\qb`, "aqb"}, // unrecognized escape passes through literally
		{`a\\b`, `a\b`},
	}
	for _, tt := range tests {
		s := open([]byte(tt.input))
		tok := s.pop()
		if tok.kind != tokenItem {
			t.Fatalf("%q: expected an item token, got %v", tt.input, tok.kind)
		}
		if string(tok.value) != tt.want {
			t.Errorf("%q: got %q, want %q", tt.input, tok.value, tt.want)
		}
	}
}

func TestScanItemTrailingBackslashEOF(t *testing.T) {
	s := open([]byte(`abc\`))
	tok := s.pop()
	if tok.kind != tokenItem || string(tok.value) != "abc" {
		t.Fatalf("got kind %v value %q, want item %q", tok.kind, tok.value, "abc")
	}
	if eof := s.pop(); eof.kind != tokenEOF {
		t.Fatalf("expected EOF after dangling escape, got %v", eof.kind)
	}
}

func TestItemBoundaries(t *testing.T) {
	s := open([]byte(`a[b]c|d e`))
	var kinds []TokenKind
	var values []string
	for {
		tok := s.pop()
		kinds = append(kinds, tok.kind)
		if tok.kind == tokenItem {
			values = append(values, string(tok.value))
		}
		if tok.kind == tokenEOF {
			break
		}
	}
	wantValues := []string{"a", "b", "c", "d", "e"}
	if len(values) != len(wantValues) {
		t.Fatalf("got %d items %v, want %d %v", len(values), values, len(wantValues), wantValues)
	}
	for i := range values {
		if values[i] != wantValues[i] {
			t.Errorf("item %d: got %q, want %q", i, values[i], wantValues[i])
		}
	}
}
