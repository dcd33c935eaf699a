package parse

import "testing"

func leaf(t *testing.T, value string) Cursor {
	t.Helper()
	return ParseText("[" + value + "]").Root().Child(0)
}

func TestIntLenient(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12", 12},
		{"12px", 12},
		{"-7", -7},
		{"+3", 3},
		{"abc", 0},
		{"", 0},
	}
	for _, tt := range tests {
		got := leaf(t, tt.in).Int()
		if got != tt.want {
			t.Errorf("Int(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDoubleLenient(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3.5", 3.5},
		{"3.5em", 3.5},
		{"-2.25", -2.25},
		{"4", 4},
		{"abc", 0},
	}
	for _, tt := range tests {
		got := leaf(t, tt.in).Double()
		if got != tt.want {
			t.Errorf("Double(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIntsArray(t *testing.T) {
	doc := ParseText(`[10 20px 30 abc]`)
	got := doc.Root().Ints(0)
	want := []int{10, 20, 30, 0}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestIntsArrayCapped(t *testing.T) {
	doc := ParseText(`[10 20 30 40]`)
	got := doc.Root().Ints(2)
	if len(got) != 2 {
		t.Fatalf("got %d values, want 2", len(got))
	}
	if got[0] != 10 || got[1] != 20 {
		t.Errorf("got %v, want [10 20]", got)
	}
}
