package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
	return path
}

func TestBundleCompileSuccess(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.tml", `[greeting hello]`)
	writeFile(t, dir, "b.tml", `[greeting bonjour]`)

	reg, err := NewBundle().AddDir(dir).Compile()
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	if len(reg.Names()) != 2 {
		t.Fatalf("got %d documents, want 2", len(reg.Names()))
	}
	doc, ok := reg.Document(filepath.Join(dir, "a.tml"))
	if !ok {
		t.Fatal("expected a.tml to be registered")
	}
	if got := doc.Root().Child(0).String(); got != "greeting" {
		t.Errorf("got %q, want greeting", got)
	}
}

func TestBundleCompileAggregatesErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.tml", `[ok]`)
	writeFile(t, dir, "bad.tml", `not a document`)

	reg, err := NewBundle().AddDir(dir).Compile()
	if err == nil {
		t.Fatal("expected a combined error from the bad file")
	}
	// Both files should still be registered, even though one failed.
	if len(reg.Names()) != 2 {
		t.Fatalf("got %d documents, want 2 (one bad file shouldn't hide the good one)", len(reg.Names()))
	}
	goodDoc, _ := reg.Document(filepath.Join(dir, "good.tml"))
	if goodDoc.Err() != nil {
		t.Errorf("good.tml should parse cleanly, got %v", goodDoc.Err())
	}
	badDoc, _ := reg.Document(filepath.Join(dir, "bad.tml"))
	if badDoc.Err() == nil {
		t.Error("bad.tml should carry a parse error")
	}
}

func TestRegistryLineCol(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "multi.tml", "[a\nb\nc]")
	reg, err := NewBundle().AddFile(path).Compile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, col := reg.LineCol(path, 3) // offset of 'b' on the second line
	if line != 2 || col != 1 {
		t.Errorf("got line=%d col=%d, want line=2 col=1", line, col)
	}
}
