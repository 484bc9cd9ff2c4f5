package classpath

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/ZenLiuCN/fn"
)

func TestPackAndEntries(t *testing.T) {
	files := map[string]string{"a.txt": "a", "sub/b.txt": "b"}
	dir := writeTree(t, files)
	jar := filepath.Join(t.TempDir(), "packed.jar")
	fn.Panic(Pack(dir, jar))
	want := []string{"a.txt", "sub/b.txt"}

	got := fn.Panic1(Entries(fn.Panic1(FileURL(jar))))
	slices.Sort(got)
	if !slices.Equal(got, want) {
		t.Fatalf("archive entries %v", got)
	}

	got = fn.Panic1(Entries(fn.Panic1(FileURL(dir))))
	slices.Sort(got)
	if !slices.Equal(got, want) {
		t.Fatalf("directory entries %v", got)
	}
}

func TestEntriesMissingLocator(t *testing.T) {
	if _, err := Entries(fn.Panic1(FileURL(filepath.Join(t.TempDir(), "gone.jar")))); err == nil {
		t.Fatal("expected error")
	}
}

func TestImportList(t *testing.T) {
	for out, want := range map[string][]string{
		"":           nil,
		"[]":         nil,
		"[fmt time]": {"fmt", "time"},
	} {
		if got := importList(out); !slices.Equal(got, want) {
			t.Fatalf("%q: got %v want %v", out, got, want)
		}
	}
}

func TestPackedEntryResolvable(t *testing.T) {
	jar := packFixture(t, map[string]string{"pkg/res.txt": "payload"})
	l := NewURLLoader("app", nil, fn.Panic1(FileURL(jar)))
	if s := readAll(t, l, "pkg/res.txt"); s != "payload" {
		t.Fatalf("got %q", s)
	}
}
