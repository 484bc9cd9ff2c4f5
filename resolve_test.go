package classpath

import (
	"errors"
	"io"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/ZenLiuCN/fn"
)

func readAll(t *testing.T, l Loader, name string) string {
	t.Helper()
	r := fn.Panic1(l.Open(name))
	defer fn.IgnoreClose(r)
	return string(fn.Panic1(io.ReadAll(r)))
}

func TestOpenDirectoryEntry(t *testing.T) {
	dir := writeTree(t, map[string]string{"sample/data.txt": "dir data"})
	l := NewURLLoader("app", nil, fn.Panic1(FileURL(dir)))
	if s := readAll(t, l, "sample/data.txt"); s != "dir data" {
		t.Fatalf("got %q", s)
	}
}

func TestOpenArchiveEntry(t *testing.T) {
	jar := packFixture(t, map[string]string{"sample/data.txt": "jar data"})
	l := NewURLLoader("app", nil, fn.Panic1(FileURL(jar)))
	if s := readAll(t, l, "sample/data.txt"); s != "jar data" {
		t.Fatalf("got %q", s)
	}
}

func TestOpenParentFallthrough(t *testing.T) {
	dir := writeTree(t, map[string]string{"only/in/parent.txt": "parent"})
	root := NewFixedLoader("system", fn.Panic1(FileURL(dir)))
	tip := NewURLLoader("scoped", root)
	if s := readAll(t, tip, "only/in/parent.txt"); s != "parent" {
		t.Fatalf("got %q", s)
	}
}

func TestOpenEntryOrder(t *testing.T) {
	a := writeTree(t, map[string]string{"data.txt": "first"})
	b := writeTree(t, map[string]string{"data.txt": "second"})
	l := NewURLLoader("app", nil, fn.Panic1(FileURL(a)), fn.Panic1(FileURL(b)))
	if s := readAll(t, l, "data.txt"); s != "first" {
		t.Fatalf("got %q", s)
	}
}

func TestOpenOwnBeforeParent(t *testing.T) {
	parent := writeTree(t, map[string]string{"data.txt": "parent"})
	child := writeTree(t, map[string]string{"data.txt": "child"})
	root := NewFixedLoader("system", fn.Panic1(FileURL(parent)))
	tip := NewURLLoader("scoped", root, fn.Panic1(FileURL(child)))
	if s := readAll(t, tip, "data.txt"); s != "child" {
		t.Fatalf("got %q", s)
	}
}

func TestOpenMissing(t *testing.T) {
	_, _, tip := testChain()
	if _, err := tip.Open("absent.txt"); !errors.Is(err, ErrMissingResource) {
		t.Fatalf("unexpected %v", err)
	}
}

func TestOpenSkipsAbsentEntry(t *testing.T) {
	gone := fn.Panic1(FileURL(filepath.Join(t.TempDir(), "removed.jar")))
	dir := writeTree(t, map[string]string{"data.txt": "alive"})
	l := NewURLLoader("app", nil, gone, fn.Panic1(FileURL(dir)))
	if s := readAll(t, l, "data.txt"); s != "alive" {
		t.Fatalf("got %q", s)
	}
}

func TestOpenDirectoryAsResource(t *testing.T) {
	dir := writeTree(t, map[string]string{"sub/data.txt": "x"})
	l := NewURLLoader("app", nil, fn.Panic1(FileURL(dir)))
	if _, err := l.Open("sub"); !errors.Is(err, ErrMissingResource) {
		t.Fatalf("unexpected %v", err)
	}
}

func TestIsArchive(t *testing.T) {
	for p, want := range map[string]bool{
		"/tmp/extra.jar": true,
		"/tmp/extra.ZIP": true,
		"/tmp/classes":   false,
	} {
		if got := IsArchive(&url.URL{Scheme: "file", Path: p}); got != want {
			t.Fatalf("%s: got %v", p, got)
		}
	}
	if IsArchive(nil) {
		t.Fatal("nil locator")
	}
}
