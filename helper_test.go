package classpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZenLiuCN/fn"
)

// writeTree lays out files (slash separated relative names) under a fresh
// temporary directory.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		fn.Panic(os.MkdirAll(filepath.Dir(p), 0o755))
		fn.Panic(os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

// packFixture packs files into a fresh jar and returns its path.
func packFixture(t *testing.T, files map[string]string) string {
	t.Helper()
	jar := filepath.Join(t.TempDir(), "extra.jar")
	fn.Panic(Pack(writeTree(t, files), jar))
	return jar
}
