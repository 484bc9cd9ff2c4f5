package classpath

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZenLiuCN/fn"
	"github.com/klauspost/compress/zip"
)

// Entries lists the resource names available under a locator, a directory is
// walked recursively, an archive is read in place.
func Entries(u *url.URL) (names []string, err error) {
	p, err := FilePath(u)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		err = filepath.Walk(p, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(p, path)
			if err != nil {
				return err
			}
			names = append(names, filepath.ToSlash(rel))
			return nil
		})
		return
	}
	z, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", p, err)
	}
	defer fn.IgnoreClose(z)
	for _, f := range z.File {
		if !f.FileInfo().IsDir() {
			names = append(names, f.Name)
		}
	}
	return
}

// Pack archives the contents of dir into a jar at out, entry names are
// relative to dir with slash separators.
func Pack(dir, out string) (err error) {
	f, err := os.Create(out)
	if err != nil {
		return
	}
	defer fn.IgnoreClose(f)
	w := zip.NewWriter(f)
	err = filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		h, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		h.Name = filepath.ToSlash(rel)
		h.Method = zip.Deflate
		dst, err := w.CreateHeader(h)
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer fn.IgnoreClose(src)
		_, err = io.Copy(dst, src)
		return err
	})
	if err != nil {
		_ = w.Close()
		return
	}
	return w.Close()
}

// CompileObjects compiles go sources into a relocatable object file in the
// working directory, usable as a CodeLoader entry.
func CompileObjects(debug bool, sources []string) (err error) {
	if _, err = exec.LookPath("go"); err != nil {
		return fmt.Errorf("missing go sdk: %w", err)
	}
	if err = writeImportCfg(debug, sources); err != nil {
		return
	}
	cmd := exec.Command("go", append([]string{"tool", "compile", "-importcfg", "importcfg"}, sources...)...)
	if debug {
		log.Printf("execute: %v", cmd.Args)
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err = cmd.Run(); err == nil && !debug {
		err = os.Remove("importcfg")
	}
	return
}

// writeImportCfg generates the importcfg file required by the compiler,
// mapping every dependency of sources to its exported package file.
func writeImportCfg(debug bool, sources []string) (err error) {
	out, err := output(append([]string{"list", "-export", "-f", "{{.Imports}}"}, sources...)...)
	if err != nil {
		return fmt.Errorf("inspect imports: %w", err)
	}
	deps := importList(out)
	if debug {
		log.Printf("dependencies: %v", deps)
	}
	cfg, err := output(append([]string{"list", "-export", "-f",
		"{{if .Export}}packagefile {{.ImportPath}}={{.Export}}{{end}}", "std"}, deps...)...)
	if err != nil {
		return fmt.Errorf("inspect dependencies: %w", err)
	}
	return os.WriteFile("importcfg", []byte(cfg), os.ModePerm)
}

// importList parses the bracketed output of go list {{.Imports}}, an empty
// import set yields no elements rather than one empty name.
func importList(out string) []string {
	if out != "" && out[0] == '[' {
		out = out[1 : len(out)-1]
	}
	return strings.Fields(out)
}

func output(args ...string) (string, error) {
	cmd := exec.Command("go", args...)
	b, err := cmd.Output()
	if err != nil {
		if x, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%w\nerr:%s\nout:%s", err, x.Stderr, b)
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
