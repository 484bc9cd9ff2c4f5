package classpath

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

// open searches l's own entries in order then delegates to the parent.
func open(l Loader, name string) (io.ReadCloser, error) {
	for _, u := range l.URLs() {
		r, err := openEntry(u, name)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, ErrMissingResource) {
			return nil, err
		}
	}
	if p := l.Parent(); p != nil {
		return p.Open(name)
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingResource, name)
}

// openEntry resolves name against one locator, a directory or a jar archive.
func openEntry(u *url.URL, name string) (io.ReadCloser, error) {
	p, err := FilePath(u)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(p)
	if err != nil {
		// absent entries are skipped, not fatal
		return nil, fmt.Errorf("%w: %s", ErrMissingResource, name)
	}
	if fi.IsDir() {
		f, err := os.Open(filepath.Join(p, filepath.FromSlash(name)))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingResource, name)
		}
		if st, err := f.Stat(); err != nil || st.IsDir() {
			_ = f.Close()
			return nil, fmt.Errorf("%w: %s", ErrMissingResource, name)
		}
		return f, nil
	}
	return openArchive(p, name)
}

func openArchive(p, name string) (io.ReadCloser, error) {
	z, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", p, err)
	}
	for _, f := range z.File {
		if f.Name == name {
			r, err := f.Open()
			if err != nil {
				_ = z.Close()
				return nil, err
			}
			return &archiveResource{ReadCloser: r, owner: z}, nil
		}
	}
	_ = z.Close()
	return nil, fmt.Errorf("%w: %s", ErrMissingResource, name)
}

// archiveResource keeps the archive open until the resource is closed.
type archiveResource struct {
	io.ReadCloser
	owner *zip.ReadCloser
}

func (a *archiveResource) Close() error {
	err := a.ReadCloser.Close()
	if e := a.owner.Close(); err == nil {
		err = e
	}
	return err
}

// IsArchive reports whether a locator names a jar or zip archive.
func IsArchive(u *url.URL) bool {
	if u == nil {
		return false
	}
	switch strings.ToLower(filepath.Ext(u.Path)) {
	case ".jar", ".zip":
		return true
	}
	return false
}
