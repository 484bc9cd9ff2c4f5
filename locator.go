package classpath

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// FileURL converts a path into an absolute normalized file locator.
//
// Relative input resolves against the process working directory, so two
// relative paths naming the same location yield equal locators.
func FileURL(path string) (*url.URL, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}, nil
}

// FilePath converts a file locator back into a platform path.
func FilePath(u *url.URL) (string, error) {
	if u == nil || u.Scheme != "file" || u.Path == "" {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, u)
	}
	return filepath.FromSlash(u.Path), nil
}

// FileURLs converts each path via FileURL, failing on the first bad element.
func FileURLs(paths []string) (urls []*url.URL, err error) {
	urls = make([]*url.URL, len(paths))
	for i, p := range paths {
		if urls[i], err = FileURL(p); err != nil {
			return nil, err
		}
	}
	return
}
