package classpath

import (
	"io"
	"net/url"
	"slices"
)

type (
	//Loader is one node of a loader hierarchy, this interface may be implemented outside this package.
	//
	//A Loader resolves a resource by searching its own entries in order, then
	//delegating to its parent. The chain of parents is finite and acyclic by
	//contract; see [Hierarchy].
	Loader interface {
		Name() string                            //identity of this loader, used in diagnostics
		Parent() Loader                          //the next loader of the chain, nil at the root
		URLs() []*url.URL                        //snapshot of the current search path entries
		Open(name string) (io.ReadCloser, error) //resolve a resource by slash separated name, throws ErrMissingResource
	}
	//Modifiable is a Loader accepting new search path entries.
	//
	//Appending extends the loader's effective search path for the remainder of
	//its life, there is no entry removal. Appends are not synchronized, callers
	//sharing one Modifiable between goroutines must serialize externally.
	Modifiable interface {
		Loader
		AddURL(u *url.URL) error //append one locator, throws IncompatibleError when the locator is rejected
	}
	//URLLoader is the default Modifiable over jar archive and directory entries.
	URLLoader struct {
		name   string
		parent Loader
		urls   []*url.URL
	}
	//FixedLoader is an immutable root loader over a baked in set of entries.
	FixedLoader struct {
		name string
		urls []*url.URL
	}
)

// NewURLLoader create a modifiable loader with the given parent and initial entries.
func NewURLLoader(name string, parent Loader, urls ...*url.URL) *URLLoader {
	return &URLLoader{name: name, parent: parent, urls: slices.Clone(urls)}
}

func (s *URLLoader) Name() string {
	return s.name
}
func (s *URLLoader) Parent() Loader {
	return s.parent
}
func (s *URLLoader) URLs() []*url.URL {
	return slices.Clone(s.urls)
}
func (s *URLLoader) AddURL(u *url.URL) error {
	if u == nil || u.Scheme != "file" || u.Path == "" {
		return &IncompatibleError{Loader: s, URL: u}
	}
	s.urls = append(s.urls, u)
	return nil
}
func (s *URLLoader) Open(name string) (io.ReadCloser, error) {
	return open(s, name)
}

// NewFixedLoader create an immutable parentless loader over the given entries.
func NewFixedLoader(name string, urls ...*url.URL) *FixedLoader {
	return &FixedLoader{name: name, urls: slices.Clone(urls)}
}

func (s *FixedLoader) Name() string {
	return s.name
}
func (s *FixedLoader) Parent() Loader {
	return nil
}
func (s *FixedLoader) URLs() []*url.URL {
	return slices.Clone(s.urls)
}
func (s *FixedLoader) Open(name string) (io.ReadCloser, error) {
	return open(s, name)
}
