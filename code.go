package classpath

import (
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"slices"
	"strings"
	"unsafe"

	"github.com/pkujhd/goloader"
)

type (
	//Sym is a simple alias of uintptr.
	Sym uintptr
	//CodeLoader is a Modifiable whose entries are relocatable object files or
	//serialized linker files, linked into the process at append time.
	//
	//Use Steps:
	//
	//	1. NewCodeLoader to create the loader, optionally as part of a hierarchy.
	//	2. AddURL or AddLinkable to link entries, tag the go package path as the
	//	   locator's URL fragment (file:///x/f.o#sample), default is main.
	//	3. Fetch or MustFetch symbols and cast them via As.
	//	4. Call [CodeLoader.Free] to release the resources.
	//
	//Note:
	//
	//	1. Must fetch and use one symbol as desired type inside one specific goroutine.
	//	2. CodeLoader itself can be used safe between goroutines, but not thread-safe.
	CodeLoader struct {
		name    string
		parent  Loader
		urls    []*url.URL
		syms    map[string]uintptr
		linked  []*linkedEntry
		modules map[string]*linkedEntry //by package path
		debug   bool
	}
	linkedEntry struct {
		url    *url.URL
		pkg    string
		linker *goloader.Linker
		module *goloader.CodeModule
	}
)

// NewCodeLoader create a code loader registering the executable's own symbols,
// an optional debug parameter will enable debug logging.
func NewCodeLoader(name string, parent Loader, debug ...bool) (*CodeLoader, error) {
	s := &CodeLoader{
		name:    name,
		parent:  parent,
		syms:    make(map[string]uintptr),
		modules: make(map[string]*linkedEntry),
	}
	s.debug = len(debug) > 0 && debug[0]
	if err := goloader.RegSymbol(s.syms); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CodeLoader) Name() string {
	return s.name
}
func (s *CodeLoader) Parent() Loader {
	return s.parent
}
func (s *CodeLoader) URLs() []*url.URL {
	return slices.Clone(s.urls)
}

// Open delegates to the parent, object entries carry no resources.
func (s *CodeLoader) Open(name string) (io.ReadCloser, error) {
	if s.parent != nil {
		return s.parent.Open(name)
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingResource, name)
}

// RegisterTypes record concrete types whose method sets the linked code may need.
func (s *CodeLoader) RegisterTypes(t ...any) {
	goloader.RegTypes(s.syms, t...)
}

// AddURL link one object file entry, throws ErrAlreadyLinked when the entry's
// package path is already linked.
func (s *CodeLoader) AddURL(u *url.URL) (err error) {
	var file string
	if file, err = FilePath(u); err != nil {
		return &IncompatibleError{Loader: s, URL: u, Cause: err}
	}
	pkg := u.Fragment
	if pkg == "" {
		pkg = "main"
	}
	if _, ok := s.modules[pkg]; ok {
		return ErrAlreadyLinked
	}
	e := &linkedEntry{url: u, pkg: pkg}
	if e.linker, err = goloader.ReadObj(file, pkg); err != nil {
		return
	}
	if e.module, err = goloader.Load(e.linker, s.syms); err != nil {
		return
	}
	if s.debug {
		log.Printf("linked %s from %s", pkg, file)
	}
	s.register(e)
	return
}

// AddLinkable link a serialized linker, which may hold several packages.
func (s *CodeLoader) AddLinkable(u *url.URL, in io.Reader) (err error) {
	e := &linkedEntry{url: u}
	if e.linker, err = goloader.UnSerialize(in); err != nil {
		return
	}
	for _, pkg := range e.linker.Packages {
		if _, ok := s.modules[pkg.PkgPath]; ok {
			return ErrAlreadyLinked
		}
		e.pkg = pkg.PkgPath
	}
	if e.module, err = goloader.Load(e.linker, s.syms); err != nil {
		return
	}
	if s.debug {
		log.Printf("linked serialized %v", u)
	}
	s.register(e)
	for _, pkg := range e.linker.Packages {
		s.modules[pkg.PkgPath] = e
	}
	return
}

func (s *CodeLoader) register(e *linkedEntry) {
	for sym, p := range e.module.Syms {
		if _, ok := s.syms[sym]; !ok {
			s.syms[sym] = p
		}
	}
	if e.url != nil {
		s.urls = append(s.urls, e.url)
	}
	s.linked = append(s.linked, e)
	s.modules[e.pkg] = e
}

// Fetch a linked symbol as Sym which can cast to the desired type via As.
// A name without a package prefix defaults to package main.
func (s *CodeLoader) Fetch(sym string) (u Sym, ok bool) {
	sym = checkPackage(sym)
	for _, e := range s.linked {
		var p uintptr
		if p, ok = e.module.Syms[sym]; ok {
			if s.debug {
				log.Printf("found symbol: %x", p)
			}
			return (Sym)(unsafe.Pointer(&p)), true
		}
	}
	return 0, false
}

// MustFetch a linked symbol, throws ErrMissingSymbol.
func (s *CodeLoader) MustFetch(sym string) Sym {
	u, ok := s.Fetch(sym)
	if !ok {
		panic(ErrMissingSymbol)
	}
	return u
}

func checkPackage(sym string) string {
	if strings.IndexByte(sym, '.') < 0 {
		return "main." + sym
	}
	return sym
}

// MissingSymbols dump the unresolved symbols over all linked entries.
func (s *CodeLoader) MissingSymbols() (miss []string) {
	for _, e := range s.linked {
		miss = append(miss, goloader.UnresolvedSymbols(e.linker, s.syms)...)
	}
	return
}

// Serialize write the linker of one package to an output binary format [gob]
// which may be linked again by AddLinkable.
func (s *CodeLoader) Serialize(pkg string, out io.Writer) error {
	e, ok := s.modules[pkg]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingSymbol, pkg)
	}
	return goloader.Serialize(e.linker, out)
}

// Free unload every linked entry in reverse order and unregister their
// symbols, sync parameter to sync the stdout or not.
func (s *CodeLoader) Free(sync bool) {
	if sync {
		_ = os.Stdout.Sync()
	}
	for i := len(s.linked) - 1; i >= 0; i-- {
		e := s.linked[i]
		for sym, p := range e.module.Syms {
			if x, ok := s.syms[sym]; ok && x == p {
				delete(s.syms, sym)
			}
		}
		e.module.Unload()
		// a linkable entry may be registered under several package paths
		for pkg, x := range s.modules {
			if x == e {
				delete(s.modules, pkg)
			}
		}
	}
	s.linked = nil
	s.urls = nil
}

// As convert fetched Sym to contract type.
func As[T any](ptr Sym) (x T) {
	px := (*T)(unsafe.Pointer(&ptr))
	x = *px
	return
}

// Inspect display symbols inside an object file.
func Inspect(file, pkg string) ([]string, error) {
	return goloader.Parse(file, pkg)
}
