package classpath

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var (
	// ErrInvalidPath occurs when an input can not coerce to a filesystem path.
	ErrInvalidPath = errors.New("invalid path")
	// ErrMissingResource occurs when no entry of the hierarchy provides a resource.
	ErrMissingResource = errors.New("missing resource")
	// ErrNoModifiableLoader occurs when a hierarchy holds no loader accepting new entries.
	ErrNoModifiableLoader = errors.New("no modifiable loader found")
	// ErrIncompatibleLoader occurs when a loader rejects an entry or lacks the modifiable capability.
	ErrIncompatibleLoader = errors.New("incompatible loader")
	// ErrAlreadyLinked occurs when a CodeLoader already linked an entry for the same package path.
	ErrAlreadyLinked = errors.New("already linked package")
	// ErrMissingSymbol occurs when a CodeLoader can't find a symbol or package.
	ErrMissingSymbol = errors.New("missing symbol")
)

// NoModifiableError carries the full hierarchy snapshot of a failed target selection.
type NoModifiableError struct {
	Chain []Loader
}

func (e *NoModifiableError) Error() string {
	b := strings.Builder{}
	b.WriteString(ErrNoModifiableLoader.Error())
	b.WriteString(" in [")
	for i, l := range e.Chain {
		if i > 0 {
			b.WriteString(" <- ")
		}
		b.WriteString(l.Name())
	}
	b.WriteString("]")
	return b.String()
}
func (e *NoModifiableError) Unwrap() error {
	return ErrNoModifiableLoader
}

// Dump the hierarchy snapshot for diagnostics.
func (e *NoModifiableError) Dump() string {
	return spew.Sdump(e.Chain)
}

// IncompatibleError names the loader that refused an append, Cause holds the
// underlying rejection when one exists.
type IncompatibleError struct {
	Loader Loader
	URL    *url.URL
	Cause  error
}

func (e *IncompatibleError) Error() string {
	s := fmt.Sprintf("%s %q rejects %v", ErrIncompatibleLoader.Error(), e.Loader.Name(), e.URL)
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}
func (e *IncompatibleError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrIncompatibleLoader, e.Cause}
	}
	return []error{ErrIncompatibleLoader}
}
