package classpath

import (
	"net/url"
)

// EnsureModifiable returns the root most Modifiable of c's hierarchy,
// synthesizing and installing a new URLLoader parented to the current loader
// when the hierarchy holds none.
//
// Installing mutates c's active loader slot, that is the deliberate side
// effect making later appends succeed. The operation is idempotent: a second
// call observes the loader just created and creates nothing further.
func EnsureModifiable(c *Context) Modifiable {
	var last Modifiable
	for l := range Hierarchy(c.Current()) {
		if m, ok := l.(Modifiable); ok {
			last = m
		}
	}
	if last != nil {
		return last
	}
	m := NewURLLoader("classpath", c.Current())
	c.Install(m)
	return m
}

// ModifiableOf selects the root most Modifiable of the chain starting at l.
//
// The root most match is kept rather than the nearest so appended entries are
// visible to the widest set of dependent loaders. Failure carries the full
// hierarchy snapshot as a NoModifiableError.
func ModifiableOf(l Loader) (Modifiable, error) {
	chain := Chain(l)
	var last Modifiable
	for _, x := range chain {
		if m, ok := x.(Modifiable); ok {
			last = m
		}
	}
	if last == nil {
		return nil, &NoModifiableError{Chain: chain}
	}
	return last, nil
}

// AddEntry converts path into a locator and appends it.
//
// Without an explicit target the context's hierarchy is ensured to hold a
// Modifiable and the root most one receives the entry. An explicit target
// lacking the modifiable capability fails with IncompatibleError.
func AddEntry(c *Context, path string, target ...Loader) error {
	u, err := FileURL(path)
	if err != nil {
		return err
	}
	return AddURL(c, u, target...)
}

// AddURL appends an already converted locator, see AddEntry.
func AddURL(c *Context, u *url.URL, target ...Loader) error {
	var l Loader
	if len(target) > 0 && target[0] != nil {
		l = target[0]
	} else {
		EnsureModifiable(c)
		m, err := ModifiableOf(c.Current())
		if err != nil {
			return err
		}
		l = m
	}
	m, ok := l.(Modifiable)
	if !ok {
		return &IncompatibleError{Loader: l, URL: u}
	}
	return m.AddURL(u)
}
