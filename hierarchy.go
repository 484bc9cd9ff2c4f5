package classpath

import "iter"

// Hierarchy yields l then each ancestor in turn, stopping at the first loader
// without a parent. The underlying chain is acyclic by contract, so the
// sequence is finite and no cycle detection is performed.
func Hierarchy(l Loader) iter.Seq[Loader] {
	return func(yield func(Loader) bool) {
		for x := l; x != nil; x = x.Parent() {
			if !yield(x) {
				return
			}
		}
	}
}

// Chain snapshots Hierarchy of l into a slice, tip first.
func Chain(l Loader) (c []Loader) {
	for x := range Hierarchy(l) {
		c = append(c, x)
	}
	return
}
