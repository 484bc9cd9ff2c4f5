/*
Package classpath mutates the set of search path entries (jar archives or
directories) visible to a process's loader hierarchy, and temporarily scopes
such mutations within a block of execution.

# License

Source codes are under Apache License Version 2.0.

# Model

 1. A loader hierarchy is a singly linked chain of [Loader], iterated tip
    first by [Hierarchy] and terminating at the first loader without a parent.
 2. Only a [Modifiable] loader accepts new entries. [EnsureModifiable]
    synthesizes one when a [Context]'s chain holds none, and appends always
    target the root most modifiable loader so that new entries are visible to
    the widest set of dependent loaders.
 3. [WithEntries] installs a temporary loader over exactly the supplied
    paths for the duration of a block and reinstalls the prior loader on every
    exit path, including panic.

# Notes

 1. A [Context] models one goroutine's active loader slot. Contexts are not
    synchronized; callers sharing a Modifiable across goroutines must
    serialize appends themselves.
 2. Appends are permanent for the life of the loader. There is no entry
    removal.
 3. [CodeLoader] entries are relocatable object files linked at append time
    via [goloader]. Per goloader's limitation only exported functions can
    link, and a fetched [Sym] must be cast and used in place.

# Companion tool

The cptool command converts paths to locators, lists and packs jar entries,
resolves resources, and compiles go sources into object files loadable by
[CodeLoader]:

	go install github.com/ZenLiuCN/classpath/cptool@latest

# Samples

See tests.

[goloader]: https://github.com/pkujhd/goloader
*/
package classpath
