package classpath

// WithEntries runs block under a temporary loader over exactly the given
// paths, parented to the loader active when the call began.
//
// Every path must coerce to a locator, otherwise the call fails with
// ErrInvalidPath before anything is installed. Lookups missing the temporary
// entries fall through to the prior hierarchy. The prior loader is
// reinstalled exactly once on every exit path, including a panic inside
// block, which propagates after teardown. Nested calls compose through the
// parent chain.
func WithEntries(c *Context, paths []string, block func(scoped Loader) error) error {
	urls, err := FileURLs(paths)
	if err != nil {
		return err
	}
	original := c.Current()
	scoped := NewURLLoader("scoped", original, urls...)
	c.Install(scoped)
	defer c.Install(original)
	return block(scoped)
}
