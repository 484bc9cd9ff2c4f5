package classpath

// NewSystemContext create a context rooted at an immutable system loader over
// the given entries. Entries are converted via FileURL, so relative paths
// resolve against the working directory. No environment is consulted.
func NewSystemContext(entries ...string) (*Context, error) {
	urls, err := FileURLs(entries)
	if err != nil {
		return nil, err
	}
	return NewContext(NewFixedLoader("system", urls...)), nil
}
