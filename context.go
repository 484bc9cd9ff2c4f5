package classpath

type (
	//Context owns one goroutine's active loader slot.
	//
	//It replaces ambient per thread state with an explicit value threaded
	//through calls, so mutation of the slot is visible at call sites and tests
	//can build isolated contexts. A Context is not synchronized.
	Context struct {
		current Loader
	}
)

// NewContext create a context whose active loader is root.
func NewContext(root Loader) *Context {
	return &Context{current: root}
}

// Current the active loader of this context.
func (s *Context) Current() Loader {
	return s.current
}

// Install l as the active loader of this context.
func (s *Context) Install(l Loader) {
	s.current = l
}
