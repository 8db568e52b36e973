package tree

// DefaultMaxDepth bounds operation recursion unless overridden with WithMaxDepth.
const DefaultMaxDepth = 10000

type options struct {
	maxDepth int
}

// Option configures a Composite.
type Option func(*options)

// WithMaxDepth limits how many levels below a composite an operation started on it may descend.
// A limit of zero (or less) disables the check.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth < 0 {
			depth = 0
		}
		o.maxDepth = depth
	}
}

func newOptions(opts ...Option) options {
	o := options{
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	return o
}
