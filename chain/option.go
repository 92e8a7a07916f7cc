package chain

type (
	//Option represents build option
	Option func(o *options)

	options struct {
		positional bool
	}
)

//WithPositional assigns slot indexes to chain members and their ancestors
func WithPositional() Option {
	return func(o *options) {
		o.positional = true
	}
}

func newOptions(opts []Option) *options {
	result := &options{}
	for _, opt := range opts {
		opt(result)
	}
	return result
}
