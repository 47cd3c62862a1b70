package options

// Option configures a target of type T.
//
// The apply method is unexported so that only this package can construct
// options; packages expose typed constructors built with New or NoError.
type Option[T any] interface {
	apply(T) error
}

type funcOption[T any] func(T) error

func (f funcOption[T]) apply(target T) error {
	return f(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) Option[T] {
	return funcOption[T](fn)
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return funcOption[T](func(target T) error {
		fn(target)
		return nil
	})
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
