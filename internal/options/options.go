// Package options holds the functional-option plumbing shared by the
// writer and reader configurations.
package options

// Option configures a target of type T and may reject the configuration.
type Option[T any] func(T) error

// New wraps fn as an Option.
func New[T any](fn func(T) error) Option[T] {
	return fn
}

// NoError wraps a setter that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
