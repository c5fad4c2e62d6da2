// Package pure provides the small value containers the wrappers speak in:
// Option for "maybe a result", Unit for "no value", Pair for tupling
// multi-argument signatures into one.
package pure

// Option represents an optional value: either Some value or None.
type Option[T any] struct {
	val  T
	some bool
}

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the contained value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	if o.some {
		return o.val, true
	}
	var zero T
	return zero, false
}

// GetOrElse returns the contained value, or alt when empty.
func (o Option[T]) GetOrElse(alt T) T {
	if o.some {
		return o.val
	}
	return alt
}

// MapOption applies f to the contained value, preserving emptiness.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Some(f(o.val))
	}
	return None[U]()
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.some {
		return onSome(o.val)
	}
	return onNone()
}
