package option

import "iter"

// Reduce folds an option into seed. For a present option the result is
// fn(seed, value), otherwise it is seed.
func Reduce[T, B any](seed B, fn func(B, T) B) func(Option[T]) B {
	return func(o Option[T]) B {
		if o.state == some {
			return fn(seed, o.value)
		}
		return seed
	}
}

// GetOrElse returns the contained value or, for an empty option, the result of
// calling supplier. supplier is not called for a present option.
func GetOrElse[T any](supplier func() T) func(Option[T]) T {
	return func(o Option[T]) T {
		if o.state == some {
			return o.value
		}
		return supplier()
	}
}

// OrElse returns a present option unchanged and calls supplier for a
// replacement otherwise.
func OrElse[T any](supplier func() Option[T]) func(Option[T]) Option[T] {
	return func(o Option[T]) Option[T] {
		if o.state == some {
			return o
		}
		return supplier()
	}
}

// Handlers holds the two branches for Match.
type Handlers[T, B any] struct {
	Some func(T) B
	None func() B
}

// Match calls exactly one of the handlers, depending on presence, and returns
// its result.
func Match[T, B any](h Handlers[T, B]) func(Option[T]) B {
	return func(o Option[T]) B {
		if o.state == some {
			return h.Some(o.value)
		}
		return h.None()
	}
}

// ToSlice returns a freshly allocated slice containing the value of a present
// option, or an empty (non-nil) slice.
func ToSlice[T any](o Option[T]) []T {
	if o.state == some {
		return []T{o.value}
	}
	return []T{}
}

// Values returns an iterator over the zero or one values of o.
//
//	for v := range option.Values(o) {
//	    …
//	}
func Values[T any](o Option[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.state == some {
			yield(o.value)
		}
	}
}
