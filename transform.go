package option

// Map transforms the value if present. An empty option is passed through with
// its form of absence intact.
func Map[T, U any](fn func(T) U) func(Option[T]) Option[U] {
	return func(o Option[T]) Option[U] {
		if o.state == some {
			return Some(fn(o.value))
		}
		return absentAs[U](o)
	}
}

// Chain applies fn to the value if present and returns fn's result as is, i.e.
// without wrapping it again. An empty option is passed through unchanged.
func Chain[T, U any](fn func(T) Option[U]) func(Option[T]) Option[U] {
	return func(o Option[T]) Option[U] {
		if o.state == some {
			return fn(o.value)
		}
		return absentAs[U](o)
	}
}

// FlatMap is an alias for Chain.
func FlatMap[T, U any](fn func(T) Option[U]) func(Option[T]) Option[U] {
	return Chain(fn)
}

// Flatten collapses a nested option. A present outer option yields its inner
// option, an empty outer option keeps its form of absence.
func Flatten[T any](oo Option[Option[T]]) Option[T] {
	if oo.state == some {
		return oo.value
	}
	return absentAs[T](oo)
}

// Filter keeps a present value if pred holds for it and returns None otherwise.
// An empty input is passed through unchanged.
func Filter[T any](pred func(T) bool) func(Option[T]) Option[T] {
	return func(o Option[T]) Option[T] {
		if o.state != some || pred(o.value) {
			return o
		}
		return None[T]()
	}
}

// FilterNot is Filter with pred negated.
func FilterNot[T any](pred func(T) bool) func(Option[T]) Option[T] {
	return func(o Option[T]) Option[T] {
		if o.state != some || !pred(o.value) {
			return o
		}
		return None[T]()
	}
}
