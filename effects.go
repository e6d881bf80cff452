package option

// IfSome returns a function which calls action with the value of a present
// option and does nothing for an empty one.
func IfSome[T any](action func(T)) func(Option[T]) {
	return func(o Option[T]) {
		if o.state == some {
			action(o.value)
		}
	}
}

// IfNone returns a function which calls action for an empty option.
func IfNone[T any](action func()) func(Option[T]) {
	return func(o Option[T]) {
		if o.state != some {
			action()
		}
	}
}

// Tap is like IfSome, but returns its input unchanged. It lets clients peek
// into a pipeline of combinators.
func Tap[T any](action func(T)) func(Option[T]) Option[T] {
	return func(o Option[T]) Option[T] {
		if o.state == some {
			action(o.value)
		}
		return o
	}
}
