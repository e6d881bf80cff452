package interop

import (
	fpoption "github.com/IBM/fp-go/option"
	"github.com/npillmayer/option"
)

// ToFp converts o into an IBM/fp-go option.
func ToFp[T any](o option.Option[T]) fpoption.Option[T] {
	return option.Match(option.Handlers[T, fpoption.Option[T]]{
		Some: fpoption.Some[T],
		None: fpoption.None[T],
	})(o)
}

// FromFp converts an IBM/fp-go option. An empty f results in option.None.
func FromFp[T any](f fpoption.Option[T]) option.Option[T] {
	return fpoption.Fold(option.None[T], option.Some[T])(f)
}
