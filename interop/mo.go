package interop

import (
	"github.com/npillmayer/option"
	"github.com/samber/mo"
)

// ToMo converts o into a samber/mo option.
func ToMo[T any](o option.Option[T]) mo.Option[T] {
	if v, ok := o.Unwrap(); ok {
		return mo.Some(v)
	}
	return mo.None[T]()
}

// FromMo converts a samber/mo option. An empty m results in option.None.
func FromMo[T any](m mo.Option[T]) option.Option[T] {
	v, ok := m.Get()
	return option.FromOk(v, ok)
}
