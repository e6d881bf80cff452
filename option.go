package option

import (
	"fmt"
	"reflect"
)

// state tags an Option. The zero value is the canonical absent form, so that a
// zero Option[T] behaves like None[T]().
type state uint8

const (
	none   state = iota // canonical "no value"
	nilled              // second "no value" form, see Nil
	some
)

// Option represents an optional value.
//
// An Option is either present (constructed with Some) or absent. Absence comes in
// two forms, None and Nil. Every predicate and combinator treats them alike when
// deciding what to do, but combinators which merely pass an absent input through
// hand back the very form they received. Combinators creating a fresh absence
// (Filter, Zip2…Zip5, When) always return None.
//
// Options are immutable values. For comparable T they may be compared with ==,
// in which case None and Nil are different values.
type Option[T any] struct {
	value T
	state state
}

// Some constructs an Option with a value.
//
// Presence is a tag, not a property of v: Some(nilPointer) is present.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, state: some}
}

// None constructs an empty Option. It is the canonical absent value and equal to
// the zero value of Option[T].
func None[T any]() Option[T] {
	return Option[T]{}
}

// Nil constructs an empty Option which is distinguishable from None, but
// otherwise interchangeable with it. It is what FromPtr returns for a nil pointer.
func Nil[T any]() Option[T] {
	return Option[T]{state: nilled}
}

// FromPtr lifts a pointer into an Option. A nil pointer results in Nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Nil[T]()
	}
	return Some(*p)
}

// FromOk lifts the common Go "(value, ok)" pair into an Option.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the option contains a value.
func (o Option[T]) IsSome() bool {
	return o.state == some
}

// IsNone reports whether the option is empty, in either of its forms.
func (o Option[T]) IsNone() bool {
	return o.state != some
}

// IsNil reports whether the option is the Nil form of absence.
func (o Option[T]) IsNil() bool {
	return o.state == nilled
}

// Unwrap returns the value and a boolean indicating presence.
// This mirrors the common Go "(value, ok)" pattern.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.state == some
}

func (o Option[T]) String() string {
	switch o.state {
	case some:
		return fmt.Sprintf("Some(%v)", o.value)
	case nilled:
		return "Nil"
	default:
		return "None"
	}
}

// absentAs re-types an absent option, keeping its form of absence.
// It must only be called for options with o.IsNone().
func absentAs[U, T any](o Option[T]) Option[U] {
	return Option[U]{state: o.state}
}

// --- Predicates ------------------------------------------------------------

// IsSome reports whether o contains a value.
func IsSome[T any](o Option[T]) bool {
	return o.IsSome()
}

// IsNone reports whether o is empty. It is the exact negation of IsSome.
func IsNone[T any](o Option[T]) bool {
	return o.IsNone()
}

// Contains returns a predicate which is true for a present option holding
// exactly v (compared with ==).
//
// For interface types T, a dynamic value which cannot be compared (a slice,
// a map, a func) never matches.
func Contains[T comparable](v T) func(Option[T]) bool {
	return func(o Option[T]) bool {
		return o.state == some && canCompare(v) && canCompare(o.value) && o.value == v
	}
}

// canCompare reports whether == on x is safe at run time. Comparable type
// parameters still admit interface values with uncomparable dynamic types.
func canCompare(x any) bool {
	rv := reflect.ValueOf(x)
	return !rv.IsValid() || rv.Comparable()
}

// Exists returns a predicate which is true for a present option whose value
// satisfies pred. pred is not called for an empty option.
func Exists[T any](pred func(T) bool) func(Option[T]) bool {
	return func(o Option[T]) bool {
		return o.state == some && pred(o.value)
	}
}
