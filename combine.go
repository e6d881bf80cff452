package option

// Tuple2 is a pair of values, as produced by Zip2.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 is produced by Zip3.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 is produced by Zip4.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Tuple5 is produced by Zip5.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// presence is implemented by every Option[T], whatever T is.
type presence interface {
	IsSome() bool
}

// allSome evaluates the presence of every argument and reports whether all of
// them hold a value.
func allSome(opts ...presence) bool {
	ok := true
	for _, o := range opts {
		ok = o.IsSome() && ok
	}
	return ok
}

// Zip2 combines two options into an option of a pair. The result is present if
// both inputs are present, and None otherwise.
func Zip2[A, B any](a Option[A], b Option[B]) Option[Tuple2[A, B]] {
	if !allSome(a, b) {
		return None[Tuple2[A, B]]()
	}
	return Some(Tuple2[A, B]{a.value, b.value})
}

// Zip3 is Zip2 for three options.
func Zip3[A, B, C any](a Option[A], b Option[B], c Option[C]) Option[Tuple3[A, B, C]] {
	if !allSome(a, b, c) {
		return None[Tuple3[A, B, C]]()
	}
	return Some(Tuple3[A, B, C]{a.value, b.value, c.value})
}

// Zip4 is Zip2 for four options.
func Zip4[A, B, C, D any](a Option[A], b Option[B], c Option[C], d Option[D]) Option[Tuple4[A, B, C, D]] {
	if !allSome(a, b, c, d) {
		return None[Tuple4[A, B, C, D]]()
	}
	return Some(Tuple4[A, B, C, D]{a.value, b.value, c.value, d.value})
}

// Zip5 is Zip2 for five options.
func Zip5[A, B, C, D, E any](a Option[A], b Option[B], c Option[C], d Option[D],
	e Option[E]) Option[Tuple5[A, B, C, D, E]] {
	if !allSome(a, b, c, d, e) {
		return None[Tuple5[A, B, C, D, E]]()
	}
	return Some(Tuple5[A, B, C, D, E]{a.value, b.value, c.value, d.value, e.value})
}

// Unzip splits an option of a pair into a pair of options. If o is empty, both
// results carry o's form of absence.
func Unzip[A, B any](o Option[Tuple2[A, B]]) (Option[A], Option[B]) {
	if o.state != some {
		return absentAs[A](o), absentAs[B](o)
	}
	return Some(o.value.V1), Some(o.value.V2)
}

// When returns a function which calls producer only if cond is true, and
// returns producer's result unchanged. For a false cond the result is None.
//
//	opt := option.When[int](n > 0)(func() option.Option[int] { return expensive(n) })
func When[T any](cond bool) func(producer func() Option[T]) Option[T] {
	return func(producer func() Option[T]) Option[T] {
		if !cond {
			return None[T]()
		}
		return producer()
	}
}
