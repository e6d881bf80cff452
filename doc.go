/*
Package option implements an option type, i.e. a value which may be absent, together
with the usual set of combinators for it.

Handling absent values in Go usually means pointers, zero values or "(value, ok)"
pairs, with an if-statement at every call site. Option[T] makes absence a first class
value and lets clients compose transformations over it without checking for
presence along the way:

	name := option.Pipe3(lookup(id),
	    option.Map(strings.TrimSpace),
	    option.FilterNot(func(s string) bool { return s == "" }),
	    option.GetOrElse(func() string { return "anonymous" }),
	)

All combinators are curried: the first call configures them (with a function, a seed,
a predicate, …), the second call takes the option to work on. This makes them fit
for the PipeN helpers or any other left-to-right function composition.

# Two Forms of Absence

An option without a value may either be None (the zero value) or Nil (which is what
FromPtr creates for a nil pointer). Both forms are "no value" for every decision a
combinator makes. However, combinators which just hand an absent input through
(Map, Chain, Flatten, Filter, FilterNot, Unzip) return the form they received instead
of normalizing it. Combinators producing a fresh absence (a rejecting Filter, Zip2…Zip5,
When) return None.

Absence never carries a reason. There is no panicking accessor: values are extracted
with GetOrElse, Reduce, Match, ToSlice, Values or Unwrap.

# Failure

Combinators never panic by themselves. If a client-supplied function panics, the
panic travels up to the caller unmodified.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package option
