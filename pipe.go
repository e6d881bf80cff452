package option

// Pipe1 applies f1 to a. The PipeN functions exist to compose the curried
// combinators of this package from left to right:
//
//	n := option.Pipe3(o,
//	    option.Map(func(x int) int { return x + 1 }),
//	    option.Filter(func(x int) bool { return x > 2 }),
//	    option.GetOrElse(func() int { return 0 }),
//	)
func Pipe1[A, B any](a A, f1 func(A) B) B {
	return f1(a)
}

// Pipe2 applies f1, then f2.
func Pipe2[A, B, C any](a A, f1 func(A) B, f2 func(B) C) C {
	return f2(f1(a))
}

// Pipe3 applies f1, f2, f3 in turn.
func Pipe3[A, B, C, D any](a A, f1 func(A) B, f2 func(B) C, f3 func(C) D) D {
	return f3(f2(f1(a)))
}

// Pipe4 applies f1 through f4 in turn.
func Pipe4[A, B, C, D, E any](a A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) E {
	return f4(f3(f2(f1(a))))
}

// Pipe5 applies f1 through f5 in turn.
func Pipe5[A, B, C, D, E, F any](a A, f1 func(A) B, f2 func(B) C, f3 func(C) D,
	f4 func(D) E, f5 func(E) F) F {
	return f5(f4(f3(f2(f1(a)))))
}
