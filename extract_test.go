package option

import (
	"slices"
	"testing"
)

func TestReduce(t *testing.T) {
	add := func(acc, c int) int { return acc + c }
	tests := []struct {
		arg      Option[int]
		expected int
	}{
		{Some(1), 2},
		{None[int](), 1},
		{Nil[int](), 1},
	}
	for _, tt := range tests {
		if r := Reduce(1, add)(tt.arg); r != tt.expected {
			t.Errorf("Reduce(1, acc + c)(%v) = %d; want %d", tt.arg, r, tt.expected)
		}
	}
}

func TestGetOrElse(t *testing.T) {
	tests := []struct {
		arg      Option[int]
		expected int
		calls    int
	}{
		{Some(1), 1, 0},
		{None[int](), 2, 1},
		{Nil[int](), 2, 1},
	}
	for _, tt := range tests {
		calls := 0
		two := func() int { calls++; return 2 }
		if r := GetOrElse(two)(tt.arg); r != tt.expected {
			t.Errorf("GetOrElse(2)(%v) = %d; want %d", tt.arg, r, tt.expected)
		}
		if calls != tt.calls {
			t.Errorf("GetOrElse(2)(%v) called supplier %d times; want %d", tt.arg, calls, tt.calls)
		}
	}
}

func TestOrElse(t *testing.T) {
	tests := []struct {
		arg      Option[int]
		expected Option[int]
		calls    int
	}{
		{Some(1), Some(1), 0},
		{None[int](), Some(2), 1},
		{Nil[int](), Some(2), 1},
	}
	for _, tt := range tests {
		calls := 0
		two := func() Option[int] { calls++; return Some(2) }
		if r := OrElse(two)(tt.arg); r != tt.expected {
			t.Errorf("OrElse(2)(%v) = %v; want %v", tt.arg, r, tt.expected)
		}
		if calls != tt.calls {
			t.Errorf("OrElse(2)(%v) called supplier %d times; want %d", tt.arg, calls, tt.calls)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		arg      Option[int]
		expected int
	}{
		{Some(1), 2},
		{None[int](), 0},
		{Nil[int](), 0},
	}
	for _, tt := range tests {
		someCalls, noneCalls := 0, 0
		m := Match(Handlers[int, int]{
			Some: func(x int) int { someCalls++; return x + 1 },
			None: func() int { noneCalls++; return 0 },
		})
		if r := m(tt.arg); r != tt.expected {
			t.Errorf("Match(x + 1, 0)(%v) = %d; want %d", tt.arg, r, tt.expected)
		}
		if someCalls+noneCalls != 1 {
			t.Errorf("Match(%v) executed %d branches; want exactly 1", tt.arg, someCalls+noneCalls)
		}
	}
}

func TestToSlice(t *testing.T) {
	tests := []struct {
		arg      Option[int]
		expected []int
	}{
		{Some(5), []int{5}},
		{None[int](), []int{}},
		{Nil[int](), []int{}},
	}
	for _, tt := range tests {
		r := ToSlice(tt.arg)
		if r == nil {
			t.Errorf("ToSlice(%v) returned a nil slice", tt.arg)
		}
		if !slices.Equal(r, tt.expected) {
			t.Errorf("ToSlice(%v) = %v; want %v", tt.arg, r, tt.expected)
		}
	}
}

func TestToSliceIsFresh(t *testing.T) {
	o := Some(5)
	s := ToSlice(o)
	s[0] = 6
	if o != Some(5) {
		t.Errorf("expected writes to the slice not to change the option")
	}
}

func TestValues(t *testing.T) {
	if r := slices.Collect(Values(Some(5))); !slices.Equal(r, []int{5}) {
		t.Errorf("Values(Some(5)) = %v; want [5]", r)
	}
	if r := slices.Collect(Values(Nil[int]())); len(r) != 0 {
		t.Errorf("Values(Nil) = %v; want []", r)
	}
	for range Values(Some(1)) {
		break // early exit must not make the iterator misbehave
	}
}
