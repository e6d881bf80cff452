package option

import "testing"

func TestIfSome(t *testing.T) {
	tests := []struct {
		arg      Option[int]
		expected int
	}{
		{Some(1), 1},
		{None[int](), 0},
		{Nil[int](), 0},
	}
	for _, tt := range tests {
		calls := 0
		IfSome(func(int) { calls++ })(tt.arg)
		if calls != tt.expected {
			t.Errorf("IfSome(action)(%v) called action %d times; want %d", tt.arg, calls, tt.expected)
		}
	}
}

func TestIfNone(t *testing.T) {
	tests := []struct {
		arg      Option[int]
		expected int
	}{
		{Some(1), 0},
		{None[int](), 1},
		{Nil[int](), 1},
	}
	for _, tt := range tests {
		calls := 0
		IfNone[int](func() { calls++ })(tt.arg)
		if calls != tt.expected {
			t.Errorf("IfNone(action)(%v) called action %d times; want %d", tt.arg, calls, tt.expected)
		}
	}
}

func TestTap(t *testing.T) {
	tests := []struct {
		arg      Option[int]
		expected int
	}{
		{Some(1), 1},
		{None[int](), 0},
		{Nil[int](), 0},
	}
	for _, tt := range tests {
		calls := 0
		if r := Tap(func(int) { calls++ })(tt.arg); r != tt.arg {
			t.Errorf("Tap(action)(%v) = %v; want input unchanged", tt.arg, r)
		}
		if calls != tt.expected {
			t.Errorf("Tap(action)(%v) called action %d times; want %d", tt.arg, calls, tt.expected)
		}
	}
}
