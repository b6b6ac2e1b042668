package core

import (
	"errors"
	"math"
	"testing"
)

func mustTally(t *testing.T, s *Sheet, key any) int {
	t.Helper()
	n, err := s.Tally(key)
	if err != nil {
		t.Fatalf("tally %v: %v", key, err)
	}
	return n
}

func TestNewDefaultsTitle(t *testing.T) {
	s := New()
	if s.Title() != DefaultTitle {
		t.Fatalf("expected %q, got %q", DefaultTitle, s.Title())
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty sheet, got %d categories", s.Len())
	}
}

func TestNewTitled(t *testing.T) {
	s, err := NewTitled("Birds")
	if err != nil || s.Title() != "Birds" {
		t.Fatalf("unexpected sheet: title=%q err=%v", s.Title(), err)
	}
	if _, err := NewTitled("bad \xff title"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSetTitleReplacesTitle(t *testing.T) {
	s := New()
	if err := s.SetTitle("Birds 1/1/19"); err != nil {
		t.Fatalf("set title: %v", err)
	}
	if s.Title() != "Birds 1/1/19" {
		t.Fatalf("title not replaced: %q", s.Title())
	}
	if err := s.SetTitle("\xc3\x28"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if s.Title() != "Birds 1/1/19" {
		t.Fatalf("rejected title changed the sheet: %q", s.Title())
	}
}

func TestAddCategoryAccumulates(t *testing.T) {
	for _, amount := range []int{0, 1, 7, 1000} {
		s := New()
		if err := s.AddCategory("c", 0); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := s.AddCategory("c", amount); err != nil {
			t.Fatalf("add %d: %v", amount, err)
		}
		if got := mustTally(t, s, "c"); got != amount {
			t.Fatalf("expected %d, got %d", amount, got)
		}
	}

	s := New()
	_ = s.AddCategory("robin", 5)
	_ = s.AddCategory("robin", 3)
	if got := mustTally(t, s, "robin"); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 category, got %d", s.Len())
	}
}

func TestAddCategoryRejectsNegative(t *testing.T) {
	s := New()
	if err := s.AddCategory("c", -1); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if s.Has("c") {
		t.Fatalf("rejected add created the category")
	}
}

func TestCategoryKeysAreNormalized(t *testing.T) {
	s := New()
	if err := s.AddCategory(5, 0); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddCategory("5", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected one category, got %v", s.Categories())
	}
	if got := mustTally(t, s, "5"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := mustTally(t, s, 5); got != 2 {
		t.Fatalf("expected 2 via int key, got %d", got)
	}

	// Composed and decomposed forms of the same text are one key.
	_ = s.AddCategory("caf\u00e9", 1)
	if err := s.Increment("cafe\u0301", 1); err != nil {
		t.Fatalf("increment decomposed key: %v", err)
	}
	if got := mustTally(t, s, "cafe\u0301"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestRemoveCategory(t *testing.T) {
	s := New()
	_ = s.AddCategory("robin", 5)
	_ = s.AddCategory("sparrow", 1)
	if err := s.RemoveCategory("robin"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := s.Tally("robin"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
	if err := s.RemoveCategory("eagle"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := s.Entries(); len(got) != 1 || got[0].Category != "sparrow" {
		t.Fatalf("unexpected entries: %v", got)
	}
}

func TestTallyMissing(t *testing.T) {
	if _, err := New().Tally("eagle"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetTally(t *testing.T) {
	s := New()
	_ = s.AddCategory("robin", 5)

	cases := []struct {
		name   string
		key    string
		amount int
		want   error
		count  int
	}{
		{"overwrite", "robin", 3, nil, 3},
		{"zero", "robin", 0, nil, 0},
		{"negative", "robin", -2, ErrInvalidValue, 0},
		{"missing", "eagle", 4, ErrNotFound, 0},
		{"negative and missing", "eagle", -4, ErrInvalidValue, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.SetTally(tc.key, tc.amount)
			if tc.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if got := mustTally(t, s, "robin"); got != tc.count {
				t.Fatalf("expected robin=%d, got %d", tc.count, got)
			}
		})
	}
	if s.Has("eagle") {
		t.Fatalf("SetTally created a category")
	}
}

func TestIncrement(t *testing.T) {
	s := New()
	_ = s.AddCategory("cardinal", 3)

	if err := s.Increment("cardinal", 0); err != nil {
		t.Fatalf("increment 0: %v", err)
	}
	if got := mustTally(t, s, "cardinal"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if err := s.Increment("cardinal", DefaultStep); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if got := mustTally(t, s, "cardinal"); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if err := s.Increment("cardinal", -1); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if err := s.Increment("eagle", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := mustTally(t, s, "cardinal"); got != 4 {
		t.Fatalf("failed increments changed count: %d", got)
	}
}

func TestIncrementOverflow(t *testing.T) {
	s := New()
	_ = s.AddCategory("big", math.MaxInt)
	if err := s.Increment("big", 1); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if err := s.AddCategory("big", 1); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if got := mustTally(t, s, "big"); got != math.MaxInt {
		t.Fatalf("overflow changed count: %d", got)
	}
}

func TestDecrement(t *testing.T) {
	for n := 0; n <= 5; n++ {
		for k := 0; k <= n; k++ {
			s := New()
			_ = s.AddCategory("c", n)
			if err := s.Decrement("c", k); err != nil {
				t.Fatalf("decrement %d from %d: %v", k, n, err)
			}
			if got := mustTally(t, s, "c"); got != n-k {
				t.Fatalf("expected %d, got %d", n-k, got)
			}
		}

		s := New()
		_ = s.AddCategory("c", n)
		if err := s.Decrement("c", n+1); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("expected ErrInvalidValue, got %v", err)
		}
		if got := mustTally(t, s, "c"); got != n {
			t.Fatalf("refused decrement changed count: %d", got)
		}
	}

	s := New()
	if err := s.Decrement("eagle", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	_ = s.AddCategory("c", 2)
	if err := s.Decrement("c", -1); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	s := New()
	_ = s.AddCategory("robin", 5)
	for _, k := range []int{0, 1, 9, 250} {
		if err := s.Increment("robin", k); err != nil {
			t.Fatalf("increment: %v", err)
		}
		if err := s.Decrement("robin", k); err != nil {
			t.Fatalf("decrement: %v", err)
		}
		if got := mustTally(t, s, "robin"); got != 5 {
			t.Fatalf("round trip by %d gave %d", k, got)
		}
	}
}

func TestZeroAll(t *testing.T) {
	s := New()
	_ = s.AddCategory("robin", 5)
	_ = s.AddCategory("sparrow", 10)
	_ = s.AddCategory("cardinal", 0)
	before := s.Categories()

	s.ZeroAll()

	after := s.Categories()
	if len(after) != len(before) {
		t.Fatalf("categories changed: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("categories changed: %v -> %v", before, after)
		}
		if got := mustTally(t, s, after[i]); got != 0 {
			t.Fatalf("%s not zeroed: %d", after[i], got)
		}
	}
}

func TestCardinalScenario(t *testing.T) {
	s := New()
	_ = s.AddCategory("robin", 5)
	_ = s.AddCategory("sparrow", 10)
	_ = s.AddCategory("cardinal", 3)

	if err := s.Increment("cardinal", 0); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if got := mustTally(t, s, "cardinal"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}

	want := []int{2, 1, 0}
	for i := 0; i < 5; i++ {
		err := s.Decrement("cardinal", DefaultStep)
		if i < 3 {
			if err != nil {
				t.Fatalf("decrement %d: %v", i+1, err)
			}
			if got := mustTally(t, s, "cardinal"); got != want[i] {
				t.Fatalf("decrement %d: expected %d, got %d", i+1, want[i], got)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("decrement %d: expected ErrInvalidValue, got %v", i+1, err)
		}
		if got := mustTally(t, s, "cardinal"); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	}
}

func TestKind(t *testing.T) {
	s := New()
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("other"), ""},
		{s.AddCategory("c", -1), "InvalidValue"},
		{s.RemoveCategory("eagle"), "NotFound"},
		{s.SetTitle("\xff"), "InvalidArgument"},
	}
	for i, tc := range cases {
		if got := Kind(tc.err); got != tc.want {
			t.Fatalf("case %d expected %q, got %q", i, tc.want, got)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int
		ok  bool
	}{
		{"0", 0, true},
		{"5", 5, true},
		{" 12 ", 12, true},
		{"-3", -3, true},
		{"1.5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%q expected ErrInvalidArgument, got %v", tc.in, err)
		}
	}
}
