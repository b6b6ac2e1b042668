// Package core implements the tally sheet: a titled set of categories,
// each holding a non-negative integer count.
package core

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	// DefaultTitle is the title of a sheet created without one.
	DefaultTitle = "Tally Sheet"

	// DefaultAddAmount is the initial count of a category added without an amount.
	DefaultAddAmount = 0

	// DefaultStep is the amount used by Increment and Decrement callers that omit one.
	DefaultStep = 1
)

// Sheet tracks category counts. It is not safe for concurrent use.
type Sheet struct {
	title  string
	counts map[Category]int
	order  []Category // insertion order of the keys in counts
}

// Entry is one category and its count.
type Entry struct {
	Category Category `yaml:"category"`
	Count    int      `yaml:"count"`
}

// New returns an empty sheet titled DefaultTitle.
func New() *Sheet {
	return &Sheet{title: DefaultTitle, counts: map[Category]int{}}
}

// NewTitled returns an empty sheet with the given title.
func NewTitled(title string) (*Sheet, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	s := New()
	s.title = title
	return s, nil
}

func validateTitle(title string) error {
	if !utf8.ValidString(title) {
		return errors.Wrap(ErrInvalidArgument, "title must be valid UTF-8 text")
	}
	return nil
}

func (s *Sheet) Title() string {
	return s.title
}

func (s *Sheet) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	s.title = title
	return nil
}

// AddCategory adds a category with an initial count of amount. If the
// category already exists its count is increased by amount instead.
func (s *Sheet) AddCategory(key any, amount int) error {
	c := NormalizeCategory(key)
	if amount < 0 {
		return errors.Wrapf(ErrInvalidValue, "initial amount %d for category %q is negative", amount, c)
	}
	n, ok := s.counts[c]
	if !ok {
		s.counts[c] = amount
		s.order = append(s.order, c)
		return nil
	}
	if n > math.MaxInt-amount {
		return errors.Wrapf(ErrInvalidValue, "adding %d to category %q overflows", amount, c)
	}
	s.counts[c] = n + amount
	return nil
}

// RemoveCategory deletes a category and its count.
func (s *Sheet) RemoveCategory(key any) error {
	c := NormalizeCategory(key)
	if _, ok := s.counts[c]; !ok {
		return errors.Wrapf(ErrNotFound, "cannot remove category %q", c)
	}
	delete(s.counts, c)
	for i, k := range s.order {
		if k == c {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Tally returns the count of a category.
func (s *Sheet) Tally(key any) (int, error) {
	c := NormalizeCategory(key)
	n, ok := s.counts[c]
	if !ok {
		return 0, errors.Wrapf(ErrNotFound, "cannot get count of category %q", c)
	}
	return n, nil
}

// SetTally overwrites the count of an existing category. Unlike
// AddCategory it never creates one.
func (s *Sheet) SetTally(key any, amount int) error {
	c := NormalizeCategory(key)
	if amount < 0 {
		return errors.Wrapf(ErrInvalidValue, "new amount %d for category %q is negative", amount, c)
	}
	if _, ok := s.counts[c]; !ok {
		return errors.Wrapf(ErrNotFound, "cannot set count of category %q", c)
	}
	s.counts[c] = amount
	return nil
}

// Increment adds amount to the count of an existing category.
func (s *Sheet) Increment(key any, amount int) error {
	c := NormalizeCategory(key)
	if amount < 0 {
		return errors.Wrapf(ErrInvalidValue, "increment %d for category %q is negative", amount, c)
	}
	n, ok := s.counts[c]
	if !ok {
		return errors.Wrapf(ErrNotFound, "cannot increment category %q", c)
	}
	if n > math.MaxInt-amount {
		return errors.Wrapf(ErrInvalidValue, "incrementing category %q by %d overflows", c, amount)
	}
	s.counts[c] = n + amount
	return nil
}

// Decrement subtracts amount from the count of an existing category. It
// refuses to take the count below zero.
func (s *Sheet) Decrement(key any, amount int) error {
	c := NormalizeCategory(key)
	if amount < 0 {
		return errors.Wrapf(ErrInvalidValue, "decrement %d for category %q is negative", amount, c)
	}
	n, ok := s.counts[c]
	if !ok {
		return errors.Wrapf(ErrNotFound, "cannot decrement category %q", c)
	}
	if amount > n {
		return errors.Wrapf(ErrInvalidValue, "decrement by %d would make category %q negative", amount, c)
	}
	s.counts[c] = n - amount
	return nil
}

// ZeroAll sets every count to zero, keeping the categories.
func (s *Sheet) ZeroAll() {
	for c := range s.counts {
		s.counts[c] = 0
	}
}

// Has reports whether the category exists.
func (s *Sheet) Has(key any) bool {
	_, ok := s.counts[NormalizeCategory(key)]
	return ok
}

// Len returns the number of categories.
func (s *Sheet) Len() int {
	return len(s.counts)
}

// Categories returns the category keys in lexicographic order.
func (s *Sheet) Categories() []Category {
	out := append([]Category(nil), s.order...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Entries returns every category and count in the order the categories
// were first added.
func (s *Sheet) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, c := range s.order {
		out = append(out, Entry{Category: c, Count: s.counts[c]})
	}
	return out
}

// EntriesByCategory returns the entries sorted by category.
func (s *Sheet) EntriesByCategory() []Entry {
	out := s.Entries()
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// EntriesByCount returns the entries sorted by ascending count. Equal
// counts keep insertion order.
func (s *Sheet) EntriesByCount() []Entry {
	out := s.Entries()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count < out[j].Count })
	return out
}
