package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"tally/internal/core"
)

// ErrSheetExists is returned by Create for a name already in use.
var ErrSheetExists = errors.New("sheet already exists")

// Store keeps named sheets in memory. The store's own map is guarded by a
// mutex; each returned sheet still has a single owner.
type Store struct {
	mu           sync.Mutex
	defaultTitle string
	sheets       map[string]*core.Sheet
}

func New(defaultTitle string) *Store {
	if defaultTitle == "" {
		defaultTitle = core.DefaultTitle
	}
	return &Store{defaultTitle: defaultTitle, sheets: map[string]*core.Sheet{}}
}

// DefaultTitle is the title given to sheets created without one.
func (s *Store) DefaultTitle() string {
	return s.defaultTitle
}

// Create registers a new empty sheet under name.
func (s *Store) Create(_ context.Context, name, title string) (*core.Sheet, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = s.defaultTitle
	}
	sheet, err := core.NewTitled(title)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sheets[name]; ok {
		return nil, errors.Wrapf(ErrSheetExists, "sheet %q", name)
	}
	s.sheets[name] = sheet
	return sheet, nil
}

// Get returns the sheet registered under name.
func (s *Store) Get(_ context.Context, name string) (*core.Sheet, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sheet, ok := s.sheets[name]
	if !ok {
		return nil, errors.Wrapf(core.ErrNotFound, "sheet %q", name)
	}
	return sheet, nil
}

// Delete forgets the sheet registered under name.
func (s *Store) Delete(_ context.Context, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sheets[name]; !ok {
		return errors.Wrapf(core.ErrNotFound, "sheet %q", name)
	}
	delete(s.sheets, name)
	return nil
}

// List returns the sheet names, sorted.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.sheets))
	for name := range s.sheets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.Wrap(core.ErrInvalidArgument, "sheet name cannot be empty")
	}
	return name, nil
}
