package theme

import (
	"errors"
	"strings"
	"sync"
)

type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

var ErrInvalidTheme = errors.New("theme must be one of light, dark, system")

// Parse accepts a theme name case-insensitively.
func Parse(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark, System:
		return t, nil
	}
	return "", ErrInvalidTheme
}

// Resolve maps System to a concrete theme from the client's colour-scheme preference.
func Resolve(t Theme, prefersDark bool) Theme {
	if t != System {
		return t
	}
	if prefersDark {
		return Dark
	}
	return Light
}

// Store holds the dashboard's current theme.
type Store struct {
	mu    sync.RWMutex
	theme Theme
}

func NewStore(initial Theme) *Store {
	if _, err := Parse(string(initial)); err != nil {
		initial = System
	}
	return &Store{theme: initial}
}

func (s *Store) Get() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Store) Set(t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()
	return nil
}

// Toggle switches between light and dark; System is resolved first.
func (s *Store) Toggle(prefersDark bool) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	if Resolve(s.theme, prefersDark) == Dark {
		s.theme = Light
	} else {
		s.theme = Dark
	}
	return s.theme
}
