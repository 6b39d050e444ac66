// Package preference defines the display theme a LearnHub user can pick and
// the draft/commit state that tracks it.
package preference

import (
	"errors"
	"fmt"
	"strings"
)

// Preference is one value of the closed theme enumeration.
type Preference string

const (
	Dark  Preference = "dark"
	Light Preference = "light"
)

// Fallback is used when nothing valid has been persisted yet.
const Fallback = Dark

// ErrInvalidPreference is returned for values outside the enumeration.
var ErrInvalidPreference = errors.New("invalid preference value")

// All lists the allowed values in display order.
func All() []Preference {
	return []Preference{Dark, Light}
}

// Parse validates s. Surrounding whitespace and case are ignored.
func Parse(s string) (Preference, error) {
	p := Preference(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPreference, s)
	}
	return p, nil
}

// Valid reports whether p belongs to the enumeration.
func (p Preference) Valid() bool {
	switch p {
	case Dark, Light:
		return true
	}
	return false
}

// Toggle returns the other theme.
func (p Preference) Toggle() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

func (p Preference) String() string { return string(p) }

// State is a snapshot of the controller. IsDirty == (Draft != Committed).
type State struct {
	Committed Preference
	Draft     Preference
	IsDirty   bool
}

// NewState returns a clean state at p.
func NewState(p Preference) State {
	return State{Committed: p, Draft: p}
}
