// Package onboarding validates the "Please provide us your name" step.
package onboarding

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxNameLength bounds every name part, in characters.
const MaxNameLength = 50

var (
	ErrFirstNameRequired = errors.New("first name is required")
	ErrLastNameRequired  = errors.New("last name is required")
	ErrNameTooLong       = errors.New("name is too long")
)

// Name is the legal name as it appears on the sender's ID.
type Name struct {
	First  string
	Middle string
	Last   string
}

// Full joins the non-empty parts with single spaces.
func (n Name) Full() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.First, n.Middle, n.Last} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Display is the short form used on the recipients screen.
func (n Name) Display() string {
	return strings.TrimSpace(n.First + " " + n.Last)
}

// Validate trims n and checks the required parts. The middle name is optional.
func Validate(n Name) (Name, error) {
	n = Name{
		First:  collapse(n.First),
		Middle: collapse(n.Middle),
		Last:   collapse(n.Last),
	}

	if n.First == "" {
		return Name{}, ErrFirstNameRequired
	}
	if n.Last == "" {
		return Name{}, ErrLastNameRequired
	}
	for field, v := range map[string]string{"first": n.First, "middle": n.Middle, "last": n.Last} {
		if utf8.RuneCountInString(v) > MaxNameLength {
			return Name{}, fmt.Errorf("%s name: %w", field, ErrNameTooLong)
		}
	}
	return n, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
