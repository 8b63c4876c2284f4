package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Member represents a selectable person in the member list
type Member struct {
	ID   int
	Name string
}

// AvatarInitial returns the display initial for the member's avatar
func (m Member) AvatarInitial() string {
	return DeriveInitial(m.Name)
}

// Equal reports whether both id and name match
func (m Member) Equal(other Member) bool {
	return m.ID == other.ID && m.Name == other.Name
}

// AccessibilityLabel returns the label announced for the member's row
func (m Member) AccessibilityLabel(selected bool) string {
	if selected {
		return m.Name + ", selected"
	}
	return m.Name
}

// DeriveInitial trims surrounding whitespace from name and returns its first
// character uppercased. An empty or blank name yields "".
func DeriveInitial(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	return string(unicode.ToUpper(r))
}

// SampleMembers returns a fresh copy of the built-in sample members
func SampleMembers() []Member {
	return []Member{
		{ID: 2, Name: "John Doe"},
		{ID: 3, Name: "Jane Smith"},
		{ID: 4, Name: "Mike Johnson"},
		{ID: 5, Name: "Sarah Wilson"},
	}
}
