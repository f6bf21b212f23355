package username

import "strings"

// Normalize returns the canonical form of v.
//
// Strings are trimmed and lower-cased. Any other value, including nil,
// normalizes to the empty string. Normalize never fails and is idempotent.
func Normalize(v any) string {
	switch s := v.(type) {
	case string:
		return strings.ToLower(strings.TrimSpace(s))
	case *string:
		if s == nil {
			return ""
		}
		return strings.ToLower(strings.TrimSpace(*s))
	default:
		return ""
	}
}

// Set is an insertion-ordered set of canonical usernames.
// The zero value is ready to use.
type Set struct {
	index map[string]struct{}
	order []string
}

// NewSet returns a Set with room for n usernames.
func NewSet(n int) *Set {
	return &Set{
		index: make(map[string]struct{}, n),
		order: make([]string, 0, n),
	}
}

// Add normalizes u and appends it unless it is empty or already present.
// It reports whether the set changed.
func (s *Set) Add(u string) bool {
	nu := Normalize(u)
	if nu == "" {
		return false
	}
	if _, ok := s.index[nu]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	s.index[nu] = struct{}{}
	s.order = append(s.order, nu)
	return true
}

// Contains reports whether the canonical form of u is in the set.
func (s *Set) Contains(u string) bool {
	_, ok := s.index[Normalize(u)]
	return ok
}

// Len returns the number of usernames in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// Slice returns the usernames in first-insertion order.
// The returned slice is a copy and never nil.
func (s *Set) Slice() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Dedupe normalizes values, drops empty results and keeps the first
// occurrence of each username.
func Dedupe(values []string) []string {
	s := NewSet(len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s.Slice()
}
