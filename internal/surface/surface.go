package surface

import (
	"fmt"
	"reflect"
	"strings"
)

// MemberKind tells how a member is accessed on a value.
type MemberKind int

const (
	// MemberField is an exported struct field reached through Index.
	MemberField MemberKind = iota
	// MemberAccessor is an interface property reached through Getter/Setter methods.
	MemberAccessor
)

// SetterPrefix is prepended to a property name to form its setter method name.
const SetterPrefix = "Set"

// Member is a single readable and writable property of a type.
type Member struct {
	// Name is the property name, unique within a Surface.
	Name string
	// Type is the declared type of the property.
	Type reflect.Type
	// Kind selects the access path below.
	Kind MemberKind
	// Index is the field index path for MemberField (see reflect.Value.FieldByIndex).
	Index []int
	// Getter and Setter are method names for MemberAccessor.
	Getter string
	Setter string
}

// String renders the member as "Name type".
func (m Member) String() string {
	return m.Name + " " + m.Type.String()
}

// Surface is an ordered mapping from member name to Member.
// Order is the discovery order of the resolver; lookups are order independent.
type Surface struct {
	owner   reflect.Type
	members []Member
	byName  map[string]int
}

func newSurface(owner reflect.Type, capacity int) *Surface {
	return &Surface{
		owner:   owner,
		members: make([]Member, 0, capacity),
		byName:  make(map[string]int, capacity),
	}
}

// add appends m unless a member with the same name is already present.
// It reports whether m was added.
func (s *Surface) add(m Member) bool {
	if _, exists := s.byName[m.Name]; exists {
		return false
	}

	s.byName[m.Name] = len(s.members)
	s.members = append(s.members, m)

	return true
}

// Len returns the number of members.
func (s *Surface) Len() int {
	return len(s.members)
}

// Lookup returns the member with the given name.
func (s *Surface) Lookup(name string) (Member, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Member{}, false
	}

	return s.members[i], true
}

// TypeOf returns the declared type of the named member, or nil.
func (s *Surface) TypeOf(name string) reflect.Type {
	m, ok := s.Lookup(name)
	if !ok {
		return nil
	}

	return m.Type
}

// Members returns the members in discovery order. The slice is a copy.
func (s *Surface) Members() []Member {
	out := make([]Member, len(s.members))
	copy(out, s.members)

	return out
}

// Names returns member names in discovery order.
func (s *Surface) Names() []string {
	names := make([]string, len(s.members))
	for i, m := range s.members {
		names[i] = m.Name
	}

	return names
}

// String renders the surface as "Owner{A int, B string}".
func (s *Surface) String() string {
	parts := make([]string, len(s.members))
	for i, m := range s.members {
		parts[i] = m.String()
	}

	owner := "<nil>"
	if s.owner != nil {
		owner = s.owner.String()
	}

	return fmt.Sprintf("%s{%s}", owner, strings.Join(parts, ", "))
}
