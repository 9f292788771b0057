package containers

import (
	"fmt"
	"sort"
	"strings"
)

// set of strings. Used for grader roles, course keys and section identifiers
type StringSet struct {
	Elements	map[string]struct{}	`json:"elements"`
}

// returns a new set of strings holding the given elements
func NewStringSet(elements ...string) *StringSet {
	s := &StringSet{make(map[string]struct{})}
	s.Add(elements...)
	return s
}

// add the given elements to the set
func (s *StringSet) Add(elements ...string) {
	if s.Elements == nil {
		s.Elements = make(map[string]struct{})
	}
	for _, element := range elements {
		s.Elements[element] = struct{}{}
	}
}

// remove the given elements from the set if they are present in it
func (s *StringSet) Remove(elements ...string) {
	for _, element := range elements {
		delete(s.Elements, element)
	}
}

// returns a boolean indicating if the given element is in the set or not. A nil set contains nothing
func (s *StringSet) Contains(element string) bool {
	if s == nil {
		return false
	}
	_, found := s.Elements[element]
	return found
}

// returns a sorted slice with all elements of the set
func (s *StringSet) Slice() []string {
	if s == nil {
		return nil
	}
	var elements []string
	for element := range s.Elements {
		elements = append(elements, element)
	}
	sort.Strings(elements)
	return elements
}

// returns the number of elements in the set
func (s *StringSet) NumberOfElements() int {
	if s == nil {
		return 0
	}
	return len(s.Elements)
}

func (s *StringSet) IsEmpty() bool {
	return s.NumberOfElements() == 0
}

func (s *StringSet) String() string {
	return fmt.Sprintf("{%s}", strings.Join(s.Slice(), ","))
}

func StringSetUnion(sets ...*StringSet) *StringSet {
	unionSet := NewStringSet()
	for _, set := range sets {
		unionSet.Add(set.Slice()...)
	}
	return unionSet
}
