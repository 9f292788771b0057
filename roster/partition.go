// Package roster groups a course roster into registration sections according to what a grader may see, and
// formats the upload size limit shown next to it.
package roster

import (
	"github.com/DAv10195/submit_photos/elements/students"
	"github.com/DAv10195/submit_photos/util/containers"
)

// section key of students that are not registered in any section
const NullSection = "NULL"

// which sections a full access grader wants to see
type ViewMode string

const (
	ViewAll			ViewMode = "all"
	ViewSections	ViewMode = "sections"
)

// parse the given view mode. Unknown or empty values fall back to the grader's own sections when the grader has
// any, and to all sections otherwise
func ParseViewMode(value string, hasSections bool) ViewMode {
	switch ViewMode(value) {
	case ViewAll, ViewSections:
		return ViewMode(value)
	}
	if hasSections {
		return ViewSections
	}
	return ViewAll
}

// returns the key of the section the given student is registered in
func SectionKeyOf(student *students.Student) string {
	if student.RegistrationSection == nil {
		return NullSection
	}
	return *student.RegistrationSection
}

// students of a single section, in roster order
type SectionGroup struct {
	Key			string
	Students	[]*students.Student
}

// sections in the order they were first encountered while iterating the roster
type Sections struct {
	groups	[]*SectionGroup
	index	map[string]int
}

func newSections() *Sections {
	return &Sections{index: make(map[string]int)}
}

func (s *Sections) add(key string, student *students.Student) {
	i, ok := s.index[key]
	if !ok {
		i = len(s.groups)
		s.index[key] = i
		s.groups = append(s.groups, &SectionGroup{Key: key})
	}
	s.groups[i].Students = append(s.groups[i].Students, student)
}

// returns the section groups in order
func (s *Sections) Groups() []*SectionGroup {
	return s.groups
}

// returns the section keys in order
func (s *Sections) Keys() []string {
	keys := make([]string, 0, len(s.groups))
	for _, group := range s.groups {
		keys = append(keys, group.Key)
	}
	return keys
}

// returns the students of the given section, or nil if no student was included under it
func (s *Sections) Get(key string) []*students.Student {
	if i, ok := s.index[key]; ok {
		return s.groups[i].Students
	}
	return nil
}

// number of sections
func (s *Sections) Len() int {
	return len(s.groups)
}

// number of students in all sections
func (s *Sections) Total() int {
	total := 0
	for _, group := range s.groups {
		total += len(group.Students)
	}
	return total
}

// group the given roster by registration section, keeping only the students the grader may see:
//  - full access with no assigned sections, or viewing all: everyone
//  - full access viewing its sections: students of the grader's sections
//  - limited access: students of the grader's sections, whatever the view mode
func Partition(roster []*students.Student, graderSections *containers.StringSet, hasFullAccess bool, view ViewMode) *Sections {
	sections := newSections()
	for _, student := range roster {
		if student == nil {
			continue
		}
		key := SectionKeyOf(student)
		belongsToGrader := graderSections.Contains(key)
		switch {
		case hasFullAccess && (graderSections.IsEmpty() || view == ViewAll):
			sections.add(key, student)
		case hasFullAccess && view == ViewSections && belongsToGrader:
			sections.add(key, student)
		case belongsToGrader:
			sections.add(key, student)
		}
	}
	return sections
}
