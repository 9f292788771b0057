package roster

import (
	"fmt"
	"github.com/DAv10195/submit_photos/elements/students"
	"github.com/DAv10195/submit_photos/util/containers"
	"strings"
	"testing"
)

func student(userName string, section *string) *students.Student {
	return &students.Student{UserName: userName, Course: "1:2021", RegistrationSection: section}
}

// roster in user name order: sections A, B and students without a section interleaved
func testRoster() []*students.Student {
	return []*students.Student{
		student("amy", students.Section("B")),
		student("bob", nil),
		student("carl", students.Section("A")),
		student("dana", students.Section("B")),
		student("eve", students.Section("A")),
		student("fred", nil),
	}
}

// render the sections as "key:user,user;key:user"
func describe(sections *Sections) string {
	var parts []string
	for _, group := range sections.Groups() {
		var names []string
		for _, s := range group.Students {
			names = append(names, s.UserName)
		}
		parts = append(parts, fmt.Sprintf("%s:%s", group.Key, strings.Join(names, ",")))
	}
	return strings.Join(parts, ";")
}

func TestPartition(t *testing.T) {
	testCases := []struct{
		name			string
		graderSections	*containers.StringSet
		hasFullAccess	bool
		view			ViewMode
		expected		string
	}{
		{"full access without sections viewing all", containers.NewStringSet(), true, ViewAll, "B:amy,dana;NULL:bob,fred;A:carl,eve"},
		{"full access without sections viewing sections", containers.NewStringSet(), true, ViewSections, "B:amy,dana;NULL:bob,fred;A:carl,eve"},
		{"full access with nil sections", nil, true, ViewSections, "B:amy,dana;NULL:bob,fred;A:carl,eve"},
		{"full access with sections viewing all", containers.NewStringSet("A"), true, ViewAll, "B:amy,dana;NULL:bob,fred;A:carl,eve"},
		{"full access with sections viewing sections", containers.NewStringSet("A"), true, ViewSections, "A:carl,eve"},
		{"full access with the null section viewing sections", containers.NewStringSet(NullSection), true, ViewSections, "NULL:bob,fred"},
		{"limited access viewing all", containers.NewStringSet("B"), false, ViewAll, "B:amy,dana"},
		{"limited access viewing sections", containers.NewStringSet("B"), false, ViewSections, "B:amy,dana"},
		{"limited access with several sections", containers.NewStringSet("A", "B"), false, ViewAll, "B:amy,dana;A:carl,eve"},
		{"limited access without sections", containers.NewStringSet(), false, ViewAll, ""},
		{"limited access with unknown section", containers.NewStringSet("Z"), false, ViewSections, ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			sections := Partition(testRoster(), testCase.graderSections, testCase.hasFullAccess, testCase.view)
			if actual := describe(sections); actual != testCase.expected {
				t.Fatalf("expected sections \"%s\" but got \"%s\"", testCase.expected, actual)
			}
		})
	}
}

func TestPartitionIncludesEachStudentAtMostOnce(t *testing.T) {
	roster := testRoster()
	for _, view := range []ViewMode{ViewAll, ViewSections} {
		for _, fullAccess := range []bool{true, false} {
			for _, graderSections := range []*containers.StringSet{nil, containers.NewStringSet("A"), containers.NewStringSet("A", "B", NullSection)} {
				sections := Partition(roster, graderSections, fullAccess, view)
				if sections.Total() > len(roster) {
					t.Fatalf("partition included %d students out of a roster of %d", sections.Total(), len(roster))
				}
				seen := make(map[*students.Student]bool)
				for _, group := range sections.Groups() {
					for _, s := range group.Students {
						if seen[s] {
							t.Fatalf("student %s was included more than once", s.UserName)
						}
						seen[s] = true
						if SectionKeyOf(s) != group.Key {
							t.Fatalf("student %s was included under section %s instead of its own", s.UserName, group.Key)
						}
					}
				}
			}
		}
	}
}

func TestPartitionDoesNotMutateRoster(t *testing.T) {
	roster := testRoster()
	Partition(roster, containers.NewStringSet("A"), true, ViewSections)
	if len(roster) != 6 || roster[0].UserName != "amy" || *roster[0].RegistrationSection != "B" || roster[1].RegistrationSection != nil {
		t.Fatal("partition modified the given roster")
	}
}

func TestPartitionEmptyRoster(t *testing.T) {
	sections := Partition(nil, nil, true, ViewAll)
	if sections.Len() != 0 || sections.Total() != 0 || len(sections.Keys()) != 0 {
		t.Fatal("expected no sections for an empty roster")
	}
	if sections.Get(NullSection) != nil {
		t.Fatal("expected no students under the null section")
	}
}

func TestSectionsAccessors(t *testing.T) {
	sections := Partition(testRoster(), nil, true, ViewAll)
	if strings.Join(sections.Keys(), ",") != "B,NULL,A" {
		t.Fatalf("unexpected section order: %v", sections.Keys())
	}
	if sections.Len() != 3 || sections.Total() != 6 {
		t.Fatalf("expected 3 sections with 6 students but got %d sections with %d students", sections.Len(), sections.Total())
	}
	nullStudents := sections.Get(NullSection)
	if len(nullStudents) != 2 || nullStudents[0].UserName != "bob" || nullStudents[1].UserName != "fred" {
		t.Fatal("students without a section should be kept under the NULL section in roster order")
	}
}

func TestParseViewMode(t *testing.T) {
	testCases := []struct{
		value		string
		hasSections	bool
		expected	ViewMode
	}{
		{"all", true, ViewAll},
		{"sections", false, ViewSections},
		{"", true, ViewSections},
		{"", false, ViewAll},
		{"everything", true, ViewSections},
	}
	for _, testCase := range testCases {
		if mode := ParseViewMode(testCase.value, testCase.hasSections); mode != testCase.expected {
			t.Fatalf("ParseViewMode(%q, %v) = %s, expected %s", testCase.value, testCase.hasSections, mode, testCase.expected)
		}
	}
}
