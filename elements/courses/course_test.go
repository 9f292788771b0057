package courses

import (
	"github.com/DAv10195/submit_photos/db"
	"testing"
)

func TestNewCourse(t *testing.T) {
	defer db.InitDbForTest()()
	course, err := NewCourseForYear(101, 2021, "data structures", db.System, true)
	if err != nil {
		t.Fatal(err)
	}
	if string(course.Key()) != "101:2021" {
		t.Fatalf("unexpected course key: %s", string(course.Key()))
	}
	fromDb, err := Get(101, 2021)
	if err != nil {
		t.Fatal(err)
	}
	if fromDb.Name != course.Name || fromDb.CreatedBy != db.System {
		t.Fatalf("course read from the DB doesn't match the created one: %+v", fromDb)
	}
	if _, err := NewCourseForYear(101, 2021, "again", db.System, true); err == nil {
		t.Fatal("expected an error creating an existing course")
	} else if _, ok := err.(*db.ErrKeyExistsInBucket); !ok {
		t.Fatalf("expected ErrKeyExistsInBucket but got %v", err)
	}
}

func TestNewCourseInsufficientData(t *testing.T) {
	defer db.InitDbForTest()()
	testCases := []struct{
		name	string
		number	int
		year	int
		title	string
	}{
		{"non positive number", 0, 2021, "course"},
		{"non positive year", 1, 0, "course"},
		{"empty name", 1, 2021, ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := NewCourseForYear(testCase.number, testCase.year, testCase.title, db.System, false)
			if _, ok := err.(*db.ErrInsufficientData); !ok {
				t.Fatalf("expected ErrInsufficientData but got %v", err)
			}
		})
	}
}
