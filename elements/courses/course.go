package courses

import (
	"encoding/json"
	"github.com/DAv10195/submit_photos/db"
	"strconv"
	"time"
)

// course
type Course struct {
	db.ABucketElement
	Number          		int						`json:"number"`
	Year        			int                		`json:"year"`
	Name            		string                	`json:"name"`
}

// the key of the course with the given number and year
func KeyOf(number, year int) string {
	return db.CompositeKey(strconv.Itoa(number), strconv.Itoa(year))
}

func (c *Course) Key() []byte {
	return []byte(KeyOf(c.Number, c.Year))
}

func (c *Course) Bucket() []byte {
	return []byte(db.Courses)
}

// create a new course with the given number and name in the current year
func NewCourse(number int, name string, asUser string, withDbUpdate bool) (*Course, error) {
	return NewCourseForYear(number, time.Now().UTC().Year(), name, asUser, withDbUpdate)
}

// create a new course with the given number, year and name
func NewCourseForYear(number, year int, name string, asUser string, withDbUpdate bool) (*Course, error) {
	if number <= 0 {
		return nil, &db.ErrInsufficientData{Message: "number of course must be positive"}
	}
	if year <= 0 {
		return nil, &db.ErrInsufficientData{Message: "year of course must be positive"}
	}
	if name == "" {
		return nil, &db.ErrInsufficientData{Message: "name of course must not be empty"}
	}
	courseKey := KeyOf(number, year)
	exists, err := db.KeyExistsInBucket([]byte(db.Courses), []byte(courseKey))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &db.ErrKeyExistsInBucket{Bucket: db.Courses, Key: courseKey}
	}
	course := &Course{Number: number, Year: year, Name: name}
	if withDbUpdate {
		if err := db.Update(asUser, course); err != nil {
			return nil, err
		}
	}
	return course, nil
}

// return the course with the given number and year if it exists
func Get(number, year int) (*Course, error) {
	courseBytes, err := db.GetFromBucket([]byte(db.Courses), []byte(KeyOf(number, year)))
	if err != nil {
		return nil, err
	}
	course := &Course{}
	if err := json.Unmarshal(courseBytes, course); err != nil {
		return nil, err
	}
	return course, nil
}
