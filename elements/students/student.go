package students

import (
	"encoding/json"
	"github.com/DAv10195/submit_photos/db"
)

// a student registered in a course
type Student struct {
	db.ABucketElement
	UserName				string		`json:"user_name"`
	FirstName				string		`json:"first_name"`
	LastName				string		`json:"last_name"`
	Course					string		`json:"course"`
	// nil when the student isn't registered in any section
	RegistrationSection		*string		`json:"registration_section"`
}

func (s *Student) Key() []byte {
	return []byte(db.CompositeKey(s.Course, s.UserName))
}

func (s *Student) Bucket() []byte {
	return []byte(db.Students)
}

// returns the display name of the student
func (s *Student) DisplayName() string {
	switch {
	case s.FirstName == "" && s.LastName == "":
		return s.UserName
	case s.LastName == "":
		return s.FirstName
	case s.FirstName == "":
		return s.LastName
	}
	return s.FirstName + " " + s.LastName
}

// returns a pointer to the given section, or nil for an empty section
func Section(section string) *string {
	if section == "" {
		return nil
	}
	return &section
}

// check that the given student can be registered
func ValidateNew(student *Student) error {
	if student.UserName == "" {
		return &db.ErrInsufficientData{Message: "missing user name"}
	}
	if student.Course == "" {
		return &db.ErrInsufficientData{Message: "missing course"}
	}
	exists, err := db.KeyExistsInBucket([]byte(db.Courses), []byte(student.Course))
	if err != nil {
		return err
	}
	if !exists {
		return &db.ErrKeyNotFoundInBucket{Bucket: db.Courses, Key: student.Course}
	}
	exists, err = db.KeyExistsInBucket([]byte(db.Students), student.Key())
	if err != nil {
		return err
	}
	if exists {
		return &db.ErrKeyExistsInBucket{Bucket: db.Students, Key: string(student.Key())}
	}
	return nil
}

// register the given students
func Register(asUser string, toRegister ...*Student) error {
	var elements []db.IBucketElement
	for _, student := range toRegister {
		if err := ValidateNew(student); err != nil {
			return err
		}
		if student.RegistrationSection != nil {
			student.RegistrationSection = Section(*student.RegistrationSection)
		}
		elements = append(elements, student)
	}
	return db.Update(asUser, elements...)
}

// return the student with the given user name in the given course
func Get(course, userName string) (*Student, error) {
	studentBytes, err := db.GetFromBucket([]byte(db.Students), []byte(db.CompositeKey(course, userName)))
	if err != nil {
		return nil, err
	}
	student := &Student{}
	if err := json.Unmarshal(studentBytes, student); err != nil {
		return nil, err
	}
	return student, nil
}

// return the roster of the given course ordered by user name
func ListForCourse(course string) ([]*Student, error) {
	var roster []*Student
	prefix := []byte(course + db.KeySeparator)
	if err := db.QueryBucketPrefix([]byte(db.Students), prefix, func(_, studentBytes []byte) error {
		student := &Student{}
		if err := json.Unmarshal(studentBytes, student); err != nil {
			return err
		}
		roster = append(roster, student)
		return nil
	}); err != nil {
		return nil, err
	}
	return roster, nil
}

// move the given student to the given registration section (nil or empty for none)
func SetRegistrationSection(asUser, course, userName string, section *string) (*Student, error) {
	student, err := Get(course, userName)
	if err != nil {
		return nil, err
	}
	if section != nil {
		section = Section(*section)
	}
	student.RegistrationSection = section
	if err := db.Update(asUser, student); err != nil {
		return nil, err
	}
	return student, nil
}

// remove the given student from the given course
func Delete(course, userName string) error {
	student, err := Get(course, userName)
	if err != nil {
		return err
	}
	return db.Delete(student)
}
