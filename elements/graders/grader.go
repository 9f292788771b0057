package graders

import (
	"encoding/json"
	"fmt"
	"github.com/DAv10195/submit_photos/db"
	"github.com/DAv10195/submit_photos/util/containers"
)

// grader, a member of course staff
type Grader struct {
	db.ABucketElement
	UserName       			string                				`json:"user_name"`
	FirstName				string								`json:"first_name"`
	LastName				string								`json:"last_name"`
	Password   				string                				`json:"password"`
	Roles      				*containers.StringSet 				`json:"roles"`
	// keys of courses in which the grader may see every section
	FullAccessCourses		*containers.StringSet 				`json:"full_access_courses"`
	// course key -> sections the grader is assigned to in that course
	Sections				map[string]*containers.StringSet	`json:"sections"`
}

func (g *Grader) Key() []byte {
	return []byte(g.UserName)
}

func (g *Grader) Bucket() []byte {
	return []byte(db.Graders)
}

func (g *Grader) IsAdmin() bool {
	return g.Roles.Contains(Admin)
}

// returns true if the grader has full access to the given course
func (g *Grader) HasFullAccess(course string) bool {
	return g.IsAdmin() || g.FullAccessCourses.Contains(course)
}

// returns the sections the grader is assigned to in the given course. Never nil
func (g *Grader) SectionsFor(course string) *containers.StringSet {
	if sections, ok := g.Sections[course]; ok && sections != nil {
		return containers.NewStringSet(sections.Slice()...)
	}
	return containers.NewStringSet()
}

// returns true if the grader may see anything in the given course
func (g *Grader) CanView(course string) bool {
	return g.HasFullAccess(course) || !g.SectionsFor(course).IsEmpty()
}

// assign the grader to the given sections of the given course
func (g *Grader) AssignSections(course string, sections ...string) {
	if g.Sections == nil {
		g.Sections = make(map[string]*containers.StringSet)
	}
	if g.Sections[course] == nil {
		g.Sections[course] = containers.NewStringSet()
	}
	g.Sections[course].Add(sections...)
}

// check if the default admin grader is present in the DB and add it with the given password if not
func InitDefaultAdmin(password string) error {
	exists, err := db.KeyExistsInBucket([]byte(db.Graders), []byte(Admin))
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = NewGraderBuilder(db.System, true).WithUserName(Admin).WithPassword(password).WithRoles(Admin).Build()
	return err
}

// return the grader represented by the given user name if that grader exists
func Get(userName string) (*Grader, error) {
	graderBytes, err := db.GetFromBucket([]byte(db.Graders), []byte(userName))
	if err != nil {
		return nil, err
	}
	grader := &Grader{}
	if err = json.Unmarshal(graderBytes, grader); err != nil {
		return nil, err
	}
	return grader, nil
}

// authenticate the grader with the given password. Returns the authenticated grader when the returned error is nil
func Authenticate(userName, password string) (*Grader, error) {
	grader, err := Get(userName)
	if err != nil {
		if _, ok := err.(*db.ErrKeyNotFoundInBucket); ok {
			return nil, &ErrAuthenticationFailure{userName, fmt.Sprintf("grader \"%s\" not found", userName)}
		}
		return nil, err
	}
	graderPassword, err := db.Decrypt(grader.Password)
	if err != nil {
		return nil, err
	}
	if password != graderPassword {
		return nil, &ErrAuthenticationFailure{userName, "incorrect password"}
	}
	return grader, nil
}

func ValidateNew(grader *Grader) error {
	if grader.UserName == "" {
		return &db.ErrInsufficientData{Message: "missing user name"}
	}
	if grader.Password == "" {
		return &db.ErrInsufficientData{Message: "missing password"}
	}
	if grader.Roles.IsEmpty() {
		return &db.ErrInsufficientData{Message: "missing roles"}
	}
	exists, err := db.KeyExistsInBucket([]byte(db.Graders), []byte(grader.UserName))
	if err != nil {
		return err
	}
	if exists {
		return &db.ErrKeyExistsInBucket{Bucket: db.Graders, Key: grader.UserName}
	}
	return nil
}
