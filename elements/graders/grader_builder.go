package graders

import (
	"github.com/DAv10195/submit_photos/db"
	"github.com/DAv10195/submit_photos/util/containers"
)

type GraderBuilder struct {
	asUser					string
	withDbUpdate			bool
	UserName       			string
	FirstName				string
	LastName				string
	Password   				string
	Roles      				*containers.StringSet
	FullAccessCourses		*containers.StringSet
	Sections				map[string]*containers.StringSet
}

func NewGraderBuilder(asUser string, withDbUpdate bool) *GraderBuilder {
	return &GraderBuilder{
		asUser: asUser,
		withDbUpdate: withDbUpdate,
		Roles: containers.NewStringSet(),
		FullAccessCourses: containers.NewStringSet(),
		Sections: make(map[string]*containers.StringSet),
	}
}

func (b *GraderBuilder) WithUserName(userName string) *GraderBuilder {
	b.UserName = userName
	return b
}

func (b *GraderBuilder) WithFirstName(firstName string) *GraderBuilder {
	b.FirstName = firstName
	return b
}

func (b *GraderBuilder) WithLastName(lastName string) *GraderBuilder {
	b.LastName = lastName
	return b
}

func (b *GraderBuilder) WithPassword(password string) *GraderBuilder {
	b.Password = password
	return b
}

func (b *GraderBuilder) WithRoles(roles ...string) *GraderBuilder {
	b.Roles.Add(roles...)
	return b
}

func (b *GraderBuilder) WithFullAccessTo(courses ...string) *GraderBuilder {
	b.FullAccessCourses.Add(courses...)
	return b
}

func (b *GraderBuilder) WithSections(course string, sections ...string) *GraderBuilder {
	if b.Sections[course] == nil {
		b.Sections[course] = containers.NewStringSet()
	}
	b.Sections[course].Add(sections...)
	return b
}

// validate the grader, encrypt its password and store it if the builder was created with a DB update
func (b *GraderBuilder) Build() (*Grader, error) {
	grader := &Grader{
		UserName: b.UserName,
		FirstName: b.FirstName,
		LastName: b.LastName,
		Password: b.Password,
		Roles: b.Roles,
		FullAccessCourses: b.FullAccessCourses,
		Sections: b.Sections,
	}
	if err := ValidateNew(grader); err != nil {
		return nil, err
	}
	encryptedPassword, err := db.Encrypt(b.Password)
	if err != nil {
		return nil, err
	}
	grader.Password = encryptedPassword
	if b.withDbUpdate {
		if err := db.Update(b.asUser, grader); err != nil {
			return nil, err
		}
	}
	return grader, nil
}
