package server

import (
	"bytes"
	"github.com/DAv10195/submit_photos/db"
	"github.com/DAv10195/submit_photos/elements/courses"
	"github.com/DAv10195/submit_photos/elements/graders"
	"github.com/DAv10195/submit_photos/elements/students"
	"github.com/DAv10195/submit_photos/roster"
	"github.com/DAv10195/submit_photos/session"
	"github.com/gorilla/mux"
	"net/http"
	"net/http/httptest"
	"testing"
)

const (
	fullGrader		= "full_grader"
	limitedGrader	= "limited_grader"
	outsideGrader	= "outside_grader"
)

// initializes a DB with a course, its roster and graders with different access levels. Graders' passwords are
// their user names
func getEnvForServerTest() (*mux.Router, *courses.Course, func()) {
	sessionCleanup, dbCleanup := session.InitSessionForTest(), db.InitDbForTest()
	cleanup := func() {
		dbCleanup()
		sessionCleanup()
	}
	if err := graders.InitDefaultAdmin(graders.Admin); err != nil {
		panic(err)
	}
	course, err := courses.NewCourseForYear(1, 2021, "Data Structures", db.System, true)
	if err != nil {
		panic(err)
	}
	courseKey := string(course.Key())
	if err := students.Register(db.System,
		&students.Student{UserName: "amy", FirstName: "Amy", LastName: "Pond", Course: courseKey, RegistrationSection: students.Section("B")},
		&students.Student{UserName: "bob", FirstName: "Bob", Course: courseKey},
		&students.Student{UserName: "carl", FirstName: "Carl", Course: courseKey, RegistrationSection: students.Section("A")},
	); err != nil {
		panic(err)
	}
	if _, err := graders.NewGraderBuilder(db.System, true).WithUserName(fullGrader).WithPassword(fullGrader).
		WithRoles(graders.GraderRole).WithFullAccessTo(courseKey).WithSections(courseKey, "A").Build(); err != nil {
		panic(err)
	}
	if _, err := graders.NewGraderBuilder(db.System, true).WithUserName(limitedGrader).WithPassword(limitedGrader).
		WithRoles(graders.GraderRole).WithSections(courseKey, "B").Build(); err != nil {
		panic(err)
	}
	if _, err := graders.NewGraderBuilder(db.System, true).WithUserName(outsideGrader).WithPassword(outsideGrader).
		WithRoles(graders.GraderRole).WithSections("2:2021", "A").Build(); err != nil {
		panic(err)
	}
	router, err := newRouter(&Config{UploadLimit: roster.StaticUploadLimit(8 * 1024 * 1024)})
	if err != nil {
		panic(err)
	}
	return router, course, cleanup
}

func newTestRequest(t *testing.T, method, path string, data []byte, user string) *http.Request {
	r, err := http.NewRequest(method, path, bytes.NewBuffer(data))
	if err != nil {
		t.Fatalf("error creating http request for %s %s: %v", method, path, err)
	}
	r.SetBasicAuth(user, user)
	return r
}

func serve(router http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

type statusTestCase struct {
	name	string
	method	string
	path	string
	status	int
	data	[]byte
	user	string
}

func runStatusTestCases(t *testing.T, router http.Handler, testCases []statusTestCase) {
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			w := serve(router, newTestRequest(t, testCase.method, testCase.path, testCase.data, testCase.user))
			if w.Code != testCase.status {
				t.Fatalf("test case [ %s ] produced status code %d instead of the expected %d status code: %s", testCase.name, w.Code, testCase.status, w.Body.String())
			}
		})
	}
}
