package server

import (
	"fmt"
	"github.com/DAv10195/submit_photos/db"
	"github.com/DAv10195/submit_photos/elements/graders"
	"net/http"
	"testing"
)

func TestCoursesHandlers(t *testing.T) {
	router, _, cleanup := getEnvForServerTest()
	defer cleanup()
	runStatusTestCases(t, router, []statusTestCase{
		{"get course with admin", http.MethodGet, fmt.Sprintf("/%s/1/2021", db.Courses), http.StatusOK, nil, graders.Admin},
		{"get course with full access grader", http.MethodGet, fmt.Sprintf("/%s/1/2021", db.Courses), http.StatusOK, nil, fullGrader},
		{"get course with limited grader", http.MethodGet, fmt.Sprintf("/%s/1/2021", db.Courses), http.StatusOK, nil, limitedGrader},
		{"get course with grader of another course", http.MethodGet, fmt.Sprintf("/%s/1/2021", db.Courses), http.StatusForbidden, nil, outsideGrader},
		{"get missing course", http.MethodGet, fmt.Sprintf("/%s/7/2021", db.Courses), http.StatusNotFound, nil, graders.Admin},
		{"get course with invalid number", http.MethodGet, fmt.Sprintf("/%s/one/2021", db.Courses), http.StatusBadRequest, nil, graders.Admin},
		{"create course with admin", http.MethodPost, fmt.Sprintf("/%s/", db.Courses), http.StatusAccepted, []byte(`{"name":"Algorithms","number":2,"year":2021}`), graders.Admin},
		{"create existing course with admin", http.MethodPost, fmt.Sprintf("/%s/", db.Courses), http.StatusBadRequest, []byte(`{"name":"Algorithms","number":2,"year":2021}`), graders.Admin},
		{"create course without a name", http.MethodPost, fmt.Sprintf("/%s/", db.Courses), http.StatusBadRequest, []byte(`{"number":3}`), graders.Admin},
		{"create course with grader", http.MethodPost, fmt.Sprintf("/%s/", db.Courses), http.StatusForbidden, []byte(`{"name":"Logic","number":4}`), fullGrader},
		{"create course with malformed body", http.MethodPost, fmt.Sprintf("/%s/", db.Courses), http.StatusBadRequest, []byte(`{`), graders.Admin},
	})
}
