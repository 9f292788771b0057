package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/DAv10195/submit_photos/db"
	"github.com/DAv10195/submit_photos/elements/courses"
	"github.com/DAv10195/submit_photos/elements/graders"
	"github.com/gorilla/mux"
	"net/http"
	"regexp"
	"strconv"
)

func getCourseNumberAndYearFromRequest(r *http.Request) (int, int, error) {
	number, err := strconv.Atoi(mux.Vars(r)[courseNumber])
	if err != nil {
		return 0, 0, err
	}
	year, err := strconv.Atoi(mux.Vars(r)[courseYear])
	if err != nil {
		return 0, 0, err
	}
	return number, year, nil
}

// returns the course the request refers to, writing an error response and returning nil if there is none
func getCourseFromRequest(w http.ResponseWriter, r *http.Request) *courses.Course {
	number, year, err := getCourseNumberAndYearFromRequest(r)
	if err != nil {
		writeErrResp(w, r, http.StatusBadRequest, errors.New(invalidCourse))
		return nil
	}
	course, err := courses.Get(number, year)
	if err != nil {
		writeDbErrResp(w, r, err)
		return nil
	}
	return course
}

// returns the key of the course the request refers to without checking that it exists
func courseKeyFromRequest(r *http.Request) (string, bool) {
	number, year, err := getCourseNumberAndYearFromRequest(r)
	if err != nil {
		return "", false
	}
	return courses.KeyOf(number, year), true
}

func handleGetCourse(w http.ResponseWriter, r *http.Request) {
	if course := getCourseFromRequest(w, r); course != nil {
		writeElem(w, r, http.StatusOK, course)
	}
}

func handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	course := &courses.Course{}
	if err := json.NewDecoder(r.Body).Decode(course); err != nil {
		writeErrResp(w, r, http.StatusBadRequest, err)
		return
	}
	asUser := r.Context().Value(authenticatedGrader).(*graders.Grader).UserName
	var err error
	if course.Year == 0 {
		course, err = courses.NewCourse(course.Number, course.Name, asUser, true)
	} else {
		course, err = courses.NewCourseForYear(course.Number, course.Year, course.Name, asUser, true)
	}
	if err != nil {
		writeDbErrResp(w, r, err)
		return
	}
	writeResponse(w, r, http.StatusAccepted, &Response{Message: fmt.Sprintf("course '%s' created successfully", string(course.Key()))})
}

// graders may read what belongs to courses they can see, anything else is for admins
func canViewCourse(grader *graders.Grader, r *http.Request) bool {
	courseKey, ok := courseKeyFromRequest(r)
	if !ok {
		return true // let the next handler send an appropriate error message
	}
	return r.Method == http.MethodGet && grader.CanView(courseKey)
}

// configure the courses router
func initCoursesRouter(r *mux.Router, manager *authManager) {
	coursesBasePath := fmt.Sprintf("/%s", db.Courses)
	coursesRouter := r.PathPrefix(coursesBasePath).Subrouter()
	coursesRouter.HandleFunc("/", handleCreateCourse).Methods(http.MethodPost)
	specificCoursePath := fmt.Sprintf("/{%s}/{%s}", courseNumber, courseYear)
	coursesRouter.HandleFunc(specificCoursePath, handleGetCourse).Methods(http.MethodGet)
	initStudentsRouter(coursesRouter.PathPrefix(specificCoursePath).Subrouter(), manager)
	manager.addRegex(regexp.MustCompile(fmt.Sprintf("^%s/[^/]+/[^/]+$", coursesBasePath)), canViewCourse)
}
