package server

import (
	"encoding/json"
	"fmt"
	"github.com/DAv10195/submit_photos/db"
	"github.com/DAv10195/submit_photos/elements/graders"
	"github.com/DAv10195/submit_photos/elements/students"
	"github.com/DAv10195/submit_photos/roster"
	"github.com/DAv10195/submit_photos/session"
	"github.com/DAv10195/submit_photos/view"
	"github.com/gorilla/mux"
	"net/http"
	"regexp"
)

const photosPath = "/photos"

func handleGetStudents(w http.ResponseWriter, r *http.Request) {
	course := getCourseFromRequest(w, r)
	if course == nil {
		return
	}
	courseRoster, err := students.ListForCourse(string(course.Key()))
	if err != nil {
		writeDbErrResp(w, r, err)
		return
	}
	grader := r.Context().Value(authenticatedGrader).(*graders.Grader)
	courseKey := string(course.Key())
	// a grader gets the part of the roster it would see on the photos page when viewing all sections
	sections := roster.Partition(courseRoster, grader.SectionsFor(courseKey), grader.HasFullAccess(courseKey), roster.ViewAll)
	var elements []db.IBucketElement
	for _, group := range sections.Groups() {
		for _, student := range group.Students {
			elements = append(elements, student)
		}
	}
	writeElements(w, r, http.StatusOK, elements)
}

func handleRegisterStudents(w http.ResponseWriter, r *http.Request) {
	course := getCourseFromRequest(w, r)
	if course == nil {
		return
	}
	var body struct {
		Students	[]*students.Student	`json:"students"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrResp(w, r, http.StatusBadRequest, err)
		return
	}
	for _, student := range body.Students {
		student.Course = string(course.Key())
	}
	if err := students.Register(r.Context().Value(authenticatedGrader).(*graders.Grader).UserName, body.Students...); err != nil {
		writeDbErrResp(w, r, err)
		return
	}
	writeResponse(w, r, http.StatusOK, &Response{fmt.Sprintf("%d students registered successfully", len(body.Students))})
}

func handleSetRegistrationSection(w http.ResponseWriter, r *http.Request) {
	grader := r.Context().Value(authenticatedGrader).(*graders.Grader)
	if !session.ValidCsrfToken(r, grader.UserName) {
		writeStrErrResp(w, r, http.StatusForbidden, "invalid csrf token")
		return
	}
	course := getCourseFromRequest(w, r)
	if course == nil {
		return
	}
	var body struct {
		RegistrationSection	*string	`json:"registration_section"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrResp(w, r, http.StatusBadRequest, err)
		return
	}
	student, err := students.SetRegistrationSection(grader.UserName, string(course.Key()), mux.Vars(r)[userName], body.RegistrationSection)
	if err != nil {
		writeDbErrResp(w, r, err)
		return
	}
	writeElem(w, r, http.StatusAccepted, student)
}

func handleGetStudentPhotos(w http.ResponseWriter, r *http.Request) {
	course := getCourseFromRequest(w, r)
	if course == nil {
		return
	}
	courseKey := string(course.Key())
	courseRoster, err := students.ListForCourse(courseKey)
	if err != nil {
		writeDbErrResp(w, r, err)
		return
	}
	grader := r.Context().Value(authenticatedGrader).(*graders.Grader)
	csrfToken, err := session.CsrfToken(w, r, grader.UserName)
	if err != nil {
		writeErrResp(w, r, http.StatusInternalServerError, err)
		return
	}
	graderSections := grader.SectionsFor(courseKey)
	viewMode := roster.ParseViewMode(r.URL.Query().Get(viewParam), !graderSections.IsEmpty())
	page := view.NewPage(course.Name, csrfToken)
	page.AddBreadcrumb(course.Name)
	fragment, err := photosView.ListStudentPhotos(page, courseRoster, graderSections, grader.HasFullAccess(courseKey), viewMode)
	if err != nil {
		writeErrResp(w, r, http.StatusInternalServerError, err)
		return
	}
	if err := page.Write(w, renderer, http.StatusOK, fragment); err != nil {
		logger.WithError(err).Errorf(logHttpErrFormat, r.URL.Path)
	}
}

// configure the students router, nested under a specific course
func initStudentsRouter(r *mux.Router, manager *authManager) {
	r.HandleFunc(photosPath, handleGetStudentPhotos).Methods(http.MethodGet)
	studentsPath := fmt.Sprintf("/%s", db.Students)
	r.HandleFunc(studentsPath, handleGetStudents).Methods(http.MethodGet)
	r.HandleFunc(studentsPath, handleRegisterStudents).Methods(http.MethodPost)
	r.HandleFunc(fmt.Sprintf("%s/{%s}/section", studentsPath, userName), handleSetRegistrationSection).Methods(http.MethodPut)
	coursePath := fmt.Sprintf("^/%s/[^/]+/[^/]+", db.Courses)
	manager.addRegex(regexp.MustCompile(fmt.Sprintf("%s(%s|%s)$", coursePath, photosPath, studentsPath)), canViewCourse)
}
