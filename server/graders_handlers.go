package server

import (
	"encoding/json"
	"fmt"
	"github.com/DAv10195/submit_photos/db"
	"github.com/DAv10195/submit_photos/elements/graders"
	"github.com/gorilla/mux"
	"net/http"
	"regexp"
)

// grader registration request
type graderRequest struct {
	UserName			string					`json:"user_name"`
	FirstName			string					`json:"first_name"`
	LastName			string					`json:"last_name"`
	Password			string					`json:"password"`
	Roles				[]string				`json:"roles"`
	FullAccessCourses	[]string				`json:"full_access_courses"`
	Sections			map[string][]string		`json:"sections"`
}

func handleGetGrader(w http.ResponseWriter, r *http.Request) {
	grader := r.Context().Value(authenticatedGrader).(*graders.Grader)
	requested := grader
	if requestedUserName := mux.Vars(r)[userName]; requestedUserName != grader.UserName {
		var err error
		if requested, err = graders.Get(requestedUserName); err != nil {
			writeDbErrResp(w, r, err)
			return
		}
	}
	writeElem(w, r, http.StatusOK, requested)
}

func handleRegisterGraders(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Graders	[]*graderRequest	`json:"graders"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrResp(w, r, http.StatusBadRequest, err)
		return
	}
	var elementsToCreate []db.IBucketElement
	for _, req := range body.Graders {
		roles := req.Roles
		if len(roles) == 0 {
			roles = []string{graders.GraderRole}
		}
		builder := graders.NewGraderBuilder(db.System, false).WithUserName(req.UserName).WithPassword(req.Password).
			WithFirstName(req.FirstName).WithLastName(req.LastName).WithRoles(roles...).WithFullAccessTo(req.FullAccessCourses...)
		for course, sections := range req.Sections {
			builder.WithSections(course, sections...)
		}
		grader, err := builder.Build()
		if err != nil {
			writeDbErrResp(w, r, err)
			return
		}
		elementsToCreate = append(elementsToCreate, grader)
	}
	if err := db.Update(r.Context().Value(authenticatedGrader).(*graders.Grader).UserName, elementsToCreate...); err != nil {
		writeErrResp(w, r, http.StatusInternalServerError, err)
		return
	}
	writeResponse(w, r, http.StatusOK, &Response{fmt.Sprintf("%d graders created successfully", len(elementsToCreate))})
}

// configure the graders router
func initGradersRouter(r *mux.Router, manager *authManager) {
	gradersBasePath := fmt.Sprintf("/%s", db.Graders)
	gradersRouter := r.PathPrefix(gradersBasePath).Subrouter()
	gradersRouter.HandleFunc("/", handleRegisterGraders).Methods(http.MethodPost)
	gradersRouter.HandleFunc(fmt.Sprintf("/{%s}", userName), handleGetGrader).Methods(http.MethodGet)
	manager.addRegex(regexp.MustCompile(fmt.Sprintf("^%s/[^/]+$", gradersBasePath)), func(grader *graders.Grader, r *http.Request) bool {
		return r.Method == http.MethodGet && mux.Vars(r)[userName] == grader.UserName
	})
}
