package server

import "time"

const (
	ContentType 			= "Content-Type"
	ApplicationJson 		= "application/json"

	accessDenied			= "access denied"
	invalidCourse			= "invalid course number and/or year integer path params"

	authenticatedGrader		= "authenticated_grader"

	// path params
	courseNumber			= "courseNumber"
	courseYear				= "courseYear"
	userName				= "userName"

	// query params
	viewParam				= "view"

	serverTimeout			= 15 * time.Second
)
