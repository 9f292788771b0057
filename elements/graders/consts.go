package graders

const (
	// roles
	Admin		= "admin"
	GraderRole	= "grader"
)
