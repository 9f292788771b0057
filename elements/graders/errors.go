package graders

import "fmt"

type ErrAuthenticationFailure struct {
	User	string
	Message	string
}

func (e *ErrAuthenticationFailure) Error() string {
	return fmt.Sprintf("error authenticating grader \"%s\": %s", e.User, e.Message)
}
