package server

import (
	"github.com/DAv10195/submit_photos/elements/graders"
	"net/http"
	"regexp"
)

// decides if the given grader may perform the given request
type authorizationFunc func(grader *graders.Grader, r *http.Request) bool

type regexAuthorization struct {
	regex		*regexp.Regexp
	authFunc	authorizationFunc
}

type authManager struct {
	authMap		map[string]authorizationFunc
	regexes		[]*regexAuthorization
}

func NewAuthManager() *authManager {
	return &authManager{authMap: make(map[string]authorizationFunc)}
}

// authorize requests to exactly the given path with the given function
func (a *authManager) addPathToMap(path string, authFunc authorizationFunc) {
	a.authMap[path] = authFunc
}

// authorize requests to paths matching the given regex with the given function. Regexes are checked in the order
// they were added
func (a *authManager) addRegex(regex *regexp.Regexp, authFunc authorizationFunc) {
	a.regexes = append(a.regexes, &regexAuthorization{regex, authFunc})
}

// returns the authorization function of the given path, or nil if there is none
func (a *authManager) authFuncOf(path string) authorizationFunc {
	if authFunc, ok := a.authMap[path]; ok {
		return authFunc
	}
	for _, ra := range a.regexes {
		if ra.regex.MatchString(path) {
			return ra.authFunc
		}
	}
	return nil
}

// paths without an authorization function are allowed for admins only
func (a *authManager) authorizationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grader, ok := r.Context().Value(authenticatedGrader).(*graders.Grader)
		if !ok {
			writeStrErrResp(w, r, http.StatusUnauthorized, "unauthenticated request")
			return
		}
		authFunc := a.authFuncOf(r.URL.Path)
		if grader.IsAdmin() || (authFunc != nil && authFunc(grader, r)) {
			next.ServeHTTP(w, r)
			return
		}
		writeStrErrResp(w, r, http.StatusForbidden, accessDenied)
	})
}
