package server

import (
	"context"
	"github.com/DAv10195/submit_photos/elements/graders"
	"net/http"
	"time"
)

// JSON is the default, handlers rendering pages override it
func contentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(ContentType, ApplicationJson)
		next.ServeHTTP(w, r)
	})
}

// authenticate incoming requests
func authenticationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, password, ok := r.BasicAuth()
		if !ok {
			writeStrErrResp(w, r, http.StatusUnauthorized, "no username/password given")
			return
		}
		grader, err := graders.Authenticate(user, password)
		if err != nil {
			if _, ok := err.(*graders.ErrAuthenticationFailure); ok {
				writeErrResp(w, r, http.StatusUnauthorized, err)
			} else {
				writeErrResp(w, r, http.StatusInternalServerError, err)
			}
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), authenticatedGrader, grader)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status	int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (s *statusRecorder) Flush() {
	if flusher, ok := s.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		logger.WithField("method", r.Method).WithField("status", recorder.status).
			WithField("duration", time.Since(start)).Debugf("served %s", r.URL.Path)
	})
}
