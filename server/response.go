package server

import (
	"encoding/json"
	"errors"
	"github.com/DAv10195/submit_photos/db"
	"net/http"
)

const logHttpErrFormat = "error serving http request for %s"

type Response struct {
	Message	string	`json:"message"`
}

func (e *Response) String() string {
	respBytes, _ := json.Marshal(e)
	return string(respBytes)
}

func writeResponse(w http.ResponseWriter, r *http.Request, httpStatus int, response *Response) {
	writeJson(w, r, httpStatus, response)
}

func writeErrResp(w http.ResponseWriter, r *http.Request, httpStatus int, err error) {
	logger.WithError(err).Errorf(logHttpErrFormat, r.URL.Path)
	writeResponse(w, r, httpStatus, &Response{err.Error()})
}

func writeStrErrResp(w http.ResponseWriter, r *http.Request, httpStatus int, str string) {
	writeErrResp(w, r, httpStatus, errors.New(str))
}

// write the given DB related error with the status matching its type
func writeDbErrResp(w http.ResponseWriter, r *http.Request, err error) {
	switch err.(type) {
	case *db.ErrKeyNotFoundInBucket:
		writeErrResp(w, r, http.StatusNotFound, err)
	case *db.ErrKeyExistsInBucket, *db.ErrInsufficientData:
		writeErrResp(w, r, http.StatusBadRequest, err)
	default:
		writeErrResp(w, r, http.StatusInternalServerError, err)
	}
}

func writeElem(w http.ResponseWriter, r *http.Request, httpStatus int, e db.IBucketElement) {
	writeJson(w, r, httpStatus, e)
}

func writeElements(w http.ResponseWriter, r *http.Request, httpStatus int, elements []db.IBucketElement) {
	var elementsWrapper struct {
		Elements []db.IBucketElement `json:"elements"`
	}
	elementsWrapper.Elements = elements
	writeJson(w, r, httpStatus, elementsWrapper)
}

func writeJson(w http.ResponseWriter, r *http.Request, httpStatus int, v interface{}) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		logger.WithError(err).Errorf(logHttpErrFormat, r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set(ContentType, ApplicationJson)
	w.WriteHeader(httpStatus)
	if _, err = w.Write(respBytes); err != nil {
		logger.WithError(err).Errorf(logHttpErrFormat, r.URL.Path)
	}
}
