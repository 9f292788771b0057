package server

import (
	"fmt"
	"github.com/DAv10195/submit_photos/view"
	"github.com/gorilla/mux"
	"net/http"
)

var (
	renderer	*view.TemplateRenderer
	photosView	*view.StudentPhotosView
)

// create the router serving all submit photos endpoints
func newRouter(cfg *Config) (*mux.Router, error) {
	var err error
	if renderer, err = view.NewTemplateRenderer(); err != nil {
		return nil, err
	}
	photosView = view.NewStudentPhotosView(renderer, cfg.UploadLimit)
	baseRouter := mux.NewRouter()
	am := NewAuthManager()
	baseRouter.Use(loggingMiddleware, contentTypeMiddleware, authenticationMiddleware, am.authorizationMiddleware)
	initCoursesRouter(baseRouter, am)
	initGradersRouter(baseRouter, am)
	return baseRouter, nil
}

func InitServer(cfg *Config) (*http.Server, error) {
	logger.Info("initializing server...")
	router, err := newRouter(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		WriteTimeout: serverTimeout,
		ReadTimeout:  serverTimeout,
		TLSConfig:    cfg.TlsConfig,
	}, nil
}
