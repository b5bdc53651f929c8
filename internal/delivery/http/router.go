package http

import (
	"net/http"

	"go-registration-portal/internal/delivery/http/handler"
	"go-registration-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	registrationHandler *handler.RegistrationHandler
	lookupHandler       *handler.LookupHandler
	corsMiddleware      *middleware.CORSMiddleware
	uploadDir           string
}

func NewRouter(
	registrationHandler *handler.RegistrationHandler,
	lookupHandler *handler.LookupHandler,
	corsMiddleware *middleware.CORSMiddleware,
	uploadDir string,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		registrationHandler: registrationHandler,
		lookupHandler:       lookupHandler,
		corsMiddleware:      corsMiddleware,
		uploadDir:           uploadDir,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Lookup data
	api.HandleFunc("/cities", r.lookupHandler.Cities).Methods(http.MethodGet)
	api.HandleFunc("/areas", r.lookupHandler.Areas).Methods(http.MethodGet)

	// Registration
	api.HandleFunc("/register", r.registrationHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/user-registrations", r.registrationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/profile-photo", r.registrationHandler.LatestProfilePhoto).Methods(http.MethodGet)

	// Uploaded photos are served straight from the upload directory; the
	// paths stored on registrations resolve against this prefix.
	r.router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.uploadDir))),
	).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
