package http

import (
	"net/http"

	"doctor-discovery/internal/delivery/http/handler"
	"doctor-discovery/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	doctorHandler    *handler.DoctorHandler
	corsMiddleware   *middleware.CORSMiddleware
	loggerMiddleware *middleware.RequestLoggerMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggerMiddleware *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		doctorHandler:    doctorHandler,
		corsMiddleware:   corsMiddleware,
		loggerMiddleware: loggerMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	// Doctor catalog
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggerMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
