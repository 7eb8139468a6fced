package handlers

import (
	"context"
	"net/http"

	"github.com/base-org/forcer/internal/api/handlers/middleware"
	"github.com/base-org/forcer/internal/api/service"
	"github.com/base-org/forcer/internal/logging"
	"github.com/go-chi/chi"
)

type Handlers interface {
	HealthCheck(w http.ResponseWriter, r *http.Request)
	Eligibility(w http.ResponseWriter, r *http.Request)
	ForceInclude(w http.ResponseWriter, r *http.Request)
	ListAttempts(w http.ResponseWriter, r *http.Request)
	GetAttempt(w http.ResponseWriter, r *http.Request)
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}

// ForcerHandler ... Server handler logic
type ForcerHandler struct {
	ctx     context.Context
	service service.Service
	router  *chi.Mux
}

// New ... Initializer
func New(ctx context.Context, service service.Service) (Handlers, error) {
	handlers := &ForcerHandler{ctx: ctx, service: service}
	router := chi.NewRouter()
	router.Use(middleware.InjectedLogging(logging.NoContext()))

	registerEndpoint("/health", router.Get, handlers.HealthCheck)
	registerEndpoint("/v0/eligibility", router.Get, handlers.Eligibility)
	registerEndpoint("/v0/force-include", router.Post, handlers.ForceInclude)
	registerEndpoint("/v0/attempts", router.Get, handlers.ListAttempts)
	registerEndpoint("/v0/attempts/{id}", router.Get, handlers.GetAttempt)

	handlers.router = router

	return handlers, nil
}

// ServeHTTP serves a http request given a response builder and request
func (fh *ForcerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fh.router.ServeHTTP(w, r)
}

// registerEndpoint registers an endpoint to the router for a specified method type and handlerFunction
func registerEndpoint(endpoint string, routeMethod func(pattern string, handlerFn http.HandlerFunc),
	handlerFunc func(w http.ResponseWriter, r *http.Request)) {
	routeMethod(endpoint, http.HandlerFunc(handlerFunc).ServeHTTP)
}
