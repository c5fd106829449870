// Package handler implements the HTTP handlers for the Trip Registry API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, trip.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/handler/gen"
)

// TripServicer defines the trip operations the handlers depend on.
// Interfaces live here, in the consumer package, so handler tests can
// inject a mock without touching the database or service layer.
type TripServicer interface {
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, error)
}

// ClientServicer defines the client operations the handlers depend on.
type ClientServicer interface {
	Delete(ctx context.Context, id int) error
}

// RegistrationServicer defines the registration operations the handlers depend on.
type RegistrationServicer interface {
	AssignClientToTrip(ctx context.Context, tripID int, client domain.Client) (domain.ClientTrip, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
type Server struct {
	trips         TripServicer
	clients       ClientServicer
	registrations RegistrationServicer
	validate      *validator.Validate
}

// compile-time check: Server must satisfy gen.StrictServerInterface.
var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, clients ClientServicer, registrations RegistrationServicer) *Server {
	return &Server{
		trips:         trips,
		clients:       clients,
		registrations: registrations,
		validate:      newValidator(),
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// NewHTTPHandler adapts s to the generated chi routes under basePath.
// GET /healthz is also served at the root. Parameter and body binding
// failures become 400 (413 for oversize bodies); unexpected errors are
// logged with the request ID and answered with a bare 500.
func NewHTTPHandler(s *Server, basePath string, log *slog.Logger) http.Handler {
	si := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: requestErrorHandler,
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "unhandled error",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
			WriteError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		},
	})

	r := chi.NewRouter()
	if basePath != "" {
		r.Get("/healthz", si.GetHealth)
	}
	return gen.HandlerWithOptions(si, gen.ChiServerOptions{
		BaseURL:          basePath,
		BaseRouter:       r,
		ErrorHandlerFunc: requestErrorHandler,
	})
}
