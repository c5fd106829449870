package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/handler"
)

const basePath = "/api/trip"

// Test doubles for the handler's service interfaces.
// Set only the method fields your test needs.

type mockTripServicer struct {
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, error)
}

func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, error) {
	return m.listPaged(ctx, p)
}

type mockClientServicer struct {
	delete func(ctx context.Context, id int) error
}

func (m *mockClientServicer) Delete(ctx context.Context, id int) error {
	return m.delete(ctx, id)
}

type mockRegistrationServicer struct {
	assign func(ctx context.Context, tripID int, client domain.Client) (domain.ClientTrip, error)
}

func (m *mockRegistrationServicer) AssignClientToTrip(ctx context.Context, tripID int, client domain.Client) (domain.ClientTrip, error) {
	return m.assign(ctx, tripID, client)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer         = (*mockTripServicer)(nil)
	_ handler.ClientServicer       = (*mockClientServicer)(nil)
	_ handler.RegistrationServicer = (*mockRegistrationServicer)(nil)
)

// services groups the mocks passed to newHTTPHandler; nil fields are fine
// for tests that never reach them.
type services struct {
	trips         *mockTripServicer
	clients       *mockClientServicer
	registrations *mockRegistrationServicer
}

// newHTTPHandler wires a Server with the given mocks into the api router,
// the same way main.go wires it in production.
func newHTTPHandler(s services) http.Handler {
	var (
		trips         handler.TripServicer
		clients       handler.ClientServicer
		registrations handler.RegistrationServicer
	)
	if s.trips != nil {
		trips = s.trips
	}
	if s.clients != nil {
		clients = s.clients
	}
	if s.registrations != nil {
		registrations = s.registrations
	}
	srv := handler.NewServer(trips, clients, registrations)
	return handler.NewHTTPHandler(srv, basePath, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
