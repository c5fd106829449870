package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/handler"
	"github.com/pkordes/trip-registry/internal/handler/gen"
	"github.com/pkordes/trip-registry/internal/middleware"
)

func clientPayload() map[string]any {
	return map[string]any{
		"idClient":  9,
		"firstName": "Ewa",
		"lastName":  "Zielinska",
		"email":     "ewa@example.com",
		"telephone": "+48 500 600 700",
		"pesel":     "92030312345",
	}
}

func TestAssignClientToTrip_200(t *testing.T) {
	registered := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	var (
		gotTrip   int
		gotClient domain.Client
	)
	svc := &mockRegistrationServicer{
		assign: func(_ context.Context, tripID int, c domain.Client) (domain.ClientTrip, error) {
			gotTrip, gotClient = tripID, c
			return domain.ClientTrip{IDClient: c.IDClient, IDTrip: tripID, RegisteredAt: registered}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, basePath+"/trips/3/clients", jsonBody(t, clientPayload()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(services{registrations: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 3, gotTrip)
	assert.Equal(t, 9, gotClient.IDClient)
	assert.Equal(t, "92030312345", gotClient.Pesel)
	assert.Equal(t, "Ewa", gotClient.FirstName)

	var resp gen.ClientTrip
	require.NoError(t, json.NewDecoder(strings.NewReader(rec.Body.String())).Decode(&resp))
	assert.Equal(t, 9, resp.IdClient)
	assert.Equal(t, 3, resp.IdTrip)
	assert.True(t, resp.RegisteredAt.Equal(registered))
	assert.Nil(t, resp.PaymentDate)
	assert.Contains(t, rec.Body.String(), `"paymentDate":null`)
}

func TestAssignClientToTrip_400_ServiceRejects(t *testing.T) {
	for _, msg := range []string{
		"the trip does not exist or has already taken place",
		"a client with this PESEL number already exists",
		"the client is already registered for this trip",
	} {
		t.Run(msg, func(t *testing.T) {
			svc := &mockRegistrationServicer{
				assign: func(context.Context, int, domain.Client) (domain.ClientTrip, error) {
					return domain.ClientTrip{}, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, msg)
				},
			}

			req := httptest.NewRequest(http.MethodPost, basePath+"/trips/3/clients", jsonBody(t, clientPayload()))
			rec := httptest.NewRecorder()

			newHTTPHandler(services{registrations: svc}).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp gen.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, handler.CodeInvalidArgument, resp.Error.Code)
			assert.Equal(t, msg, resp.Error.Message)
		})
	}
}

func TestAssignClientToTrip_400_ValidationDetails(t *testing.T) {
	svc := &mockRegistrationServicer{
		assign: func(context.Context, int, domain.Client) (domain.ClientTrip, error) {
			t.Fatal("service must not be called for an invalid body")
			return domain.ClientTrip{}, nil
		},
	}

	body := clientPayload()
	delete(body, "idClient")
	body["pesel"] = ""

	req := httptest.NewRequest(http.MethodPost, basePath+"/trips/3/clients", jsonBody(t, body))
	rec := httptest.NewRecorder()

	newHTTPHandler(services{registrations: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Fields []struct {
					Field string `json:"field"`
					Rule  string `json:"rule"`
				} `json:"fields"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, handler.CodeInvalidArgument, resp.Error.Code)

	fields := map[string]string{}
	for _, f := range resp.Error.Details.Fields {
		fields[f.Field] = f.Rule
	}
	assert.Equal(t, "required", fields["idClient"])
	assert.Equal(t, "required", fields["pesel"])
}

// Pesel format is not checked up front, so the trip check still decides the
// outcome for a short Pesel.
func TestAssignClientToTrip_ShortPeselReachesService(t *testing.T) {
	var gotPesel string
	svc := &mockRegistrationServicer{
		assign: func(_ context.Context, _ int, c domain.Client) (domain.ClientTrip, error) {
			gotPesel = c.Pesel
			return domain.ClientTrip{}, fmt.Errorf("%w: the trip does not exist or has already taken place", domain.ErrInvalidArgument)
		},
	}

	body := clientPayload()
	body["pesel"] = "1234567890"

	req := httptest.NewRequest(http.MethodPost, basePath+"/trips/3/clients", jsonBody(t, body))
	rec := httptest.NewRecorder()

	newHTTPHandler(services{registrations: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "1234567890", gotPesel)

	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "the trip does not exist or has already taken place", resp.Error.Message)
}

func TestAssignClientToTrip_400_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, basePath+"/trips/3/clients", strings.NewReader(`{"idClient":`))
	rec := httptest.NewRecorder()

	newHTTPHandler(services{registrations: &mockRegistrationServicer{}}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, handler.CodeInvalidArgument, resp.Error.Code)
}

func TestAssignClientToTrip_400_BadTripID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, basePath+"/trips/x/clients", jsonBody(t, clientPayload()))
	rec := httptest.NewRecorder()

	newHTTPHandler(services{registrations: &mockRegistrationServicer{}}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "idTrip")
}

// A body cut off by the size limit is answered with 413, not 400.
func TestAssignClientToTrip_413_BodyTooLarge(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(16)(newHTTPHandler(services{registrations: &mockRegistrationServicer{}}))

	req := httptest.NewRequest(http.MethodPost, basePath+"/trips/3/clients", jsonBody(t, clientPayload()))
	req.ContentLength = -1
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, handler.CodeTooLarge, resp.Error.Code)
}
