package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/repo"
)

// RegistrationService registers clients onto trips.
type RegistrationService struct {
	trips       repo.TripRepo
	clients     repo.ClientRepo
	clientTrips repo.ClientTripRepo
	now         func() time.Time
}

// NewRegistrationService constructs a RegistrationService. now supplies the
// registration time; pass nil to use time.Now.
func NewRegistrationService(
	trips repo.TripRepo,
	clients repo.ClientRepo,
	clientTrips repo.ClientTripRepo,
	now func() time.Time,
) *RegistrationService {
	if now == nil {
		now = time.Now
	}
	return &RegistrationService{trips: trips, clients: clients, clientTrips: clientTrips, now: now}
}

// Registration failure messages, in the order the checks run.
var (
	errTripUnavailable   = fmt.Errorf("%w: the trip does not exist or has already taken place", domain.ErrInvalidArgument)
	errPeselTaken        = fmt.Errorf("%w: a client with this PESEL number already exists", domain.ErrInvalidArgument)
	errAlreadyRegistered = fmt.Errorf("%w: the client is already registered for this trip", domain.ErrInvalidArgument)
)

// AssignClientToTrip registers client on trip tripID. The checks run in
// order and the first failure is returned, always as domain.ErrInvalidArgument:
//
//  1. the trip exists and starts strictly after now,
//  2. no client anywhere has client.Pesel,
//  3. (client.IDClient, tripID) is not registered yet.
//
// The Pesel check is global and does not look at client.IDClient. The
// duplicate check and the insert are not atomic: two concurrent calls for
// the same pair can both succeed.
func (s *RegistrationService) AssignClientToTrip(ctx context.Context, tripID int, client domain.Client) (domain.ClientTrip, error) {
	now := s.now().UTC()

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ClientTrip{}, errTripUnavailable
		}
		return domain.ClientTrip{}, fmt.Errorf("service.RegistrationService.AssignClientToTrip: %w", err)
	}
	if trip.HasStartedBy(now) {
		return domain.ClientTrip{}, errTripUnavailable
	}

	taken, err := s.clients.ExistsByPesel(ctx, client.Pesel)
	if err != nil {
		return domain.ClientTrip{}, fmt.Errorf("service.RegistrationService.AssignClientToTrip: %w", err)
	}
	if taken {
		return domain.ClientTrip{}, errPeselTaken
	}

	registered, err := s.clientTrips.Exists(ctx, client.IDClient, tripID)
	if err != nil {
		return domain.ClientTrip{}, fmt.Errorf("service.RegistrationService.AssignClientToTrip: %w", err)
	}
	if registered {
		return domain.ClientTrip{}, errAlreadyRegistered
	}

	created, err := s.clientTrips.Create(ctx, domain.ClientTrip{
		IDClient:     client.IDClient,
		IDTrip:       tripID,
		RegisteredAt: now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ClientTrip{}, fmt.Errorf("%w: client with ID %d does not exist", domain.ErrInvalidArgument, client.IDClient)
		}
		return domain.ClientTrip{}, fmt.Errorf("service.RegistrationService.AssignClientToTrip: %w", err)
	}
	return created, nil
}
