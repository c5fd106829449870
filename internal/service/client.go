package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/repo"
)

// ClientService implements business logic for Client operations.
type ClientService struct {
	repo repo.ClientRepo
}

// NewClientService constructs a ClientService backed by the provided ClientRepo.
func NewClientService(r repo.ClientRepo) *ClientService {
	return &ClientService{repo: r}
}

// Delete removes a client that has no trip registrations.
//
// Returns domain.ErrNotFound when the client does not exist and
// domain.ErrConflict when it still has registrations. The lookup and the
// delete are separate statements; a registration created in between is
// caught by the foreign key and also reported as domain.ErrConflict.
func (s *ClientService) Delete(ctx context.Context, id int) error {
	client, err := s.repo.GetWithTrips(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return clientNotFound(id)
		}
		return fmt.Errorf("service.ClientService.Delete: %w", err)
	}

	if len(client.Trips) > 0 {
		return errClientHasTrips
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return clientNotFound(id)
		case errors.Is(err, domain.ErrConflict):
			return errClientHasTrips
		}
		return fmt.Errorf("service.ClientService.Delete: %w", err)
	}
	return nil
}

var errClientHasTrips = fmt.Errorf("%w: cannot delete client with existing trips", domain.ErrConflict)

func clientNotFound(id int) error {
	return fmt.Errorf("%w: client with ID %d not found", domain.ErrNotFound, id)
}
