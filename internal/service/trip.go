// Package service contains the business logic for the Trip Registry API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// ListPaged returns one page of trips, most recent start date first.
// Params are expected to come from domain.NewPaginationParams; anything with
// Page or PageSize below 1 is rejected with domain.ErrInvalidArgument.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, error) {
	if p.Page < 1 || p.PageSize < 1 {
		return nil, fmt.Errorf("%w: page and pageSize must be greater than 0", domain.ErrInvalidArgument)
	}

	trips, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	return trips, nil
}
