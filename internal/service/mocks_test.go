package service_test

import (
	"context"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field; set only the ones your test needs.

type mockTripRepo struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id int) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, error)
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id int) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, error) {
	return m.listPaged(ctx, p)
}

type mockClientRepo struct {
	create        func(ctx context.Context, c domain.Client) (domain.Client, error)
	getWithTrips  func(ctx context.Context, id int) (domain.Client, error)
	existsByPesel func(ctx context.Context, pesel string) (bool, error)
	delete        func(ctx context.Context, id int) error
}

func (m *mockClientRepo) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	return m.create(ctx, c)
}
func (m *mockClientRepo) GetWithTrips(ctx context.Context, id int) (domain.Client, error) {
	return m.getWithTrips(ctx, id)
}
func (m *mockClientRepo) ExistsByPesel(ctx context.Context, pesel string) (bool, error) {
	return m.existsByPesel(ctx, pesel)
}
func (m *mockClientRepo) Delete(ctx context.Context, id int) error {
	return m.delete(ctx, id)
}

type mockClientTripRepo struct {
	exists func(ctx context.Context, clientID, tripID int) (bool, error)
	create func(ctx context.Context, ct domain.ClientTrip) (domain.ClientTrip, error)
}

func (m *mockClientTripRepo) Exists(ctx context.Context, clientID, tripID int) (bool, error) {
	return m.exists(ctx, clientID, tripID)
}
func (m *mockClientTripRepo) Create(ctx context.Context, ct domain.ClientTrip) (domain.ClientTrip, error) {
	return m.create(ctx, ct)
}

// compile-time checks: mocks must satisfy the repo interfaces.
var (
	_ repo.TripRepo       = (*mockTripRepo)(nil)
	_ repo.ClientRepo     = (*mockClientRepo)(nil)
	_ repo.ClientTripRepo = (*mockClientTripRepo)(nil)
)
