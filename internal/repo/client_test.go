package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/repo"
	"github.com/pkordes/trip-registry/testutil"
)

// repos bundles all three repos over one rolled-back transaction.
type repos struct {
	trips       repo.TripRepo
	clients     repo.ClientRepo
	clientTrips repo.ClientTripRepo
}

func newTestRepos(t *testing.T) repos {
	t.Helper()
	tx := testutil.NewTx(t)
	return repos{
		trips:       repo.NewTripRepo(tx),
		clients:     repo.NewClientRepo(tx),
		clientTrips: repo.NewClientTripRepo(tx),
	}
}

func clientFixture() domain.Client {
	return domain.Client{
		FirstName: "Anna",
		LastName:  "Nowak",
		Email:     "anna.nowak@example.com",
		Telephone: "+48 600 100 200",
		Pesel:     "90010112345",
	}
}

func TestClientRepo_Create(t *testing.T) {
	r := newTestRepos(t)

	got, err := r.clients.Create(context.Background(), clientFixture())

	require.NoError(t, err)
	assert.NotZero(t, got.IDClient)
	assert.Equal(t, "90010112345", got.Pesel)
	assert.Nil(t, got.Trips)
}

func TestClientRepo_GetWithTrips_NoTrips(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	created, err := r.clients.Create(ctx, clientFixture())
	require.NoError(t, err)

	got, err := r.clients.GetWithTrips(ctx, created.IDClient)

	require.NoError(t, err)
	assert.Equal(t, created.Pesel, got.Pesel)
	assert.NotNil(t, got.Trips)
	assert.Empty(t, got.Trips)
}

func TestClientRepo_GetWithTrips_LoadsRegistrations(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	client, err := r.clients.Create(ctx, clientFixture())
	require.NoError(t, err)
	trip, err := r.trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	registered := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	_, err = r.clientTrips.Create(ctx, domain.ClientTrip{
		IDClient:     client.IDClient,
		IDTrip:       trip.IDTrip,
		RegisteredAt: registered,
	})
	require.NoError(t, err)

	got, err := r.clients.GetWithTrips(ctx, client.IDClient)

	require.NoError(t, err)
	require.Len(t, got.Trips, 1)
	assert.Equal(t, trip.IDTrip, got.Trips[0].IDTrip)
	assert.True(t, got.Trips[0].RegisteredAt.Equal(registered))
	assert.Nil(t, got.Trips[0].PaymentDate)
}

func TestClientRepo_GetWithTrips_NotFound(t *testing.T) {
	r := newTestRepos(t)

	_, err := r.clients.GetWithTrips(context.Background(), -1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientRepo_ExistsByPesel(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	_, err := r.clients.Create(ctx, clientFixture())
	require.NoError(t, err)

	exists, err := r.clients.ExistsByPesel(ctx, "90010112345")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.clients.ExistsByPesel(ctx, "00000000000")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClientRepo_Delete(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	created, err := r.clients.Create(ctx, clientFixture())
	require.NoError(t, err)

	require.NoError(t, r.clients.Delete(ctx, created.IDClient))

	_, err = r.clients.GetWithTrips(ctx, created.IDClient)
	assert.ErrorIs(t, err, domain.ErrNotFound, "client should be gone after delete")
}

func TestClientRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepos(t)

	err := r.clients.Delete(context.Background(), -1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// The refused delete runs in a savepoint: the foreign-key failure aborts it,
// and after rolling it back the client and its registration must still be
// readable on the outer transaction.
func TestClientRepo_Delete_WithRegistration_Conflict(t *testing.T) {
	tx := testutil.NewTx(t)
	ctx := context.Background()
	r := repos{
		trips:       repo.NewTripRepo(tx),
		clients:     repo.NewClientRepo(tx),
		clientTrips: repo.NewClientTripRepo(tx),
	}

	client, err := r.clients.Create(ctx, clientFixture())
	require.NoError(t, err)
	trip, err := r.trips.Create(ctx, tripFixture())
	require.NoError(t, err)
	_, err = r.clientTrips.Create(ctx, domain.ClientTrip{
		IDClient: client.IDClient, IDTrip: trip.IDTrip, RegisteredAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	savepoint, err := tx.Begin(ctx)
	require.NoError(t, err)

	err = repo.NewClientRepo(savepoint).Delete(ctx, client.IDClient)
	assert.ErrorIs(t, err, domain.ErrConflict)
	require.NoError(t, savepoint.Rollback(ctx))

	got, err := r.clients.GetWithTrips(ctx, client.IDClient)
	require.NoError(t, err, "client must survive the refused delete")
	require.Len(t, got.Trips, 1)
	assert.Equal(t, trip.IDTrip, got.Trips[0].IDTrip)
}
