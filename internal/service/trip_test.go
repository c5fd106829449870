package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/service"
)

func TestTripService_ListPaged_PassesParamsThrough(t *testing.T) {
	var got domain.PaginationParams
	r := &mockTripRepo{
		listPaged: func(_ context.Context, p domain.PaginationParams) ([]domain.Trip, error) {
			got = p
			return []domain.Trip{{IDTrip: 1}, {IDTrip: 2}}, nil
		},
	}
	svc := service.NewTripService(r)

	trips, err := svc.ListPaged(context.Background(), domain.PaginationParams{Page: 3, PageSize: 7})

	require.NoError(t, err)
	assert.Len(t, trips, 2)
	assert.Equal(t, domain.PaginationParams{Page: 3, PageSize: 7}, got)
}

func TestTripService_ListPaged_InvalidParams(t *testing.T) {
	r := &mockTripRepo{
		listPaged: func(context.Context, domain.PaginationParams) ([]domain.Trip, error) {
			t.Fatal("repo must not be called for invalid params")
			return nil, nil
		},
	}
	svc := service.NewTripService(r)

	for _, p := range []domain.PaginationParams{{Page: 0, PageSize: 10}, {Page: 1, PageSize: 0}, {Page: -1, PageSize: -1}} {
		_, err := svc.ListPaged(context.Background(), p)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "params %+v", p)
	}
}

func TestTripService_ListPaged_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockTripRepo{
		listPaged: func(context.Context, domain.PaginationParams) ([]domain.Trip, error) {
			return nil, repoErr
		},
	}
	svc := service.NewTripService(r)

	_, err := svc.ListPaged(context.Background(), domain.PaginationParams{Page: 1, PageSize: 10})

	assert.ErrorIs(t, err, repoErr)
}
