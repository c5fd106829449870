// Package repo contains all database access logic for the Trip Registry API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/trip-registry/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres implementation.
type TripRepo interface {
	// Create inserts a new trip and returns it with the generated id_trip.
	// Trips are normally maintained outside this API; Create exists for
	// seeding and tests.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id int) (domain.Trip, error)

	// ListPaged returns one page of trips ordered by date_from descending.
	// The result is never nil; a page past the end is an empty slice.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id_trip, name, description, date_from, date_to, max_people`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (name, description, date_from, date_to, max_people)
		VALUES (@name, @description, @date_from, @date_to, @max_people)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"name":        trip.Name,
		"description": trip.Description,
		"date_from":   trip.DateFrom,
		"date_to":     trip.DateTo,
		"max_people":  trip.MaxPeople,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id int) (domain.Trip, error) {
	if !keyInRange(id) {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
	}

	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id_trip = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged sorts before paging, so every page is a contiguous slice of the
// full date_from DESC ordering. Ties on date_from have no defined order.
func (r *pgTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY date_from DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"limit":  int64(p.PageSize),
		"offset": p.Offset(),
	})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListPaged: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListPaged: rows: %w", err)
	}

	return trips, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var t domain.Trip
	err := s.Scan(&t.IDTrip, &t.Name, &t.Description, &t.DateFrom, &t.DateTo, &t.MaxPeople)
	if err != nil {
		return domain.Trip{}, mapNoRows(err)
	}
	return t, nil
}
