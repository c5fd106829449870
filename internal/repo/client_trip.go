package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-registry/internal/domain"
)

// ClientTripRepo defines the persistence operations for client registrations.
type ClientTripRepo interface {
	// Exists reports whether a registration for (clientID, tripID) is stored.
	Exists(ctx context.Context, clientID, tripID int) (bool, error)

	// Create inserts a registration row and returns it as stored.
	// Returns domain.ErrNotFound when the client or trip it references does
	// not exist. Duplicate pairs are not rejected here.
	Create(ctx context.Context, ct domain.ClientTrip) (domain.ClientTrip, error)
}

type pgClientTripRepo struct {
	db db
}

// NewClientTripRepo constructs a ClientTripRepo backed by the provided db connection.
func NewClientTripRepo(db db) ClientTripRepo {
	return &pgClientTripRepo{db: db}
}

const clientTripColumns = `id_client, id_trip, registered_at, payment_date`

func (r *pgClientTripRepo) Exists(ctx context.Context, clientID, tripID int) (bool, error) {
	if !keyInRange(clientID) || !keyInRange(tripID) {
		return false, nil
	}

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM client_trips
			WHERE id_client = @id_client AND id_trip = @id_trip
		)`

	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id_client": clientID, "id_trip": tripID}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repo.ClientTripRepo.Exists: %w", err)
	}
	return exists, nil
}

func (r *pgClientTripRepo) Create(ctx context.Context, ct domain.ClientTrip) (domain.ClientTrip, error) {
	if !keyInRange(ct.IDClient) || !keyInRange(ct.IDTrip) {
		return domain.ClientTrip{}, fmt.Errorf("repo.ClientTripRepo.Create: %w", domain.ErrNotFound)
	}

	const q = `
		INSERT INTO client_trips (id_client, id_trip, registered_at, payment_date)
		VALUES (@id_client, @id_trip, @registered_at, @payment_date)
		RETURNING ` + clientTripColumns

	args := pgx.NamedArgs{
		"id_client":     ct.IDClient,
		"id_trip":       ct.IDTrip,
		"registered_at": ct.RegisteredAt,
		"payment_date":  ct.PaymentDate, // nil becomes NULL
	}

	result, err := scanClientTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ClientTrip{}, fmt.Errorf("repo.ClientTripRepo.Create: %w", domain.ErrNotFound)
		}
		return domain.ClientTrip{}, fmt.Errorf("repo.ClientTripRepo.Create: %w", err)
	}
	return result, nil
}

// scanClientTrip maps a client_trips row, handling the nullable payment_date.
func scanClientTrip(s scanner) (domain.ClientTrip, error) {
	var (
		ct      domain.ClientTrip
		payment pgtype.Timestamptz
	)

	if err := s.Scan(&ct.IDClient, &ct.IDTrip, &ct.RegisteredAt, &payment); err != nil {
		return domain.ClientTrip{}, mapNoRows(err)
	}
	if payment.Valid {
		pd := payment.Time
		ct.PaymentDate = &pd
	}
	return ct, nil
}
