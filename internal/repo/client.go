package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-registry/internal/domain"
)

// ClientRepo defines the persistence operations for Clients.
type ClientRepo interface {
	// Create inserts a new client and returns it with the generated id_client.
	Create(ctx context.Context, client domain.Client) (domain.Client, error)

	// GetWithTrips retrieves a client by ID with its Trips populated from
	// client_trips. Returns domain.ErrNotFound if the client does not exist.
	GetWithTrips(ctx context.Context, id int) (domain.Client, error)

	// ExistsByPesel reports whether any client has the given Pesel.
	ExistsByPesel(ctx context.Context, pesel string) (bool, error)

	// Delete removes a client by ID. Returns domain.ErrNotFound if it does not exist.
	// Delete does not check for registrations itself; if client_trips rows
	// still reference the client the foreign key rejects the delete and
	// domain.ErrConflict is returned.
	Delete(ctx context.Context, id int) error
}

type pgClientRepo struct {
	db db
}

// NewClientRepo constructs a ClientRepo backed by the provided db connection.
func NewClientRepo(db db) ClientRepo {
	return &pgClientRepo{db: db}
}

const clientColumns = `id_client, first_name, last_name, email, telephone, pesel`

func (r *pgClientRepo) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	const q = `
		INSERT INTO clients (first_name, last_name, email, telephone, pesel)
		VALUES (@first_name, @last_name, @email, @telephone, @pesel)
		RETURNING ` + clientColumns

	args := pgx.NamedArgs{
		"first_name": client.FirstName,
		"last_name":  client.LastName,
		"email":      client.Email,
		"telephone":  client.Telephone,
		"pesel":      client.Pesel,
	}

	result, err := scanClient(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.Create: %w", err)
	}
	return result, nil
}

// GetWithTrips issues two queries: the client row, then its registrations.
func (r *pgClientRepo) GetWithTrips(ctx context.Context, id int) (domain.Client, error) {
	if !keyInRange(id) {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetWithTrips: %w", domain.ErrNotFound)
	}

	const q = `SELECT ` + clientColumns + ` FROM clients WHERE id_client = @id`

	client, err := scanClient(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetWithTrips: %w", err)
	}

	const tq = `
		SELECT ` + clientTripColumns + `
		FROM client_trips
		WHERE id_client = @id
		ORDER BY registered_at`

	rows, err := r.db.Query(ctx, tq, pgx.NamedArgs{"id": id})
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetWithTrips: trips: %w", err)
	}
	defer rows.Close()

	client.Trips = []domain.ClientTrip{}
	for rows.Next() {
		ct, err := scanClientTrip(rows)
		if err != nil {
			return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetWithTrips: scan: %w", err)
		}
		client.Trips = append(client.Trips, ct)
	}
	if err := rows.Err(); err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetWithTrips: rows: %w", err)
	}

	return client, nil
}

func (r *pgClientRepo) ExistsByPesel(ctx context.Context, pesel string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM clients WHERE pesel = @pesel)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"pesel": pesel}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.ClientRepo.ExistsByPesel: %w", err)
	}
	return exists, nil
}

func (r *pgClientRepo) Delete(ctx context.Context, id int) error {
	if !keyInRange(id) {
		return fmt.Errorf("repo.ClientRepo.Delete: %w", domain.ErrNotFound)
	}

	const q = `DELETE FROM clients WHERE id_client = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("repo.ClientRepo.Delete: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.ClientRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ClientRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanClient maps a single database row into a domain.Client (without Trips).
func scanClient(s scanner) (domain.Client, error) {
	var c domain.Client
	err := s.Scan(&c.IDClient, &c.FirstName, &c.LastName, &c.Email, &c.Telephone, &c.Pesel)
	if err != nil {
		return domain.Client{}, mapNoRows(err)
	}
	return c, nil
}
