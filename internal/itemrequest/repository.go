package itemrequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing item-request data from storage.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*ItemRequest, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]*ItemRequest, error)
	// ListByOthers returns requests placed by everyone except the given user,
	// newest first.
	ListByOthers(ctx context.Context, userID int64, limit, offset uint64) ([]*ItemRequest, error)
	Create(ctx context.Context, req *ItemRequest) error
}

type pgxRequestRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRequestRepository{pool: pool}
}

func (r *pgxRequestRepository) GetByID(ctx context.Context, id int64) (*ItemRequest, error) {
	const query = `SELECT id, description, requestor_id, created FROM requests WHERE id = $1`

	var req ItemRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.Description, &req.RequestorID, &req.Created,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item request failed: %w", err)
	}
	return &req, nil
}

func (r *pgxRequestRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]*ItemRequest, error) {
	const query = `
		SELECT id, description, requestor_id, created
		FROM requests
		WHERE requestor_id = $1
		ORDER BY created DESC
	`

	return r.queryMany(ctx, query, requestorID)
}

func (r *pgxRequestRepository) ListByOthers(ctx context.Context, userID int64, limit, offset uint64) ([]*ItemRequest, error) {
	const query = `
		SELECT id, description, requestor_id, created
		FROM requests
		WHERE requestor_id <> $1
		ORDER BY created DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryMany(ctx, query, userID, limit, offset)
}

func (r *pgxRequestRepository) Create(ctx context.Context, req *ItemRequest) error {
	const query = `
		INSERT INTO requests (description, requestor_id, created)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := r.pool.QueryRow(
		ctx, query, req.Description, req.RequestorID, req.Created,
	).Scan(&req.ID); err != nil {
		return fmt.Errorf("create item request failed: %w", err)
	}
	return nil
}

func (r *pgxRequestRepository) queryMany(ctx context.Context, query string, args ...any) ([]*ItemRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list item requests failed: %w", err)
	}
	defer rows.Close()

	var requests []*ItemRequest
	for rows.Next() {
		var req ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
			return nil, fmt.Errorf("scan item request failed: %w", err)
		}
		requests = append(requests, &req)
	}
	return requests, rows.Err()
}
