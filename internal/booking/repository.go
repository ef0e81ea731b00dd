package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the persistence and query surface over booking rows.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	// GetByIDAndOwner looks a booking up constrained to the owning user of the
	// booked item. A missing row and a non-owner caller are indistinguishable.
	GetByIDAndOwner(ctx context.Context, bookingID, ownerID int64) (*Booking, error)
	// GetByIDForParticipant looks a booking up where the user is either the
	// booker or the item owner.
	GetByIDForParticipant(ctx context.Context, bookingID, userID int64) (*Booking, error)
	UpdateStatus(ctx context.Context, b *Booking) error
	// List runs a classified list query, ordered by start descending.
	List(ctx context.Context, conds []squirrel.Sqlizer, limit, offset uint64) ([]*Booking, error)
	// ListByBookerAndItem returns the user's bookings of one item, newest first.
	ListByBookerAndItem(ctx context.Context, bookerID, itemID int64) ([]*Booking, error)
	// LastForItem returns the latest booking that started before now, skipping
	// rejected and canceled ones. Nil when the item has none.
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)
	// NextForItem returns the earliest booking starting after now, skipping
	// rejected and canceled ones. Nil when the item has none.
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository implementation backed by pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectBookings() squirrel.SelectBuilder {
	return psql.Select(
		"b.id", "b.start_date", "b.end_date", "b.status",
		"b.item_id", "i.name", "b.booker_id", "u.name",
	).
		From("bookings b").
		Join("items i ON b.item_id = i.id").
		Join("users u ON b.booker_id = u.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.ItemID, &b.ItemName, &b.BookerID, &b.BookerName,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	query, args, err := psql.Insert("bookings").
		Columns("item_id", "booker_id", "start_date", "end_date", "status").
		Values(b.ItemID, b.BookerID, b.Start, b.End, b.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByIDAndOwner(ctx context.Context, bookingID, ownerID int64) (*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": bookingID, "i.owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) GetByIDForParticipant(ctx context.Context, bookingID, userID int64) (*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": bookingID}).
		Where(squirrel.Or{
			squirrel.Eq{"b.booker_id": userID},
			squirrel.Eq{"i.owner_id": userID},
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, b *Booking) error {
	query, args, err := psql.Update("bookings").
		Set("status", b.Status).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// buildListQuery renders a classified list query: the predicate set, newest
// start first, LIMIT/OFFSET window.
func buildListQuery(conds []squirrel.Sqlizer, limit, offset uint64) (string, []any, error) {
	builder := selectBookings()
	for _, cond := range conds {
		builder = builder.Where(cond)
	}
	return builder.
		OrderBy("b.start_date DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

func (r *pgxRepository) List(ctx context.Context, conds []squirrel.Sqlizer, limit, offset uint64) ([]*Booking, error) {
	query, args, err := buildListQuery(conds, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	return r.queryMany(ctx, query, args)
}

func (r *pgxRepository) ListByBookerAndItem(ctx context.Context, bookerID, itemID int64) ([]*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.booker_id": bookerID, "b.item_id": itemID}).
		OrderBy("b.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	return r.queryMany(ctx, query, args)
}

func (r *pgxRepository) LastForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error) {
	return r.edgeForItem(ctx, itemID, squirrel.LtOrEq{"b.start_date": now}, "b.start_date DESC")
}

func (r *pgxRepository) NextForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error) {
	return r.edgeForItem(ctx, itemID, squirrel.Gt{"b.start_date": now}, "b.start_date ASC")
}

func (r *pgxRepository) edgeForItem(ctx context.Context, itemID int64, cond squirrel.Sqlizer, order string) (*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.item_id": itemID}).
		Where(squirrel.NotEq{"b.status": []Status{StatusRejected, StatusCanceled}}).
		Where(cond).
		OrderBy(order).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) queryMany(ctx context.Context, query string, args []any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
