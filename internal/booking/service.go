package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-go/shareit-backend/internal/pkg/request"
)

// CreateRequest carries the inputs of a booking creation.
type CreateRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

// ItemRef is the item summary the booking core reads from the item store.
type ItemRef struct {
	ID        int64
	Name      string
	OwnerID   int64
	Available bool
}

// UserRef is the user summary the booking core reads from the user store.
type UserRef struct {
	ID   int64
	Name string
}

// ItemFinder looks items up for existence and ownership checks.
// A nil result with a nil error means the item does not exist.
type ItemFinder interface {
	FindItem(ctx context.Context, id int64) (*ItemRef, error)
}

// UserFinder looks users up for existence checks.
// A nil result with a nil error means the user does not exist.
type UserFinder interface {
	FindUser(ctx context.Context, id int64) (*UserRef, error)
}

// Service orchestrates the booking lifecycle: creation against an item's
// availability, the approve/reject state machine, and classified listings.
type Service interface {
	Create(ctx context.Context, bookerID int64, req CreateRequest) (*Booking, error)
	Confirm(ctx context.Context, ownerID, bookingID int64, approved bool) (*Booking, error)
	GetByIDForParticipant(ctx context.Context, userID, bookingID int64) (*Booking, error)
	ListByBooker(ctx context.Context, bookerID int64, state string, from, size int) ([]*Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, state string, from, size int) ([]*Booking, error)
}

type service struct {
	repo   Repository
	items  ItemFinder
	users  UserFinder
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a booking Service.
func NewService(repo Repository, items ItemFinder, users UserFinder, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		items:  items,
		users:  users,
		logger: logger,
		now:    time.Now,
	}
}

func (s *service) Create(ctx context.Context, bookerID int64, req CreateRequest) (*Booking, error) {
	if !req.End.After(req.Start) {
		return nil, ErrInvalidTimeRange
	}

	item, err := s.items.FindItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if bookerID == item.OwnerID {
		return nil, ErrOwnItem
	}

	booker, err := s.users.FindUser(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if booker == nil {
		return nil, ErrUserNotFound
	}

	b := &Booking{
		Start:      req.Start,
		End:        req.End,
		Status:     StatusWaiting,
		ItemID:     item.ID,
		ItemName:   item.Name,
		BookerID:   booker.ID,
		BookerName: booker.Name,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.Int64("booking_id", b.ID),
		zap.Int64("item_id", b.ItemID),
		zap.Int64("booker_id", b.BookerID),
	)
	return b, nil
}

func (s *service) Confirm(ctx context.Context, ownerID, bookingID int64, approved bool) (*Booking, error) {
	b, err := s.repo.GetByIDAndOwner(ctx, bookingID, ownerID)
	if err != nil {
		return nil, err
	}

	// Only APPROVED is a one-shot transition; a rejected or waiting booking
	// may be confirmed again.
	if b.Status == StatusApproved {
		return nil, ErrAlreadyConfirmed
	}

	if approved {
		b.Status = StatusApproved
	} else {
		b.Status = StatusRejected
	}
	if err := s.repo.UpdateStatus(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking confirmed",
		zap.Int64("booking_id", b.ID),
		zap.Int64("owner_id", ownerID),
		zap.String("status", string(b.Status)),
	)
	return b, nil
}

func (s *service) GetByIDForParticipant(ctx context.Context, userID, bookingID int64) (*Booking, error) {
	return s.repo.GetByIDForParticipant(ctx, bookingID, userID)
}

func (s *service) ListByBooker(ctx context.Context, bookerID int64, state string, from, size int) ([]*Booking, error) {
	return s.list(ctx, RoleBooker, bookerID, state, from, size)
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, state string, from, size int) ([]*Booking, error) {
	return s.list(ctx, RoleOwner, ownerID, state, from, size)
}

func (s *service) list(ctx context.Context, role Role, userID int64, state string, from, size int) ([]*Booking, error) {
	parsed, err := ParseState(state)
	if err != nil {
		return nil, err
	}
	if err := request.ValidateWindow(from, size); err != nil {
		return nil, err
	}

	u, err := s.users.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	limit, offset := request.Window(from, size)
	return s.repo.List(ctx, Classify(role, userID, parsed, s.now()), limit, offset)
}
