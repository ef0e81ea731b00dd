package item

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-go/shareit-backend/internal/booking"
	"github.com/shareit-go/shareit-backend/internal/pkg/request"
	"github.com/shareit-go/shareit-backend/internal/user"
)

// RequestChecker reports whether an item request exists. It is the narrow
// boundary to the item-request store.
type RequestChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// CreateRequest carries the inputs of an item creation.
type CreateRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateRequest carries a partial item update; nil fields keep their value.
type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// Service defines business logic related to items and their comments.
type Service interface {
	Create(ctx context.Context, ownerID int64, req CreateRequest) (*Item, error)
	Update(ctx context.Context, ownerID, itemID int64, req UpdateRequest) (*Item, error)
	GetByID(ctx context.Context, callerID, itemID int64) (*Details, error)
	ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]*Details, error)
	Search(ctx context.Context, text string, from, size int) ([]*Item, error)
	Delete(ctx context.Context, callerID, itemID int64) error
	AddComment(ctx context.Context, authorID, itemID int64, text string) (*Comment, error)
}

type service struct {
	repo     Repository
	comments CommentRepository
	users    user.Repository
	bookings booking.Repository
	requests RequestChecker
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates an item Service.
func NewService(
	repo Repository,
	comments CommentRepository,
	users user.Repository,
	bookings booking.Repository,
	requests RequestChecker,
	logger *zap.Logger,
) Service {
	return &service{
		repo:     repo,
		comments: comments,
		users:    users,
		bookings: bookings,
		requests: requests,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, ownerID int64, req CreateRequest) (*Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.RequestID != nil {
		exists, err := s.requests.Exists(ctx, *req.RequestID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrRequestNotFound
		}
	}

	it := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	s.logger.Info("item created", zap.Int64("item_id", it.ID), zap.Int64("owner_id", ownerID))
	return it, nil
}

func (s *service) Update(ctx context.Context, ownerID, itemID int64, req UpdateRequest) (*Item, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	// A non-owner caller looks the same as a missing owner.
	if it.OwnerID != ownerID {
		return nil, ErrOwnerNotFound
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, callerID, itemID int64) (*Details, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, it, it.OwnerID == callerID)
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]*Details, error) {
	if err := request.ValidateWindow(from, size); err != nil {
		return nil, err
	}

	limit, offset := request.Window(from, size)
	items, err := s.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}

	details := make([]*Details, 0, len(items))
	for _, it := range items {
		d, err := s.details(ctx, it, true)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *service) Search(ctx context.Context, text string, from, size int) ([]*Item, error) {
	if err := request.ValidateWindow(from, size); err != nil {
		return nil, err
	}
	if text == "" {
		return []*Item{}, nil
	}

	limit, offset := request.Window(from, size)
	return s.repo.Search(ctx, text, limit, offset)
}

func (s *service) Delete(ctx context.Context, callerID, itemID int64) error {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	// Silently ignored for non-owners.
	if it.OwnerID != callerID {
		return nil
	}
	return s.repo.Delete(ctx, itemID)
}

func (s *service) AddComment(ctx context.Context, authorID, itemID int64, text string) (*Comment, error) {
	bookings, err := s.bookings.ListByBookerAndItem(ctx, authorID, itemID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var finished *booking.Booking
	for _, b := range bookings {
		if b.End.Before(now) {
			finished = b
			break
		}
	}
	if finished == nil {
		return nil, ErrNoMatchingBookings
	}
	if finished.Status != booking.StatusApproved {
		return nil, ErrCommentForbidden
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	cm := &Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Created:    now,
	}
	if err := s.comments.Create(ctx, cm); err != nil {
		return nil, err
	}

	s.logger.Info("comment added", zap.Int64("item_id", itemID), zap.Int64("author_id", authorID))
	return cm, nil
}

// details attaches comments and, for the owner, the adjacent bookings.
func (s *service) details(ctx context.Context, it *Item, forOwner bool) (*Details, error) {
	d := &Details{Item: *it}

	comments, err := s.comments.ListByItem(ctx, it.ID)
	if err != nil {
		return nil, err
	}
	d.Comments = comments

	if !forOwner {
		return d, nil
	}

	now := s.now()
	last, err := s.bookings.LastForItem(ctx, it.ID, now)
	if err != nil {
		return nil, err
	}
	if last != nil {
		d.LastBooking = &BookingTag{ID: last.ID, BookerID: last.BookerID}
	}

	next, err := s.bookings.NextForItem(ctx, it.ID, now)
	if err != nil {
		return nil, err
	}
	if next != nil {
		d.NextBooking = &BookingTag{ID: next.ID, BookerID: next.BookerID}
	}

	return d, nil
}
