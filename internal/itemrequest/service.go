package itemrequest

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-go/shareit-backend/internal/item"
	"github.com/shareit-go/shareit-backend/internal/pkg/request"
	"github.com/shareit-go/shareit-backend/internal/user"
)

// Service defines business logic related to item requests.
type Service interface {
	Create(ctx context.Context, userID int64, description string) (*ItemRequest, error)
	ListOwn(ctx context.Context, userID int64) ([]*Details, error)
	ListOthers(ctx context.Context, userID int64, from, size int) ([]*Details, error)
	GetByID(ctx context.Context, userID, requestID int64) (*Details, error)
}

type service struct {
	repo   Repository
	users  user.Repository
	items  item.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates an item-request Service.
func NewService(repo Repository, users user.Repository, items item.Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		users:  users,
		items:  items,
		logger: logger,
		now:    time.Now,
	}
}

func (s *service) Create(ctx context.Context, userID int64, description string) (*ItemRequest, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	req := &ItemRequest{
		Description: description,
		RequestorID: userID,
		Created:     s.now(),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info("item request created", zap.Int64("request_id", req.ID), zap.Int64("requestor_id", userID))
	return req, nil
}

func (s *service) ListOwn(ctx context.Context, userID int64) ([]*Details, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *service) ListOthers(ctx context.Context, userID int64, from, size int) ([]*Details, error) {
	if err := request.ValidateWindow(from, size); err != nil {
		return nil, err
	}
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	limit, offset := request.Window(from, size)
	requests, err := s.repo.ListByOthers(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *service) GetByID(ctx context.Context, userID, requestID int64) (*Details, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	details, err := s.attachItems(ctx, []*ItemRequest{req})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *service) checkUser(ctx context.Context, userID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *service) attachItems(ctx context.Context, requests []*ItemRequest) ([]*Details, error) {
	details := make([]*Details, 0, len(requests))
	for _, req := range requests {
		items, err := s.items.ListByRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, &Details{ItemRequest: *req, Items: items})
	}
	return details, nil
}
