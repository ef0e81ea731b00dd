package app

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/shareit-go/shareit-backend/internal/api"
	"github.com/shareit-go/shareit-backend/internal/booking"
	"github.com/shareit-go/shareit-backend/internal/item"
	"github.com/shareit-go/shareit-backend/internal/itemrequest"
	"github.com/shareit-go/shareit-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Logger       *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, cfg.Logger)

	// Item Request Module (repo first: the item module checks request existence)
	requestRepo := itemrequest.NewPgxRepository(cfg.DBPool)

	// Item Module
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	commentRepo := item.NewPgxCommentRepository(cfg.DBPool)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(
		bookingRepo,
		&itemFinder{items: itemRepo},
		&userFinder{users: userRepo},
		cfg.Logger,
	)

	itemService := item.NewService(
		itemRepo,
		commentRepo,
		userRepo,
		bookingRepo,
		&requestChecker{requests: requestRepo},
		cfg.Logger,
	)

	requestService := itemrequest.NewService(requestRepo, userRepo, itemRepo, cfg.Logger)

	// API Router Config
	routerParams := api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         cfg.Logger,
		UserService:    userService,
		ItemService:    itemService,
		RequestService: requestService,
		BookingService: bookingService,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router: router,
	}
}

// itemFinder adapts the item repository to the booking module's lookup
// boundary. A missing item surfaces as (nil, nil).
type itemFinder struct {
	items item.Repository
}

func (f *itemFinder) FindItem(ctx context.Context, id int64) (*booking.ItemRef, error) {
	it, err := f.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, item.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking.ItemRef{
		ID:        it.ID,
		Name:      it.Name,
		OwnerID:   it.OwnerID,
		Available: it.Available,
	}, nil
}

// userFinder adapts the user repository to the booking module's lookup
// boundary. A missing user surfaces as (nil, nil).
type userFinder struct {
	users user.Repository
}

func (f *userFinder) FindUser(ctx context.Context, id int64) (*booking.UserRef, error) {
	u, err := f.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking.UserRef{ID: u.ID, Name: u.Name}, nil
}

// requestChecker adapts the item-request repository to the item module's
// existence check.
type requestChecker struct {
	requests itemrequest.Repository
}

func (f *requestChecker) Exists(ctx context.Context, id int64) (bool, error) {
	if _, err := f.requests.GetByID(ctx, id); err != nil {
		if errors.Is(err, itemrequest.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
