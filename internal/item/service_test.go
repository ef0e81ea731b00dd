package item

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shareit-go/shareit-backend/internal/booking"
	"github.com/shareit-go/shareit-backend/internal/pkg/request"
	"github.com/shareit-go/shareit-backend/internal/user"
)

type fakeItemRepo struct {
	items    map[int64]*Item
	created  *Item
	updated  *Item
	deleted  []int64
	searched []*Item
}

func (f *fakeItemRepo) GetByID(ctx context.Context, id int64) (*Item, error) {
	if it, ok := f.items[id]; ok {
		copied := *it
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (f *fakeItemRepo) ListByOwner(ctx context.Context, ownerID int64, limit, offset uint64) ([]*Item, error) {
	var out []*Item
	for _, it := range f.items {
		if it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) ListByRequest(ctx context.Context, requestID int64) ([]*Item, error) {
	return nil, nil
}

func (f *fakeItemRepo) Search(ctx context.Context, text string, limit, offset uint64) ([]*Item, error) {
	return f.searched, nil
}

func (f *fakeItemRepo) Create(ctx context.Context, it *Item) error {
	it.ID = 100
	f.created = it
	return nil
}

func (f *fakeItemRepo) Update(ctx context.Context, it *Item) error {
	f.updated = it
	return nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCommentRepo struct {
	created  *Comment
	comments []*Comment
}

func (f *fakeCommentRepo) Create(ctx context.Context, cm *Comment) error {
	cm.ID = 200
	f.created = cm
	return nil
}

func (f *fakeCommentRepo) ListByItem(ctx context.Context, itemID int64) ([]*Comment, error) {
	return f.comments, nil
}

type fakeUserRepo struct {
	users map[int64]*user.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*user.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error     { return nil }

type fakeBookingRepo struct {
	byBookerAndItem []*booking.Booking
	last            *booking.Booking
	next            *booking.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *booking.Booking) error { return nil }

func (f *fakeBookingRepo) GetByIDAndOwner(ctx context.Context, bookingID, ownerID int64) (*booking.Booking, error) {
	return nil, booking.ErrNotFound
}

func (f *fakeBookingRepo) GetByIDForParticipant(ctx context.Context, bookingID, userID int64) (*booking.Booking, error) {
	return nil, booking.ErrNotFound
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, b *booking.Booking) error { return nil }

func (f *fakeBookingRepo) List(ctx context.Context, conds []squirrel.Sqlizer, limit, offset uint64) ([]*booking.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListByBookerAndItem(ctx context.Context, bookerID, itemID int64) ([]*booking.Booking, error) {
	return f.byBookerAndItem, nil
}

func (f *fakeBookingRepo) LastForItem(ctx context.Context, itemID int64, now time.Time) (*booking.Booking, error) {
	return f.last, nil
}

func (f *fakeBookingRepo) NextForItem(ctx context.Context, itemID int64, now time.Time) (*booking.Booking, error) {
	return f.next, nil
}

type fakeRequestChecker struct {
	existing map[int64]bool
}

func (f *fakeRequestChecker) Exists(ctx context.Context, id int64) (bool, error) {
	return f.existing[id], nil
}

type fixture struct {
	repo     *fakeItemRepo
	comments *fakeCommentRepo
	users    *fakeUserRepo
	bookings *fakeBookingRepo
	requests *fakeRequestChecker
	svc      *service
	now      time.Time
}

func newFixture() *fixture {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f := &fixture{
		repo: &fakeItemRepo{items: map[int64]*Item{
			1: {ID: 1, Name: "drill", Description: "cordless", Available: true, OwnerID: 10},
		}},
		comments: &fakeCommentRepo{},
		users: &fakeUserRepo{users: map[int64]*user.User{
			10: {ID: 10, Name: "owner", Email: "owner@example.com"},
			20: {ID: 20, Name: "booker", Email: "booker@example.com"},
		}},
		bookings: &fakeBookingRepo{},
		requests: &fakeRequestChecker{existing: map[int64]bool{7: true}},
		now:      now,
	}
	f.svc = &service{
		repo:     f.repo,
		comments: f.comments,
		users:    f.users,
		bookings: f.bookings,
		requests: f.requests,
		logger:   zap.NewNop(),
		now:      func() time.Time { return now },
	}
	return f
}

func TestCreateItem(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture()
		it, err := f.svc.Create(context.Background(), 10, CreateRequest{
			Name: "ladder", Description: "3m", Available: true,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(100), it.ID)
		assert.Equal(t, int64(10), it.OwnerID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Create(context.Background(), 999, CreateRequest{Name: "ladder"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("linked request must exist", func(t *testing.T) {
		f := newFixture()
		missing := int64(999)
		_, err := f.svc.Create(context.Background(), 10, CreateRequest{Name: "ladder", RequestID: &missing})
		assert.ErrorIs(t, err, ErrRequestNotFound)

		known := int64(7)
		it, err := f.svc.Create(context.Background(), 10, CreateRequest{Name: "ladder", RequestID: &known})
		require.NoError(t, err)
		require.NotNil(t, it.RequestID)
		assert.Equal(t, known, *it.RequestID)
	})
}

func TestUpdateItem(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		f := newFixture()
		name := "hammer drill"
		it, err := f.svc.Update(context.Background(), 10, 1, UpdateRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "hammer drill", it.Name)
		assert.Equal(t, "cordless", it.Description)
		assert.True(t, it.Available)
	})

	t.Run("non-owner is indistinguishable from missing owner", func(t *testing.T) {
		f := newFixture()
		name := "stolen"
		_, err := f.svc.Update(context.Background(), 20, 1, UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrOwnerNotFound)
		assert.Nil(t, f.repo.updated)
	})
}

func TestGetItemDetails(t *testing.T) {
	t.Run("owner sees adjacent bookings", func(t *testing.T) {
		f := newFixture()
		f.bookings.last = &booking.Booking{ID: 3, BookerID: 20}
		f.bookings.next = &booking.Booking{ID: 4, BookerID: 20}

		d, err := f.svc.GetByID(context.Background(), 10, 1)
		require.NoError(t, err)
		require.NotNil(t, d.LastBooking)
		assert.Equal(t, int64(3), d.LastBooking.ID)
		require.NotNil(t, d.NextBooking)
		assert.Equal(t, int64(4), d.NextBooking.ID)
	})

	t.Run("non-owner sees no bookings", func(t *testing.T) {
		f := newFixture()
		f.bookings.last = &booking.Booking{ID: 3, BookerID: 20}

		d, err := f.svc.GetByID(context.Background(), 20, 1)
		require.NoError(t, err)
		assert.Nil(t, d.LastBooking)
		assert.Nil(t, d.NextBooking)
	})
}

func TestSearchItems(t *testing.T) {
	t.Run("blank text short-circuits to empty", func(t *testing.T) {
		f := newFixture()
		f.repo.searched = []*Item{{ID: 1}}

		got, err := f.svc.Search(context.Background(), "", 0, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("window validated first", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Search(context.Background(), "", -1, 10)
		assert.ErrorIs(t, err, request.ErrBadWindow)
	})
}

func TestDeleteItem(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.svc.Delete(context.Background(), 10, 1))
		assert.Equal(t, []int64{1}, f.repo.deleted)
	})

	t.Run("missing item and non-owner are silent", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.svc.Delete(context.Background(), 10, 999))
		require.NoError(t, f.svc.Delete(context.Background(), 20, 1))
		assert.Empty(t, f.repo.deleted)
	})
}

func TestAddComment(t *testing.T) {
	finished := func(status booking.Status) *booking.Booking {
		return &booking.Booking{
			ID:     1,
			Status: status,
			End:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}
	}

	t.Run("after a finished approved booking", func(t *testing.T) {
		f := newFixture()
		f.bookings.byBookerAndItem = []*booking.Booking{finished(booking.StatusApproved)}

		cm, err := f.svc.AddComment(context.Background(), 20, 1, "works great")
		require.NoError(t, err)
		assert.Equal(t, "works great", cm.Text)
		assert.Equal(t, "booker", cm.AuthorName)
		assert.Equal(t, f.now, cm.Created)
	})

	t.Run("no finished booking", func(t *testing.T) {
		f := newFixture()
		f.bookings.byBookerAndItem = []*booking.Booking{{
			ID: 1, Status: booking.StatusApproved,
			End: time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
		}}

		_, err := f.svc.AddComment(context.Background(), 20, 1, "too early")
		assert.ErrorIs(t, err, ErrNoMatchingBookings)
	})

	t.Run("never booked", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.AddComment(context.Background(), 20, 1, "drive-by")
		assert.ErrorIs(t, err, ErrNoMatchingBookings)
	})

	t.Run("unknown author is a validation failure", func(t *testing.T) {
		f := newFixture()
		f.bookings.byBookerAndItem = []*booking.Booking{finished(booking.StatusApproved)}

		_, err := f.svc.AddComment(context.Background(), 999, 1, "ghost")
		require.ErrorIs(t, err, ErrAuthorNotFound)
		assert.Equal(t, http.StatusBadRequest, ErrAuthorNotFound.Code)
	})

	t.Run("finished but not approved", func(t *testing.T) {
		f := newFixture()
		f.bookings.byBookerAndItem = []*booking.Booking{finished(booking.StatusRejected)}

		_, err := f.svc.AddComment(context.Background(), 20, 1, "never happened")
		assert.ErrorIs(t, err, ErrCommentForbidden)
	})
}
