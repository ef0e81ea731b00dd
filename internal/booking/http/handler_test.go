package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit-go/shareit-backend/internal/booking"
	"github.com/shareit-go/shareit-backend/internal/identity"
)

type fakeService struct {
	created     *booking.Booking
	createErr   error
	confirmed   *booking.Booking
	confirmErr  error
	got         *booking.Booking
	getErr      error
	listed      []*booking.Booking
	listErr     error
	lastState   string
	lastFrom    int
	lastSize    int
	lastUserID  int64
	lastApprove bool
}

func (f *fakeService) Create(ctx context.Context, bookerID int64, req booking.CreateRequest) (*booking.Booking, error) {
	f.lastUserID = bookerID
	return f.created, f.createErr
}

func (f *fakeService) Confirm(ctx context.Context, ownerID, bookingID int64, approved bool) (*booking.Booking, error) {
	f.lastUserID = ownerID
	f.lastApprove = approved
	return f.confirmed, f.confirmErr
}

func (f *fakeService) GetByIDForParticipant(ctx context.Context, userID, bookingID int64) (*booking.Booking, error) {
	f.lastUserID = userID
	return f.got, f.getErr
}

func (f *fakeService) ListByBooker(ctx context.Context, bookerID int64, state string, from, size int) ([]*booking.Booking, error) {
	f.lastUserID = bookerID
	f.lastState = state
	f.lastFrom = from
	f.lastSize = size
	return f.listed, f.listErr
}

func (f *fakeService) ListByOwner(ctx context.Context, ownerID int64, state string, from, size int) ([]*booking.Booking, error) {
	f.lastUserID = ownerID
	f.lastState = state
	f.lastFrom = from
	f.lastSize = size
	return f.listed, f.listErr
}

func newTestRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group(""), NewHandler(svc), identity.Required())
	return r
}

func doRequest(r *gin.Engine, method, path string, body any, userID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(identity.Header, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBooking(t *testing.T) {
	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	end := start.Add(time.Hour)

	t.Run("created", func(t *testing.T) {
		svc := &fakeService{created: &booking.Booking{
			ID: 1, Start: start, End: end, Status: booking.StatusWaiting,
			ItemID: 2, ItemName: "drill", BookerID: 3, BookerName: "alice",
		}}
		r := newTestRouter(svc)

		w := doRequest(r, http.MethodPost, "/bookings",
			CreateBookingRequest{ItemID: 2, Start: start, End: end}, "3")
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(3), svc.lastUserID)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "WAITING", resp.Status)
		assert.Equal(t, "drill", resp.Item.Name)
		assert.Equal(t, "alice", resp.Booker.Name)
	})

	t.Run("missing identity header", func(t *testing.T) {
		r := newTestRouter(&fakeService{})
		w := doRequest(r, http.MethodPost, "/bookings",
			CreateBookingRequest{ItemID: 2, Start: start, End: end}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("past dates rejected before the service runs", func(t *testing.T) {
		svc := &fakeService{}
		r := newTestRouter(svc)
		w := doRequest(r, http.MethodPost, "/bookings",
			CreateBookingRequest{ItemID: 2, Start: start.Add(-48 * time.Hour), End: end}, "3")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, svc.lastUserID)
	})

	t.Run("service errors map to their status", func(t *testing.T) {
		svc := &fakeService{createErr: booking.ErrOwnItem}
		r := newTestRouter(svc)
		w := doRequest(r, http.MethodPost, "/bookings",
			CreateBookingRequest{ItemID: 2, Start: start, End: end}, "3")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "user cannot reserve own item")
	})
}

func TestConfirmBooking(t *testing.T) {
	t.Run("approved query flag", func(t *testing.T) {
		svc := &fakeService{confirmed: &booking.Booking{ID: 5, Status: booking.StatusApproved}}
		r := newTestRouter(svc)
		w := doRequest(r, http.MethodPatch, "/bookings/5?approved=true", nil, "10")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, svc.lastApprove)
	})

	t.Run("missing approved flag", func(t *testing.T) {
		r := newTestRouter(&fakeService{})
		w := doRequest(r, http.MethodPatch, "/bookings/5", nil, "10")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid approved parameter")
	})

	t.Run("already confirmed", func(t *testing.T) {
		svc := &fakeService{confirmErr: booking.ErrAlreadyConfirmed}
		r := newTestRouter(svc)
		w := doRequest(r, http.MethodPatch, "/bookings/5?approved=false", nil, "10")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "booking already confirmed")
	})
}

func TestGetBooking(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeService{got: &booking.Booking{ID: 7, Status: booking.StatusWaiting}}
		r := newTestRouter(svc)
		w := doRequest(r, http.MethodGet, "/bookings/7", nil, "3")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-participant", func(t *testing.T) {
		svc := &fakeService{getErr: booking.ErrNotFound}
		r := newTestRouter(svc)
		w := doRequest(r, http.MethodGet, "/bookings/7", nil, "99")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad path id", func(t *testing.T) {
		r := newTestRouter(&fakeService{})
		w := doRequest(r, http.MethodGet, "/bookings/abc", nil, "3")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListBookings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		svc := &fakeService{listed: []*booking.Booking{}}
		r := newTestRouter(svc)
		w := doRequest(r, http.MethodGet, "/bookings", nil, "3")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ALL", svc.lastState)
		assert.Equal(t, 0, svc.lastFrom)
		assert.Equal(t, 10, svc.lastSize)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("owner listing forwards params", func(t *testing.T) {
		svc := &fakeService{listed: []*booking.Booking{}}
		r := newTestRouter(svc)
		w := doRequest(r, http.MethodGet, "/bookings/owner?state=WAITING&from=5&size=2", nil, "3")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "WAITING", svc.lastState)
		assert.Equal(t, 5, svc.lastFrom)
		assert.Equal(t, 2, svc.lastSize)
	})

	t.Run("unknown state surfaces as 400", func(t *testing.T) {
		svc := &fakeService{listErr: booking.ErrUnknownState}
		r := newTestRouter(svc)
		w := doRequest(r, http.MethodGet, "/bookings?state=NOPE", nil, "3")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown state")
	})

	t.Run("non-numeric identity header", func(t *testing.T) {
		r := newTestRouter(&fakeService{})
		w := doRequest(r, http.MethodGet, "/bookings", nil, "abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
