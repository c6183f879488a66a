package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RepairDesk/entity"
	"RepairDesk/impl/core"
)

func newTestRouter() http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := core.New(log)
	c.SetAuthKey("staff-secret")
	return NewRouter(log, c, nil)
}

func do(h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestBookingRoutes(t *testing.T) {
	h := newTestRouter()

	rec := do(h, http.MethodPost, "/api/v1/bookings", "", entity.BookingRequest{
		ServiceID:   "screen-repair",
		DeviceBrand: "Apple",
		DeviceModel: "iPhone 14",
		Issue:       "Screen is cracked and unresponsive",
		Date:        "2026-11-02",
		TimeSlotID:  "10:00",
		Contact:     entity.Contact{Name: "Alex", Email: "alex@example.com", Phone: "5551234567"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		Success bool           `json:"success"`
		Data    entity.Receipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.True(t, strings.HasPrefix(created.Data.TrackingID, "BK-"))

	rec = do(h, http.MethodPost, "/api/v1/bookings", "", entity.BookingRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/bookings", "staff-secret", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed struct {
		Data []entity.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 1)
	assert.Equal(t, created.Data.TrackingID, listed.Data[0].TrackingID)

	rec = do(h, http.MethodPost, "/api/v1/bookings/"+created.Data.TrackingID+"/status", "staff-secret",
		map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestKeyIssue(t *testing.T) {
	h := newTestRouter()

	rec := do(h, http.MethodPost, "/api/v1/key/new", "staff-secret", map[string]string{"username": "maria"})
	require.Equal(t, http.StatusOK, rec.Code)
	var issued struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &issued))
	staffKey := issued.Data["key"]
	require.NotEmpty(t, staffKey)

	rec = do(h, http.MethodGet, "/api/v1/sales", staffKey, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/key/new", staffKey, map[string]string{"username": "other"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMiscRoutes(t *testing.T) {
	h := newTestRouter()

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/metrics", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/nope", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/v1/catalog/services", "", nil).Code)

	rec := do(h, http.MethodGet, "/api/v1/workflow/catalog/services", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "catalog not configured")
}
