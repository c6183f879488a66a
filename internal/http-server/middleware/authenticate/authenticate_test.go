package authenticate

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"RepairDesk/entity"
	"RepairDesk/internal/lib/api/cont"
)

type keyAuth string

func (k keyAuth) AuthenticateByToken(token string) (*entity.StaffAuth, error) {
	if token != string(k) {
		return nil, errors.New("unknown key")
	}
	return &entity.StaffAuth{Username: "maria"}, nil
}

func TestAuthenticate(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	var seen *entity.StaffAuth
	h := New(log, keyAuth("k1"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = cont.GetStaff(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"wrong key", "Bearer nope", http.StatusUnauthorized},
		{"valid key", "Bearer k1", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "maria", seen.Username)
				assert.Equal(t, "maria", rec.Header().Get("X-User"))
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}
