package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/dto"
)

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"PRY-010003", http.StatusBadRequest},
		{"SYN-020001", http.StatusServiceUnavailable},
		{"AUT-030002", http.StatusUnauthorized},
		{"AUT-040001", http.StatusTooManyRequests},
		{"ZKT-990001", http.StatusInternalServerError},
		{"garbage", http.StatusInternalServerError},
		{"X-1", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := statusForCode(tt.code); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name: "wrapped domain error keeps its code",
			err: fmt.Errorf("marking: %w", domainerror.NewPrayerError(
				domainerror.ErrCodeInvalidPrayerDate, "invalid date", domainerror.ErrInvalidDateFormat)),
			wantStatus: http.StatusBadRequest,
			wantCode:   "PRY-010003",
		},
		{
			name: "unavailable remote",
			err: domainerror.NewSyncError(
				domainerror.ErrCodeSyncRemoteUnavailable, "sync remote unavailable", errors.New("dial tcp")),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "SYN-020001",
		},
		{
			name:       "unknown error is internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(ctx, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, body.Code)
			}
		})
	}
}

func TestRequireUser_WithoutAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := requireUser(ctx); ok {
		t.Fatal("expected no user")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
