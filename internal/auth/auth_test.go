package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/silkway-travel/tour-booking-api/internal/config"
	"github.com/silkway-travel/tour-booking-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuth(t *testing.T) (*AuthHandler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.AdminUser{}, &models.APIKey{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret"}
	return NewAuthHandler(cfg, db), db
}

func TestHandleLogin(t *testing.T) {
	handler, db := setupAuth(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	db.Create(&models.AdminUser{Username: "admin", PasswordHash: string(hash)})

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(`{"username":"admin","password":"s3cret"}`))
		rr := httptest.NewRecorder()

		handler.HandleLogin(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
		}

		found := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == "auth_token" && c.Value != "" {
				found = true
			}
		}
		if !found {
			t.Error("expected auth_token cookie to be set")
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(`{"username":"admin","password":"nope"}`))
		rr := httptest.NewRecorder()

		handler.HandleLogin(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rr.Code)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(`{"username":"ghost","password":"s3cret"}`))
		rr := httptest.NewRecorder()

		handler.HandleLogin(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rr.Code)
		}
	})
}

func TestAuthMiddleware_APIKey(t *testing.T) {
	handler, db := setupAuth(t)

	db.Create(&models.AdminUser{Username: "admin", PasswordHash: "x"})
	key := models.APIKey{UserID: 1, Key: "test-key", Name: "ci"}
	db.Create(&key)

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(UserIDKey).(uint); !ok {
			t.Error("expected user ID in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("ValidKey", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/intake/feedback", nil)
		req.Header.Set("X-API-KEY", "test-key")
		rr := httptest.NewRecorder()

		handler.AuthMiddleware(nextHandler).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rr.Code)
		}

		var stored models.APIKey
		db.First(&stored, key.ID)
		if stored.LastUsedAt == nil {
			t.Error("expected last_used_at to be touched")
		}
	})

	t.Run("ExpiredKey", func(t *testing.T) {
		expired := time.Now().Add(-time.Hour)
		db.Create(&models.APIKey{UserID: 1, Key: "old-key", Name: "old", ExpiresAt: &expired})

		req := httptest.NewRequest("GET", "/admin/intake/feedback", nil)
		req.Header.Set("X-API-KEY", "old-key")
		rr := httptest.NewRecorder()

		handler.AuthMiddleware(nextHandler).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for expired key, got %d", rr.Code)
		}
	})
}
