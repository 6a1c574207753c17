package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/silkway-travel/tour-booking-api/internal/models"
)

type contextKey string

// UserIDKey carries the authenticated admin's ID through the request context.
const UserIDKey contextKey = "user_id"

// AuthMiddleware guards the admin surface. Automation clients send an
// X-API-KEY header; browser sessions fall back to the auth_token cookie
// issued at login.
func (h *AuthHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiKey := r.Header.Get("X-API-KEY"); apiKey != "" {
			var key models.APIKey
			if err := h.db.Where("key = ?", apiKey).First(&key).Error; err == nil {
				if key.ExpiresAt != nil && time.Now().After(*key.ExpiresAt) {
					http.Error(w, "Unauthorized: API key expired", http.StatusUnauthorized)
					return
				}

				h.db.Model(&key).Update("last_used_at", time.Now())

				ctx := context.WithValue(r.Context(), UserIDKey, key.UserID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			// Unknown key, fall through to the cookie check
		}

		cookie, err := r.Cookie("auth_token")
		if err != nil {
			if errors.Is(err, http.ErrNoCookie) {
				http.Error(w, "Unauthorized: No token found", http.StatusUnauthorized)
				return
			}
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		userID, remaining, err := h.parseSessionToken(cookie.Value)
		if err != nil {
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		// Sliding session: reissue once the token is past half its lifetime
		if remaining < TokenDuration/2 {
			if fresh, err := h.GenerateToken(userID); err == nil {
				http.SetCookie(w, &http.Cookie{
					Name:     "auth_token",
					Value:    fresh,
					Expires:  time.Now().Add(TokenDuration),
					HttpOnly: true,
					Path:     "/",
				})
			}
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *AuthHandler) parseSessionToken(tokenString string) (uint, time.Duration, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, errors.New("invalid session token")
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, 0, errors.New("missing user claim")
	}

	var remaining time.Duration
	if exp, ok := claims["exp"].(float64); ok {
		remaining = time.Until(time.Unix(int64(exp), 0))
	}
	return uint(userIDFloat), remaining, nil
}
