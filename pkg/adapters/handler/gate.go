package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/config"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/ports"
)

// SessionGate is the default AuthGate: a signed session cookie plus the
// persisted admin flag. It is a convenience gate for a single-admin site,
// not a security boundary — swapping in a real credential backend means
// replacing this type only.
type SessionGate struct {
	jwtSecret    []byte
	kv           ports.KVStore
	isProduction bool
}

func NewSessionGate(cfg *config.Config, kv ports.KVStore) *SessionGate {
	return &SessionGate{
		jwtSecret:    []byte(cfg.JWTSecret),
		kv:           kv,
		isProduction: cfg.AppEnv == "production",
	}
}

// Authorized accepts a valid session cookie or, defensively, the
// persisted admin flag — the same double check the original route guard
// performed on every admin navigation.
func (g *SessionGate) Authorized(r *http.Request) bool {
	if cookie, err := r.Cookie("auth_token"); err == nil {
		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
			return g.jwtSecret, nil
		})
		if err == nil && token.Valid {
			return true
		}
	}

	flag, ok, err := g.kv.Read(r.Context(), ports.AdminAuthKey)
	return err == nil && ok && flag == "true"
}

// Grant issues the session cookie and persists the admin flag.
func (g *SessionGate) Grant(ctx context.Context, w http.ResponseWriter) error {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(expirationTime),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(g.jwtSecret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    tokenString,
		Expires:  expirationTime,
		Path:     "/",
		HttpOnly: true,
		Secure:   g.isProduction,
		SameSite: http.SameSiteLaxMode,
	})

	return g.kv.Write(ctx, ports.AdminAuthKey, "true")
}

// Revoke expires the cookie and deletes the persisted flag.
func (g *SessionGate) Revoke(ctx context.Context, w http.ResponseWriter) error {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Expires:  time.Now().Add(-1 * time.Hour),
		Path:     "/",
		HttpOnly: true,
		Secure:   g.isProduction,
		SameSite: http.SameSiteLaxMode,
	})

	return g.kv.Delete(ctx, ports.AdminAuthKey)
}

var _ ports.AuthGate = (*SessionGate)(nil)
