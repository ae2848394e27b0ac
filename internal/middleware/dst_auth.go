package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fhuszti/videos-cdn-go/internal/api_context"
	"github.com/fhuszti/videos-cdn-go/internal/handler/api"
	"github.com/golang-jwt/jwt/v4"
)

// Claims expected on every Studio service token.
const (
	tokenIssuer   = "studio"
	tokenAudience = "videos"
	// allowed clock skew on iat
	issuedAtLeeway = 30 * time.Second
)

// WithDSTAuth validates the short-lived Bearer JWT Studio forwards for the
// user and stores its subject and roles for course resolution.
func WithDSTAuth(jwtPublicKeyPEM string) func(http.Handler) http.Handler {
	// Passthrough if no public key is provided; requests then act as staff
	if jwtPublicKeyPEM == "" {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(jwtPublicKeyPEM))
	if err != nil {
		panic(fmt.Sprintf("invalid studio RSA public key: %v", err))
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name}),
	)
	keyFunc := func(*jwt.Token) (interface{}, error) { return pubKey, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				api.WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}

			claims := jwt.MapClaims{}
			tok, err := parser.ParseWithClaims(raw, claims, keyFunc)
			if err != nil || !tok.Valid {
				api.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}
			if msg := checkStudioClaims(claims, time.Now()); msg != "" {
				api.WriteError(w, http.StatusUnauthorized, msg, nil)
				return
			}

			sub, _ := claims["sub"].(string)
			ctx := context.WithValue(r.Context(), api_context.AuthUserIDKey, sub)
			ctx = context.WithValue(ctx, api_context.AuthRolesKey, studioRoles(claims))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// checkStudioClaims returns the rejection message, or "" for a usable token.
func checkStudioClaims(claims jwt.MapClaims, now time.Time) string {
	switch {
	case !claims.VerifyIssuer(tokenIssuer, true):
		return "bad issuer"
	case !claims.VerifyAudience(tokenAudience, true):
		return "bad audience"
	case !claims.VerifyExpiresAt(now.Unix(), true):
		return "token expired"
	}
	if iat, ok := asInt64(claims["iat"]); ok && time.Unix(iat, 0).After(now.Add(issuedAtLeeway)) {
		return "invalid iat"
	}
	if sub, _ := claims["sub"].(string); sub == "" {
		return "missing sub"
	}
	return ""
}

// studioRoles reads the roles claim. Studio marks global staff with the
// administrator flag instead of a role.
func studioRoles(claims jwt.MapClaims) []string {
	roles := toStringSlice(claims["roles"])
	if admin, _ := claims["administrator"].(bool); admin {
		roles = append(roles, "global_staff")
	}
	return roles
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case float64:
		return int64(x), true
	case json.Number:
		i, err := x.Int64()
		if err == nil {
			return i, true
		}
	}
	return 0, false
}

func toStringSlice(v any) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
