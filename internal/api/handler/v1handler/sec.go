package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"corpus/internal/config"
	"corpus/pkg/serrors"
)

// SecHandlerOptions configure bearer token verification for v1 endpoints.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key tokens are verified against.
	// When empty, authentication is disabled and all requests pass through.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler verifies RS256 bearer tokens on incoming requests.
type SecHandler struct {
	key *rsa.PublicKey
}

// NewSecHandler parses the configured public key. A nil key disables
// verification.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// subjectKey is the context key under which the token subject is stored.
type subjectKey struct{}

// GetSubjectFromContext returns the verified token subject, empty when the
// request was not authenticated.
func GetSubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectKey{}).(string)

	return subject
}

// Middleware returns the bearer auth middleware. Requests without a valid
// token are rejected with 401.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	if s.key == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(raw, "Bearer ")
		if !ok || token == "" {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		claims := jwt.RegisteredClaims{}
		if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
			return s.key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})); err != nil {
			writeError(w, r, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token"))

			return
		}

		ctx := context.WithValue(r.Context(), subjectKey{}, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
