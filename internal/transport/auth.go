package transport

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

// OperatorResolver resolves an operator name from a bearer key.
type OperatorResolver interface {
	ResolveOperator(ctx context.Context, key string) (string, error)
}

// StaticKey accepts a single configured key.
type StaticKey struct {
	Key      string
	Operator string
}

// ResolveOperator implements OperatorResolver.
func (s StaticKey) ResolveOperator(_ context.Context, key string) (string, error) {
	if s.Key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.Key)) != 1 {
		return "", ErrUnauthorized
	}
	if s.Operator == "" {
		return "operator", nil
	}
	return s.Operator, nil
}

// AuthMiddleware enforces bearer key authentication. The resolved operator
// is added to the request log line.
func AuthMiddleware(resolver OperatorResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			key := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if key == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			operator, err := resolver.ResolveOperator(r.Context(), key)
			if err != nil || operator == "" {
				http.Error(w, "invalid bearer token", http.StatusUnauthorized)
				return
			}

			noteOperator(r.Context(), operator)
			next.ServeHTTP(w, r)
		})
	}
}
