package auth

import (
	"errors"
	"net/http"

	apperrors "github.com/hastrology/hastrology/pkg/app/errors"
)

// Verifier checks a raw token. *TokenService implements it.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// ErrorWriter writes an error envelope for a rejected request.
type ErrorWriter interface {
	WriteError(w http.ResponseWriter, r *http.Request, err error)
}

// Required rejects requests without a valid bearer token.
func Required(v Verifier, ew ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := ExtractBearerToken(r.Header.Get("Authorization"))
			if !ok {
				ew.WriteError(w, r, apperrors.UnAuthorizedError(ErrMissingToken, "No token provided"))
				return
			}
			claims, err := v.Verify(token)
			if err != nil {
				ew.WriteError(w, r, tokenError(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// Optional attaches claims when a valid bearer token is present. A request
// without an Authorization header passes through. A present but malformed,
// expired or invalid token is rejected.
func Optional(v Verifier, ew ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			token, ok := ExtractBearerToken(header)
			if !ok {
				ew.WriteError(w, r, apperrors.UnAuthorizedError(ErrTokenInvalid, "Invalid token"))
				return
			}
			claims, err := v.Verify(token)
			if err != nil {
				ew.WriteError(w, r, tokenError(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func tokenError(err error) error {
	if errors.Is(err, ErrTokenExpired) {
		return apperrors.UnAuthorizedError(err, "Token expired")
	}
	return apperrors.UnAuthorizedError(err, "Invalid token")
}
