package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 24 * time.Hour

const (
	claimWalletAddress = "wallet_address"
	claimIssuedAt      = "iat"
	claimExpiresAt     = "exp"
)

var (
	// ErrTokenExpired is returned for a well-formed token past its expiry
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for any token that fails parsing or signature checks
	ErrTokenInvalid = errors.New("invalid token")
	// ErrMissingToken is returned when a request carries no bearer token
	ErrMissingToken = errors.New("no token provided")
	// ErrEmptyWallet is returned when a token is requested for an empty wallet address
	ErrEmptyWallet = errors.New("wallet address is required")
)

// Claims is the verified content of a session token.
type Claims struct {
	WalletAddress string
	IssuedAt      time.Time
	ExpiresAt     time.Time
	Extra         map[string]any
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption configures a TokenService.
type TokenOption func(*TokenService)

// WithClock overrides the clock used for iat, exp and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

// WithTTL overrides DefaultTokenTTL.
func WithTTL(ttl time.Duration) TokenOption {
	return func(s *TokenService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewTokenService creates a TokenService signing with secret.
func NewTokenService(secret string, opts ...TokenOption) *TokenService {
	s := &TokenService{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs a token for walletAddress. Extra claims are copied in, but
// wallet_address, iat and exp always take the computed values.
func (s *TokenService) Issue(walletAddress string, extra map[string]any) (string, error) {
	if walletAddress == "" {
		return "", ErrEmptyWallet
	}
	now := s.now()

	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	claims[claimWalletAddress] = walletAddress
	claims[claimIssuedAt] = now.Unix()
	claims[claimExpiresAt] = now.Add(s.ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of token and returns its claims.
func (s *TokenService) Verify(token string) (*Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	wallet, ok := mc[claimWalletAddress].(string)
	if !ok || wallet == "" {
		return nil, fmt.Errorf("%w: missing %s claim", ErrTokenInvalid, claimWalletAddress)
	}

	claims := &Claims{
		WalletAddress: wallet,
		Extra:         make(map[string]any),
	}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	for k, v := range mc {
		switch k {
		case claimWalletAddress, claimIssuedAt, claimExpiresAt:
		default:
			claims.Extra[k] = v
		}
	}
	return claims, nil
}

// ExtractBearerToken returns the token from an "Authorization: Bearer <token>"
// header value. ok is false when the header has any other shape.
func ExtractBearerToken(header string) (token string, ok bool) {
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
