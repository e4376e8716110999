package auth

import (
	"context"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeyWalletAddress is the context key for the authenticated wallet address
	ContextKeyWalletAddress contextKey = "wallet_address"
	// ContextKeyClaims is the context key for the verified token claims
	ContextKeyClaims contextKey = "claims"
)

// WithWalletAddress adds the wallet address to the context
func WithWalletAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, ContextKeyWalletAddress, address)
}

// WalletAddressFromContext retrieves the wallet address from the context
func WalletAddressFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(ContextKeyWalletAddress).(string)
	return addr, ok && addr != ""
}

// WithClaims adds the verified claims and their wallet address to the context
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, ContextKeyClaims, claims)
	return WithWalletAddress(ctx, claims.WalletAddress)
}

// ClaimsFromContext retrieves the verified claims from the context
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*Claims)
	return claims, ok && claims != nil
}
