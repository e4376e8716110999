package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// Solana transaction signatures are 64 bytes, base58 encoded.
const (
	minSignatureLen = 64
	maxSignatureLen = 88
	signatureBytes  = 64
)

// ErrInvalidSignature is returned when a payment signature is malformed.
var ErrInvalidSignature = errors.New("invalid payment signature")

// SignatureFormatVerifier accepts any well-formed Solana transaction signature.
// It does not wait for the transaction to reach finality.
type SignatureFormatVerifier struct{}

// Verify checks the shape of signature.
func (SignatureFormatVerifier) Verify(_ context.Context, _ string, signature string) error {
	if n := len(signature); n < minSignatureLen || n > maxSignatureLen {
		return fmt.Errorf("%w: length %d outside %d..%d", ErrInvalidSignature, n, minSignatureLen, maxSignatureLen)
	}
	raw, err := base58.Decode(signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if len(raw) != signatureBytes {
		return fmt.Errorf("%w: decodes to %d bytes", ErrInvalidSignature, len(raw))
	}
	return nil
}
