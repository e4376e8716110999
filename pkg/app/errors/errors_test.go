package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

var errSentinel = errors.New("sentinel")

func TestServiceError_StatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", BadRequestError(nil, "bad"), http.StatusBadRequest},
		{"validation", ValidationError(nil, "invalid", "field is required"), http.StatusBadRequest},
		{"unauthorized", UnAuthorizedError(nil, "no"), http.StatusUnauthorized},
		{"forbidden", ForbiddenError(nil, "no"), http.StatusForbidden},
		{"not found", ResourceNotFoundError(nil, "missing"), http.StatusNotFound},
		{"conflict", ConflictError(nil, "dup"), http.StatusConflict},
		{"rate limited", TooManyRequestsError(nil, "slow down"), http.StatusTooManyRequests},
		{"dependency", DependencyFailureError(nil, "bad upstream"), http.StatusBadGateway},
		{"unavailable", UnavailableError(nil, "down"), http.StatusServiceUnavailable},
		{"timeout", TimeoutError(nil, "slow"), http.StatusGatewayTimeout},
		{"general", GeneralError(nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svcErr *ServiceError
			if !errors.As(tt.err, &svcErr) {
				t.Fatalf("expected *ServiceError, got %T", tt.err)
			}
			if got := svcErr.StatusCode(); got != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, got)
			}
		})
	}
}

func TestServiceError_WrapsUnderlyingError(t *testing.T) {
	err := fmt.Errorf("confirm: %w", ConflictError(errSentinel, "already exists"))

	if !errors.Is(err, errSentinel) {
		t.Fatalf("expected sentinel in chain, got %v", err)
	}
	if !Is(err, CategoryDataConflict) {
		t.Fatalf("expected CategoryDataConflict, got %v", err)
	}
	if Is(err, CategoryDataError) {
		t.Fatal("did not expect CategoryDataError")
	}
}

func TestIsInternalError(t *testing.T) {
	if IsInternalError(BadRequestError(nil, "bad")) {
		t.Fatal("bad request must not be internal")
	}
	if IsInternalError(TooManyRequestsError(nil, "slow")) {
		t.Fatal("rate limit must not be internal")
	}
	if !IsInternalError(UnavailableError(nil, "down")) {
		t.Fatal("unavailable dependency must be internal")
	}
	if !IsInternalError(errors.New("plain")) {
		t.Fatal("plain errors must be internal")
	}
}

func TestValidationError_KeepsDetails(t *testing.T) {
	err := ValidationError(nil, "Validation failed", "dob is required", "birthPlace is required")

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError, got %T", err)
	}
	if len(svcErr.Errors) != 2 {
		t.Fatalf("expected 2 details, got %v", svcErr.Errors)
	}
	if svcErr.Message != "Validation failed" {
		t.Fatalf("unexpected message %q", svcErr.Message)
	}
}

func TestCategory_UnknownFallsBackToGeneral(t *testing.T) {
	var zero Category
	if zero.String() != "CategoryGeneralError" {
		t.Fatalf("unexpected name %q", zero.String())
	}
	if got := (ServiceError{Category: zero}).StatusCode(); got != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unknown category, got %d", got)
	}
	if CategoryDataConflict.String() != "CategoryDataConflict" {
		t.Fatalf("unexpected name %q", CategoryDataConflict.String())
	}
}

func TestNew_FillsMissingCause(t *testing.T) {
	err := New(CategoryResourceNotFound, nil, "User not found")

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError, got %T", err)
	}
	if svcErr.Err == nil || svcErr.Error() != "resource not found: User not found" {
		t.Fatalf("unexpected cause %v", svcErr.Err)
	}
}
