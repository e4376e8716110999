package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/hastrology/hastrology/pkg/app/errors"
	apphttp "github.com/hastrology/hastrology/pkg/app/http"
	"github.com/hastrology/hastrology/pkg/auth"
	"github.com/hastrology/hastrology/pkg/user"
	"github.com/hastrology/hastrology/pkg/user/service/mocks"
	"github.com/hastrology/hastrology/pkg/userstore"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newUserTestServer(svc Service) (http.Handler, *auth.TokenService) {
	tokens := auth.NewTokenService(testSecret)
	rs := apphttp.NewResponder(zap.NewNop(), false)

	r := chi.NewRouter()
	RegisterRoutes(r, svc, rs, auth.Required(tokens, rs))
	return r, tokens
}

type errorBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Success {
		t.Fatal("expected success=false")
	}
	return got
}

func TestRegisterHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	handler, _ := newUserTestServer(mocks.NewService(t))

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeError(t, rec); got.Message != "invalid JSON" {
		t.Fatalf("expected message %q, got %q", "invalid JSON", got.Message)
	}
}

func TestRegisterHTTP_MissingFields_ReturnsValidationDetails(t *testing.T) {
	handler, _ := newUserTestServer(mocks.NewService(t))

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(`{"walletAddress":"`+testWallet+`"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	got := decodeError(t, rec)
	if got.Message != "Validation failed" {
		t.Fatalf("unexpected message %q", got.Message)
	}
	want := []string{"dob is required", "birthTime is required", "birthPlace is required"}
	if len(got.Errors) != len(want) {
		t.Fatalf("expected %v, got %v", want, got.Errors)
	}
	for i := range want {
		if got.Errors[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got.Errors)
		}
	}
}

func TestRegisterHTTP_StatusReflectsCreation(t *testing.T) {
	tests := []struct {
		name    string
		created bool
		want    int
	}{
		{"new user", true, http.StatusCreated},
		{"existing user", false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewService(t)
			svc.EXPECT().
				Register(mock.Anything, mock.MatchedBy(func(req *user.RegisterRequest) bool {
					return req.WalletAddress == testWallet && req.BirthPlace == "New Delhi, India"
				})).
				Return(&user.RegisterResponse{
					User:    &user.User{WalletAddress: testWallet},
					Token:   "token-value",
					Created: tt.created,
				}, nil).
				Once()

			handler, _ := newUserTestServer(svc)
			body, _ := json.Marshal(registerRequest())
			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, rec.Code)
			}

			var got struct {
				Success bool       `json:"success"`
				User    *user.User `json:"user"`
				Token   string     `json:"token"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode response JSON: %v", err)
			}
			if !got.Success || got.Token != "token-value" || got.User.WalletAddress != testWallet {
				t.Fatalf("unexpected body %s", rec.Body.String())
			}
		})
	}
}

func TestMeHTTP_RequiresToken(t *testing.T) {
	handler, _ := newUserTestServer(mocks.NewService(t))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if got := decodeError(t, rec); got.Message != "No token provided" {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestMeHTTP_ReturnsTokenOwner(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetUser(mock.Anything, testWallet).Return(&user.User{WalletAddress: testWallet, DOB: "April 20, 1995"}, nil).Once()

	handler, tokens := newUserTestServer(svc)
	token, err := tokens.Issue(testWallet, nil)
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got struct {
		Success bool       `json:"success"`
		User    *user.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Success || got.User.DOB != "April 20, 1995" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestMeHTTP_UnknownUserIsNotFound(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetUser(mock.Anything, testWallet).
		Return(nil, apperrors.ResourceNotFoundError(userstore.ErrUserNotFound, "User not found")).Once()

	handler, tokens := newUserTestServer(svc)
	token, _ := tokens.Issue(testWallet, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	if got := decodeError(t, rec); got.Message != "User not found" {
		t.Fatalf("unexpected message %q", got.Message)
	}
}
