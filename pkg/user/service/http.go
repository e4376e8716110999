package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/hastrology/hastrology/pkg/app/errors"
	apphttp "github.com/hastrology/hastrology/pkg/app/http"
	"github.com/hastrology/hastrology/pkg/auth"
	"github.com/hastrology/hastrology/pkg/user"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
}

type registerResponse struct {
	apphttp.Envelope
	User  *user.User `json:"user"`
	Token string     `json:"token"`
}

type meResponse struct {
	apphttp.Envelope
	User *user.User `json:"user"`
}

// RegisterRoutes registers HTTP endpoints for the user service on the given chi router.
// requireAuth guards the profile route.
func RegisterRoutes(r chi.Router, service Service, rs *apphttp.Responder, requireAuth func(http.Handler) http.Handler) {
	h := &HTTP{service: service}

	r.Post("/register", rs.HandleError(h.register))
	r.With(requireAuth).Get("/me", rs.HandleError(h.me))
}

func (h *HTTP) register(w http.ResponseWriter, r *http.Request) error {
	var req user.RegisterRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	apphttp.WriteJSON(w, status, registerResponse{
		Envelope: apphttp.OK(),
		User:     resp.User,
		Token:    resp.Token,
	})
	return nil
}

func (h *HTTP) me(w http.ResponseWriter, r *http.Request) error {
	wallet, ok := auth.WalletAddressFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(auth.ErrMissingToken, "No token provided")
	}

	usr, err := h.service.GetUser(r.Context(), wallet)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, meResponse{Envelope: apphttp.OK(), User: usr})
	return nil
}
