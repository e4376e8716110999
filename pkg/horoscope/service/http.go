package service

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/hastrology/hastrology/pkg/app/errors"
	apphttp "github.com/hastrology/hastrology/pkg/app/http"
	"github.com/hastrology/hastrology/pkg/auth"
	"github.com/hastrology/hastrology/pkg/horoscope"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
}

type statusResponse struct {
	apphttp.Envelope
	*horoscope.StatusResult
}

type confirmResponse struct {
	apphttp.Envelope
	*horoscope.ConfirmResult
}

// HistoryResponse is the body of the history endpoint.
type HistoryResponse struct {
	apphttp.Envelope
	Horoscopes []*horoscope.Horoscope `json:"horoscopes"`
	Count      int                    `json:"count"`
}

// RegisterRoutes registers HTTP endpoints for the horoscope workflow on the given chi router.
// optionalAuth lets confirm bind a bearer token to the paying wallet.
func RegisterRoutes(r chi.Router, service Service, rs *apphttp.Responder, optionalAuth func(http.Handler) http.Handler) {
	h := &HTTP{service: service}

	r.Get("/status", rs.HandleError(h.status))
	r.With(optionalAuth).Post("/confirm", rs.HandleError(h.confirm))
	r.Get("/history/{walletAddress}", rs.HandleError(h.history))
}

func (h *HTTP) status(w http.ResponseWriter, r *http.Request) error {
	wallet := r.URL.Query().Get("walletAddress")
	if wallet == "" {
		return apperrors.ValidationError(nil, "Validation failed", "walletAddress is required")
	}

	res, err := h.service.Status(r.Context(), wallet)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, statusResponse{Envelope: apphttp.OK(), StatusResult: res})
	return nil
}

func (h *HTTP) confirm(w http.ResponseWriter, r *http.Request) error {
	var req horoscope.ConfirmRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	if wallet, ok := auth.WalletAddressFromContext(r.Context()); ok && wallet != req.WalletAddress {
		return apperrors.ForbiddenError(nil, "Token does not match walletAddress")
	}

	res, err := h.service.Confirm(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, confirmResponse{Envelope: apphttp.OK(), ConfirmResult: res})
	return nil
}

func (h *HTTP) history(w http.ResponseWriter, r *http.Request) error {
	wallet := chi.URLParam(r, "walletAddress")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return apperrors.ValidationError(err, "Validation failed", "limit must be an integer")
		}
		if n == 0 {
			return apperrors.ValidationError(nil, "Validation failed", fmt.Sprintf("limit must be between 1 and %d", MaxHistoryLimit))
		}
		limit = n
	}

	list, err := h.service.History(r.Context(), wallet, limit)
	if err != nil {
		return err
	}
	if list == nil {
		list = []*horoscope.Horoscope{}
	}
	apphttp.WriteJSON(w, http.StatusOK, HistoryResponse{
		Envelope:   apphttp.OK(),
		Horoscopes: list,
		Count:      len(list),
	})
	return nil
}
