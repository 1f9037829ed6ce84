package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/waveshop/internal/catalog"
	"github.com/dmitrymomot/waveshop/internal/session"
	"github.com/dmitrymomot/waveshop/internal/shop"
)

type handlers struct {
	sessions *session.Manager
	shop     *shop.Service
	log      *slog.Logger
}

// index renders the storefront page, establishing a session on first
// contact.
func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	sess, _, err := h.sessions.EnsureSession(r.Context(), w, r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, indexData{
		Products: catalog.List(),
		Session:  sess,
	}); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render index", "error", err)
	}
}

// getSession returns the current session, creating one when the request
// carries no live identifier. The cookie is set only on creation.
func (h *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	sess, _, err := h.sessions.EnsureSession(r.Context(), w, r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// products returns the full catalog.
func (h *handlers) products(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.List())
}

// bonusAmount accepts either a JSON string or a bare number, preserving
// the raw text for the parse-then-validate step in the shop service.
type bonusAmount string

func (b *bonusAmount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = bonusAmount(s)
		return nil
	}
	*b = bonusAmount(bytes.TrimSpace(data))
	return nil
}

type bonusRequest struct {
	BonusAmount bonusAmount `json:"bonus_amount"`
}

type bonusResponse struct {
	Success bool    `json:"success"`
	Balance float64 `json:"balance"`
}

// applyBonus credits the one-time bonus to the session. Mounted behind
// requireSession.
func (h *handlers) applyBonus(w http.ResponseWriter, r *http.Request) {
	sess := session.MustFromContext(r.Context())

	var req bonusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	balance, err := h.shop.ApplyBonus(r.Context(), sess, string(req.BonusAmount))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, bonusResponse{Success: true, Balance: balance})
}

// checkoutRequest requires the items field: an absent or null items
// list is a malformed order, while an explicitly empty list is a valid
// no-op checkout.
type checkoutRequest struct {
	Items *[]shop.OrderItem `json:"items"`
}

type checkoutResponse struct {
	Success bool    `json:"success"`
	Balance float64 `json:"balance"`
	Total   float64 `json:"total"`
	Flag    string  `json:"flag,omitempty"`
}

// checkout validates the order and debits the balance. Mounted behind
// requireSession.
func (h *handlers) checkout(w http.ResponseWriter, r *http.Request) {
	sess := session.MustFromContext(r.Context())

	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if req.Items == nil {
		respondError(w, r, h.log, fmt.Errorf("%w: missing items", errInvalidBody))
		return
	}

	res, err := h.shop.Checkout(r.Context(), sess, *req.Items)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, checkoutResponse{
		Success: true,
		Balance: res.Balance,
		Total:   res.Total,
		Flag:    res.Flag,
	})
}

type logoutResponse struct {
	Success bool `json:"success"`
}

// logout deletes the session record if one exists and clears the cookie.
func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context(), w, r); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, logoutResponse{Success: true})
}
