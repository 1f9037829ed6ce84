package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/waveshop/internal/session"
	"github.com/dmitrymomot/waveshop/internal/shop"
	"github.com/dmitrymomot/waveshop/pkg/logger"
)

// errorResponse is the structured body of every rejected request.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// respondError maps domain errors to HTTP statuses and renders the
// structured error body. Unrecognized errors are store or internal
// failures: they are logged and surfaced as a generic 500, never
// exposing internals to the client.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var unknownProduct shop.UnknownProductError

	switch {
	case errors.Is(err, session.ErrNoSession):
		writeError(w, http.StatusUnauthorized, "no_session", "No active session")
	case errors.Is(err, shop.ErrBonusAlreadyApplied):
		writeError(w, http.StatusBadRequest, "bonus_already_applied", "Bonus already applied")
	case errors.Is(err, shop.ErrInvalidBonusAmount):
		writeError(w, http.StatusBadRequest, "invalid_bonus_amount", "Invalid bonus amount")
	case errors.Is(err, shop.ErrBonusOutOfRange):
		writeError(w, http.StatusBadRequest, "bonus_out_of_range", "Bonus amount must be between 1 and 999")
	case errors.As(err, &unknownProduct):
		writeError(w, http.StatusBadRequest, "unknown_product",
			fmt.Sprintf("Product with id %d not found", unknownProduct.ID))
	case errors.Is(err, shop.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, "invalid_quantity", "Quantity of product must be positive")
	case errors.Is(err, shop.ErrInsufficientBalance):
		writeError(w, http.StatusBadRequest, "insufficient_balance", "Insufficient balance")
	case errors.Is(err, errInvalidBody):
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
	default:
		log.ErrorContext(r.Context(), "request failed", logger.Error(err),
			slog.String("path", r.URL.Path))
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
