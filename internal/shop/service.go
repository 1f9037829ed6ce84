package shop

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/waveshop/internal/catalog"
	"github.com/dmitrymomot/waveshop/internal/session"
)

// Bonus amount bounds, inclusive.
const (
	minBonus = 1
	maxBonus = 999
)

// Persister writes a mutated session back to the store. Satisfied by
// *session.Manager.
type Persister interface {
	Persist(ctx context.Context, sess *session.Session) error
}

// OrderItem is one line of an order. Not persisted.
type OrderItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// CheckoutResult reports the outcome of a successful checkout. Flag is
// empty unless the flag item was among the purchased items.
type CheckoutResult struct {
	Balance float64
	Total   float64
	Flag    string
}

// Service implements the balance-mutating shop operations: the one-time
// bonus credit and checkout. All validation happens before any mutation;
// a rejected request leaves the session untouched and unpersisted.
type Service struct {
	persister Persister
	cfg       Config
	log       *slog.Logger
}

// NewService creates a shop service. A nil logger discards logs.
func NewService(persister Persister, cfg Config, log *slog.Logger) *Service {
	if persister == nil {
		panic("shop: persister is required")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{persister: persister, cfg: cfg, log: log}
}

// ApplyBonus credits the one-time bonus to the session and returns the
// new balance. The raw amount must be a decimal numeral, optionally
// surrounded by whitespace, in [1, 999] inclusive.
func (s *Service) ApplyBonus(ctx context.Context, sess *session.Session, rawAmount string) (float64, error) {
	if sess.BonusReceived {
		s.log.WarnContext(ctx, "bonus already applied", "session_id", sess.ID)
		return 0, ErrBonusAlreadyApplied
	}

	amount, err := parseBonusAmount(rawAmount)
	if err != nil {
		return 0, err
	}

	sess.Balance += amount
	sess.BonusReceived = true
	if err := s.persister.Persist(ctx, sess); err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "bonus applied", "session_id", sess.ID, "amount", amount)
	return sess.Balance, nil
}

// parseBonusAmount parses and range-checks a bonus amount. Accepted
// format is what strconv.ParseFloat takes (decimal numeral with optional
// sign, fraction and exponent) after trimming surrounding whitespace;
// NaN and infinities are rejected as invalid, not out of range.
func parseBonusAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrInvalidBonusAmount
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidBonusAmount
	}
	if v < minBonus || v > maxBonus {
		return 0, ErrBonusOutOfRange
	}
	return v, nil
}

// Checkout validates an order against the catalog and the session
// balance, debits the total and reports whether the flag item was
// purchased. Items are validated in sequence so the first failing line
// is the one reported; no mutation happens until every line and the
// balance check have passed. An empty order is a valid no-op. Duplicate
// product ids across lines each contribute their own price times
// quantity.
func (s *Service) Checkout(ctx context.Context, sess *session.Session, items []OrderItem) (CheckoutResult, error) {
	var total float64
	flagPurchased := false

	for _, item := range items {
		product, ok := catalog.Find(item.ProductID)
		if !ok {
			return CheckoutResult{}, UnknownProductError{ID: item.ProductID}
		}
		if item.Quantity <= 0 {
			return CheckoutResult{}, ErrInvalidQuantity
		}

		total += float64(product.Price) * float64(item.Quantity)

		if item.ProductID == s.cfg.FlagProductID {
			flagPurchased = true
		}
	}

	if sess.Balance < total {
		s.log.WarnContext(ctx, "insufficient balance",
			"session_id", sess.ID, "balance", sess.Balance, "total", total)
		return CheckoutResult{}, ErrInsufficientBalance
	}

	sess.Balance -= total
	if err := s.persister.Persist(ctx, sess); err != nil {
		return CheckoutResult{}, err
	}

	result := CheckoutResult{Balance: sess.Balance, Total: total}
	if flagPurchased {
		result.Flag = s.cfg.FlagToken
	}

	s.log.InfoContext(ctx, "checkout completed",
		"session_id", sess.ID, "total", total, "flag_purchased", flagPurchased)
	return result, nil
}
