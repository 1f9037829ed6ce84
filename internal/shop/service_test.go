package shop_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/waveshop/internal/session"
	"github.com/dmitrymomot/waveshop/internal/shop"
)

func setupService(t *testing.T) (*shop.Service, *session.Manager, *session.MemoryStore) {
	t.Helper()

	store := session.NewMemoryStore()
	mgr := session.NewManager(store, session.DefaultConfig())
	svc := shop.NewService(mgr, shop.Config{
		FlagProductID: 12,
		FlagToken:     "alfa{test-flag}",
	}, nil)
	return svc, mgr, store
}

func newSession(t *testing.T, mgr *session.Manager, balance float64) *session.Session {
	t.Helper()

	sess := session.New()
	sess.Balance = balance
	require.NoError(t, mgr.Persist(context.Background(), sess))
	return sess
}

func TestApplyBonus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("valid amount credits balance once", func(t *testing.T) {
		t.Parallel()

		svc, mgr, store := setupService(t)
		sess := newSession(t, mgr, 0)

		balance, err := svc.ApplyBonus(ctx, sess, "500")
		require.NoError(t, err)
		assert.Equal(t, 500.0, balance)
		assert.True(t, sess.BonusReceived)

		// Mutation was persisted.
		stored, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 500.0, stored.Balance)
		assert.True(t, stored.BonusReceived)
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		t.Parallel()

		svc, mgr, _ := setupService(t)

		low := newSession(t, mgr, 0)
		balance, err := svc.ApplyBonus(ctx, low, "1")
		require.NoError(t, err)
		assert.Equal(t, 1.0, balance)

		high := newSession(t, mgr, 0)
		balance, err = svc.ApplyBonus(ctx, high, "999")
		require.NoError(t, err)
		assert.Equal(t, 999.0, balance)
	})

	t.Run("rejected amounts leave session untouched", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			raw     string
			wantErr error
		}{
			{name: "zero", raw: "0", wantErr: shop.ErrBonusOutOfRange},
			{name: "above upper bound", raw: "1000", wantErr: shop.ErrBonusOutOfRange},
			{name: "negative", raw: "-5", wantErr: shop.ErrBonusOutOfRange},
			{name: "non-numeric", raw: "abc", wantErr: shop.ErrInvalidBonusAmount},
			{name: "empty", raw: "", wantErr: shop.ErrInvalidBonusAmount},
			{name: "whitespace only", raw: "   ", wantErr: shop.ErrInvalidBonusAmount},
			{name: "nan", raw: "NaN", wantErr: shop.ErrInvalidBonusAmount},
			{name: "infinity", raw: "Inf", wantErr: shop.ErrInvalidBonusAmount},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				svc, mgr, store := setupService(t)
				sess := newSession(t, mgr, 0)

				_, err := svc.ApplyBonus(ctx, sess, tt.raw)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0.0, sess.Balance)
				assert.False(t, sess.BonusReceived)

				stored, err := store.Get(ctx, sess.ID)
				require.NoError(t, err)
				assert.Equal(t, 0.0, stored.Balance)
				assert.False(t, stored.BonusReceived)
			})
		}
	})

	t.Run("surrounding whitespace is accepted", func(t *testing.T) {
		t.Parallel()

		svc, mgr, _ := setupService(t)
		sess := newSession(t, mgr, 0)

		balance, err := svc.ApplyBonus(ctx, sess, "  250.5 ")
		require.NoError(t, err)
		assert.Equal(t, 250.5, balance)
	})

	t.Run("second application fails and balance is unchanged", func(t *testing.T) {
		t.Parallel()

		svc, mgr, _ := setupService(t)
		sess := newSession(t, mgr, 0)

		_, err := svc.ApplyBonus(ctx, sess, "100")
		require.NoError(t, err)

		_, err = svc.ApplyBonus(ctx, sess, "100")
		assert.ErrorIs(t, err, shop.ErrBonusAlreadyApplied)
		assert.Equal(t, 100.0, sess.Balance)
	})
}

func TestCheckout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("total is sum of price times quantity", func(t *testing.T) {
		t.Parallel()

		svc, mgr, _ := setupService(t)
		sess := newSession(t, mgr, 900)

		res, err := svc.Checkout(ctx, sess, []shop.OrderItem{
			{ProductID: 1, Quantity: 2}, // 2 * 300
			{ProductID: 4, Quantity: 3}, // 3 * 50
		})
		require.NoError(t, err)
		assert.Equal(t, 750.0, res.Total)
		assert.Equal(t, 150.0, res.Balance)
		assert.Empty(t, res.Flag)
	})

	t.Run("duplicate lines each count", func(t *testing.T) {
		t.Parallel()

		svc, mgr, _ := setupService(t)
		sess := newSession(t, mgr, 900)

		res, err := svc.Checkout(ctx, sess, []shop.OrderItem{
			{ProductID: 2, Quantity: 1},
			{ProductID: 2, Quantity: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, 360.0, res.Total)
	})

	t.Run("empty order is a valid no-op", func(t *testing.T) {
		t.Parallel()

		svc, mgr, _ := setupService(t)
		sess := newSession(t, mgr, 42)

		res, err := svc.Checkout(ctx, sess, nil)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Total)
		assert.Equal(t, 42.0, res.Balance)
	})

	t.Run("unknown product fails without mutation", func(t *testing.T) {
		t.Parallel()

		svc, mgr, store := setupService(t)
		sess := newSession(t, mgr, 1000)

		_, err := svc.Checkout(ctx, sess, []shop.OrderItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 999, Quantity: 1},
		})
		assert.ErrorIs(t, err, shop.ErrUnknownProduct)

		var unknownErr shop.UnknownProductError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, 999, unknownErr.ID)

		assert.Equal(t, 1000.0, sess.Balance)
		stored, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, stored.Balance)
	})

	t.Run("non-positive quantity fails without mutation", func(t *testing.T) {
		t.Parallel()

		for _, qty := range []int{0, -1} {
			svc, mgr, _ := setupService(t)
			sess := newSession(t, mgr, 1000)

			_, err := svc.Checkout(ctx, sess, []shop.OrderItem{
				{ProductID: 1, Quantity: qty},
			})
			assert.ErrorIs(t, err, shop.ErrInvalidQuantity)
			assert.Equal(t, 1000.0, sess.Balance)
		}
	})

	t.Run("insufficient balance fails without debit", func(t *testing.T) {
		t.Parallel()

		svc, mgr, store := setupService(t)
		sess := newSession(t, mgr, 100)

		_, err := svc.Checkout(ctx, sess, []shop.OrderItem{
			{ProductID: 1, Quantity: 1}, // costs 300
		})
		assert.ErrorIs(t, err, shop.ErrInsufficientBalance)
		assert.Equal(t, 100.0, sess.Balance)

		stored, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 100.0, stored.Balance)
	})

	t.Run("balance never goes negative", func(t *testing.T) {
		t.Parallel()

		svc, mgr, _ := setupService(t)
		sess := newSession(t, mgr, 299.99)

		_, err := svc.Checkout(ctx, sess, []shop.OrderItem{
			{ProductID: 1, Quantity: 1},
		})
		assert.ErrorIs(t, err, shop.ErrInsufficientBalance)
		assert.GreaterOrEqual(t, sess.Balance, 0.0)
	})

	t.Run("flag item purchase reveals token", func(t *testing.T) {
		t.Parallel()

		svc, mgr, _ := setupService(t)
		sess := newSession(t, mgr, 15000)

		res, err := svc.Checkout(ctx, sess, []shop.OrderItem{
			{ProductID: 12, Quantity: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, "alfa{test-flag}", res.Flag)
		assert.Equal(t, 0.0, res.Balance)
	})

	t.Run("flag not leaked on insufficient balance", func(t *testing.T) {
		t.Parallel()

		svc, mgr, _ := setupService(t)
		sess := newSession(t, mgr, 14999)

		res, err := svc.Checkout(ctx, sess, []shop.OrderItem{
			{ProductID: 12, Quantity: 1},
		})
		assert.ErrorIs(t, err, shop.ErrInsufficientBalance)
		assert.Empty(t, res.Flag)
	})

	t.Run("persist failure surfaces", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("store down")
		svc := shop.NewService(failingPersister{err: wantErr}, shop.Config{FlagProductID: 12}, nil)

		sess := session.New()
		sess.Balance = 500

		_, err := svc.Checkout(ctx, sess, []shop.OrderItem{{ProductID: 1, Quantity: 1}})
		assert.ErrorIs(t, err, wantErr)
	})
}

type failingPersister struct {
	err error
}

func (f failingPersister) Persist(ctx context.Context, sess *session.Session) error {
	return f.err
}
