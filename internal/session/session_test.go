package session_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/waveshop/internal/session"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("fresh session has zero balance and no bonus", func(t *testing.T) {
		t.Parallel()

		sess := session.New()
		assert.Zero(t, sess.Balance)
		assert.False(t, sess.BonusReceived)

		_, err := uuid.Parse(sess.ID)
		assert.NoError(t, err)
	})

	t.Run("identifiers are unique", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]bool)
		for range 100 {
			id := session.New().ID
			assert.False(t, seen[id])
			seen[id] = true
		}
	})
}

func TestPersistedRecordFormat(t *testing.T) {
	t.Parallel()

	sess := &session.Session{ID: "abc", Balance: 12.5, BonusReceived: true}

	raw, err := json.Marshal(sess)
	require.NoError(t, err)
	assert.JSONEq(t, `{"session_id":"abc","balance":12.5,"bonus_received":true}`, string(raw))

	var decoded session.Session
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *sess, decoded)
}
