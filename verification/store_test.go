package verification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutAndGet(t *testing.T) {
	s := NewStore()

	id := s.Put(Session{Email: "a@b.com", Code: "123456"})
	require.NotEmpty(t, id)

	sess, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", sess.Email)
	assert.Equal(t, "123456", sess.Code)
	assert.WithinDuration(t, time.Now().Add(TTL), sess.ExpiresAt, time.Second)
}

func TestStore_GetMissing(t *testing.T) {
	s := NewStore()
	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestStore_ExpiredSessionIsGoneOnRead(t *testing.T) {
	s := NewStore()
	id := s.Put(Session{Email: "a@b.com", Code: "123456"})

	s.mu.Lock()
	sess := s.sessions[id]
	sess.ExpiresAt = time.Now().Add(-time.Second)
	s.sessions[id] = sess
	s.mu.Unlock()

	_, ok := s.Get(id)
	assert.False(t, ok)

	// The read removed it, not just hid it.
	s.mu.Lock()
	_, stillThere := s.sessions[id]
	s.mu.Unlock()
	assert.False(t, stillThere)
}

func TestStore_DeleteConsumesSession(t *testing.T) {
	s := NewStore()
	id := s.Put(Session{Code: "123456"})
	s.Delete(id)

	_, ok := s.Get(id)
	assert.False(t, ok)
}

func TestStore_RefreshIssuesNewCode(t *testing.T) {
	s := NewStore()
	id := s.Put(Session{Code: "123456"})

	code, ok := s.Refresh(id)
	require.True(t, ok)
	assert.Len(t, code, 6)

	sess, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, code, sess.Code)

	_, ok = s.Refresh("missing")
	assert.False(t, ok)
}

func TestStore_SweepRemovesOnlyExpired(t *testing.T) {
	s := NewStore()
	live := s.Put(Session{Code: "111111"})
	dead := s.Put(Session{Code: "222222"})

	s.mu.Lock()
	sess := s.sessions[dead]
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	s.sessions[dead] = sess
	s.mu.Unlock()

	s.sweep()

	_, ok := s.Get(live)
	assert.True(t, ok)
	_, ok = s.Get(dead)
	assert.False(t, ok)
}

func TestNewCode_SixDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := NewCode()
		require.Len(t, code, 6)
		assert.GreaterOrEqual(t, code[0], byte('1'))
	}
}
