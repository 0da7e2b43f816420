// Package verification holds the process-wide store for pending email
// verification sessions (user signup and admin creation). Sessions live in
// memory only: restarting the server invalidates every outstanding code.
package verification

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TTL is how long a verification code stays valid.
const TTL = 5 * time.Minute

// Session is one pending verification. PasswordHash is the bcrypt hash of the
// requested password; the plaintext is never stored.
type Session struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Code         string
	// TargetEmail is where the code was sent. For signup it equals Email;
	// for admin creation it is the approving admin's address.
	TargetEmail string
	ExpiresAt   time.Time
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// Put registers a session under a fresh UUID and returns that ID.
func (s *Store) Put(sess Session) string {
	sess.ExpiresAt = time.Now().Add(TTL)
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return id
}

// Get returns the session for id. Expiry is checked on read: an expired
// session is removed and reported as absent.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, id)
		return Session{}, false
	}
	return sess, true
}

// Refresh issues a new code for an existing session and extends its TTL.
// Returns the new code, or false if the session no longer exists.
func (s *Store) Refresh(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return "", false
	}
	sess.Code = NewCode()
	sess.ExpiresAt = time.Now().Add(TTL)
	s.sessions[id] = sess
	return sess.Code, true
}

// Delete removes a session, typically after it has been consumed.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// StartJanitor sweeps expired sessions in the background so abandoned
// verifications do not accumulate. The returned stop func halts the sweep.
func (s *Store) StartJanitor(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

func (s *Store) sweep() {
	now := time.Now()
	s.mu.Lock()
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()
}

// NewCode returns a 6-digit numeric verification code.
func NewCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing means the process is in a bad way; a
		// constant here would still be rejected once TTL passes.
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
