package session

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"orderiq/order-svc/internal/domain"
)

// SessionKey is the single entry the store persists: one JSON blob holding the
// current principal.
const SessionKey = "orderiq:session"

var ErrNoKV = errors.New("session storage unavailable")

// KV is the durable string-keyed storage behind the session store. Backends:
// a JSON file on disk or Redis.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store holds the authenticated principal for the session. It is the source of
// truth for role-gated routing. Every mutation synchronously writes or removes
// the durable entry; storage failures are logged and the session falls back to
// unauthenticated, never fatal.
type Store struct {
	mu        sync.RWMutex
	kv        KV
	principal *domain.Principal
}

// NewStore hydrates the principal from durable storage. A corrupt blob is
// deleted and the store starts unauthenticated.
func NewStore(kv KV) *Store {
	s := &Store{kv: kv}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	if s.kv == nil {
		return
	}
	raw, err := s.kv.Get(SessionKey)
	if err != nil || raw == "" {
		return
	}
	var p domain.Principal
	if err := json.Unmarshal([]byte(raw), &p); err != nil || !p.Role.Valid() {
		log.Printf("session: clearing corrupt persisted principal: %v", err)
		_ = s.kv.Delete(SessionKey)
		return
	}
	s.principal = &p
}

// Login replaces the current principal and persists it. Calling it twice with
// the same principal is a no-op in effect.
func (s *Store) Login(p domain.Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = &p
	s.persist(p)
}

// Signup has the same effect as Login; remote account creation is the caller's
// responsibility before invoking it.
func (s *Store) Signup(p domain.Principal) {
	s.Login(p)
}

// Logout clears the principal and removes the durable entry.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = nil
	if s.kv == nil {
		return
	}
	if err := s.kv.Delete(SessionKey); err != nil {
		log.Printf("session: failed to clear persisted principal: %v", err)
	}
}

func (s *Store) persist(p domain.Principal) {
	if s.kv == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		log.Printf("session: failed to serialize principal: %v", err)
		return
	}
	if err := s.kv.Set(SessionKey, string(raw)); err != nil {
		log.Printf("session: failed to persist principal: %v", err)
	}
}

// Current returns the active principal, or nil when unauthenticated.
func (s *Store) Current() *domain.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return nil
	}
	p := *s.principal
	return &p
}

func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

func (s *Store) HasRole(role domain.Role) bool {
	p := s.Current()
	return p != nil && p.Role == role
}
