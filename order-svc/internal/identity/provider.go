// Package identity models the external auth collaborator. The service never
// stores passwords itself; it only consumes this contract.
package identity

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrDuplicateAccount  = errors.New("account already exists for this email")
	ErrWeakCredential    = errors.New("password does not meet minimum strength")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrNotFound          = errors.New("identity not found")
)

// Profile is the record the provider keeps per identity.
type Profile struct {
	ID    string
	Email string
}

// Provider is the create/sign-in/lookup surface of the external identity
// service. Implementations may fail with the sentinel errors above or with
// transport errors, which pass through unwrapped.
type Provider interface {
	Create(email, password string) (string, error)
	SignIn(email, password string) (string, error)
	Profile(id string) (*Profile, error)
}

// MemoryProvider is an in-process Provider used for demo mode and tests.
type MemoryProvider struct {
	mu       sync.Mutex
	byEmail  map[string]string // email -> id
	accounts map[string]memoryAccount
}

type memoryAccount struct {
	profile  Profile
	password string
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		byEmail:  map[string]string{},
		accounts: map[string]memoryAccount{},
	}
}

func (m *MemoryProvider) Create(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < 6 {
		return "", ErrWeakCredential
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[email]; exists {
		return "", ErrDuplicateAccount
	}

	id := uuid.NewString()
	m.byEmail[email] = id
	m.accounts[id] = memoryAccount{
		profile:  Profile{ID: id, Email: email},
		password: password,
	}
	return id, nil
}

// Register seeds an account under a fixed id. Demo fixtures only; real
// account creation goes through Create.
func (m *MemoryProvider) Register(id, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[email]; exists {
		return ErrDuplicateAccount
	}
	m.byEmail[email] = id
	m.accounts[id] = memoryAccount{
		profile:  Profile{ID: id, Email: email},
		password: password,
	}
	return nil
}

func (m *MemoryProvider) SignIn(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byEmail[email]
	if !ok {
		return "", ErrInvalidCredential
	}
	if m.accounts[id].password != password {
		return "", ErrInvalidCredential
	}
	return id, nil
}

func (m *MemoryProvider) Profile(id string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	p := account.profile
	return &p, nil
}

var _ Provider = (*MemoryProvider)(nil)
