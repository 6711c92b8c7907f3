package store

import (
	"context"
	"sync"

	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/types"
)

// UserRepository holds registered credentials in memory, keyed by
// normalized email. State lives for the process lifetime only; a restart
// begins empty. The map is shared by concurrent requests and is guarded by
// a single RWMutex.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]types.UserCredential
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]types.UserCredential)}
}

// GetByEmail returns the credential stored for email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (types.UserCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.users[email]
	if !ok {
		return types.UserCredential{}, ErrNotFound
	}
	return cred, nil
}

// Create stores a new credential. The write is visible before Create
// returns, so a login immediately after registration succeeds.
func (r *UserRepository) Create(ctx context.Context, cred types.UserCredential) (types.UserCredential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[cred.Email]; ok {
		return types.UserCredential{}, ErrAlreadyExists
	}
	r.users[cred.Email] = cred
	return cred, nil
}
