package registry

import (
	"fmt"
	"sync"

	"listing-engine/internal/listingerrors"
	"listing-engine/internal/models"
)

// UserRegistry tracks accounts and their merit tier, gating supplier
// eligibility. Accounts are deactivated, never deleted.
type UserRegistry struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserRegistry() *UserRegistry {
	return &UserRegistry{
		users: make(map[string]models.User),
	}
}

// AddUser registers an account at the given merit tier. The tier is fixed
// for the lifetime of the registration; re-registering a removed account
// replaces the record.
func (r *UserRegistry) AddUser(address string, merit int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[address]; ok && u.Active {
		return fmt.Errorf("add user %s: %w", address, listingerrors.ErrDuplicateUser)
	}

	r.users[address] = models.User{Address: address, Merit: merit, Active: true}
	return nil
}

// RemoveUser deactivates an account so historical references keep resolving.
func (r *UserRegistry) RemoveUser(address string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[address]
	if !ok || !u.Active {
		return fmt.Errorf("remove user %s: %w", address, listingerrors.ErrNotFound)
	}

	u.Active = false
	r.users[address] = u
	return nil
}

// MeritOf returns the merit tier of an active account.
func (r *UserRegistry) MeritOf(address string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[address]
	if !ok || !u.Active {
		return 0, fmt.Errorf("merit of %s: %w", address, listingerrors.ErrNotFound)
	}
	return u.Merit, nil
}

// Get returns the account record, active or not.
func (r *UserRegistry) Get(address string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[address]
	if !ok {
		return models.User{}, fmt.Errorf("get user %s: %w", address, listingerrors.ErrNotFound)
	}
	return u, nil
}
