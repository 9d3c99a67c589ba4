// Package lock serializes check-then-act sequences on a per-key basis.
package lock

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotAcquired is returned when a lock could not be obtained in time.
var ErrNotAcquired = errors.New("lock not acquired")

// Unlock releases a held lock. Calling it more than once is a no-op.
type Unlock func()

// Locker grants exclusive ownership of a key.
type Locker interface {
	Lock(ctx context.Context, key string) (Unlock, error)
}

// UserEmailKey is the lock key guarding creation of a user with email.
func UserEmailKey(email string) string {
	return "user:email:" + strings.ToLower(strings.TrimSpace(email))
}

// UserIDKey is the lock key guarding updates of the user with id.
func UserIDKey(id uint) string {
	return fmt.Sprintf("user:id:%d", id)
}

// CustomerTaxIDKey is the lock key guarding creation of a customer with taxID.
func CustomerTaxIDKey(taxID string) string {
	return "customer:cpf_cnpj:" + strings.TrimSpace(taxID)
}

func notAcquired(key string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrNotAcquired, key)
	}
	return fmt.Errorf("%w: %s: %w", ErrNotAcquired, key, cause)
}
