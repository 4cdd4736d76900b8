package auth

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

type PasswordHasher struct {
	cost int

	// dummy is compared against when a login email is unknown so both
	// failure paths spend the same bcrypt work.
	dummyOnce sync.Once
	dummy     string
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash runs bcrypt off the calling goroutine and gives up when ctx ends.
func (h *PasswordHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	var hashed []byte
	err := run(ctx, func() error {
		var err error
		hashed, err = bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
		return err
	})
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash. A mismatch is not an error;
// only a cancelled context is.
func (h *PasswordHasher) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	err := run(ctx, func() error {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false, err
	default:
		return false, nil
	}
}

// VerifyNothing burns one comparison for an unknown account.
func (h *PasswordHasher) VerifyNothing(ctx context.Context, plaintext string) {
	h.dummyOnce.Do(func() {
		b, err := bcrypt.GenerateFromPassword([]byte("no-such-account"), h.cost)
		if err == nil {
			h.dummy = string(b)
		}
	})
	_, _ = h.Verify(ctx, plaintext, h.dummy)
}

func run(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
