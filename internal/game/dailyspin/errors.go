package dailyspin

import "errors"

var (
	ErrCooldownActive = errors.New("cooldown_active")
	ErrSpinPending    = errors.New("spin_pending")
	ErrNoPendingSpin  = errors.New("no_pending_spin")
	ErrNoPendingGuess = errors.New("no_pending_guess")
	ErrSpinExpired    = errors.New("spin_expired")
	ErrInvalidGuess   = errors.New("invalid_guess")
)
