package listingerrors

import "errors"

// Listing lifecycle errors
var (
	ErrInvalidSchedule   = errors.New("listing schedule out of order")
	ErrInsufficientFee   = errors.New("payment does not cover the required amount")
	ErrWrongPhase        = errors.New("operation not valid in current listing phase")
	ErrZeroQuantity      = errors.New("quantity must be greater than zero")
	ErrNotParticipating  = errors.New("caller has no active participation record")
	ErrInsufficientMerit = errors.New("merit tier below listing minimum")
	ErrAlreadyRevealed   = errors.New("bid already revealed")
	ErrAlreadySettled    = errors.New("listing already settled")
	ErrNothingToWithdraw = errors.New("nothing to withdraw")
)

// Registry and ledger errors
var (
	ErrDuplicateUser  = errors.New("user already registered")
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateToken = errors.New("token id already minted")
)
