package token

import (
	"fmt"
	"sync"

	"listing-engine/internal/listingerrors"
	"listing-engine/internal/models"
)

// Ledger is the semi-fungible tracking token ledger. One batch is minted per
// settled listing; there is no burn, tokens are a permanent provenance record.
type Ledger struct {
	mu     sync.RWMutex
	tokens map[string]models.Token
}

func NewLedger() *Ledger {
	return &Ledger{
		tokens: make(map[string]models.Token),
	}
}

// Mint creates a new token batch of the given quantity owned by owner.
func (l *Ledger) Mint(tokenID, owner string, quantity uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.tokens[tokenID]; ok {
		return fmt.Errorf("mint token %s: %w", tokenID, listingerrors.ErrDuplicateToken)
	}
	if quantity == 0 {
		return fmt.Errorf("mint token %s: %w", tokenID, listingerrors.ErrZeroQuantity)
	}

	l.tokens[tokenID] = models.Token{ID: tokenID, Owner: owner, Quantity: quantity}
	return nil
}

// Transfer reassigns a batch to a receiving buyer, recording it as the
// batch's provenance. The total quantity of the batch never changes.
func (l *Ledger) Transfer(tokenID, to string, quantity uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tok, ok := l.tokens[tokenID]
	if !ok {
		return fmt.Errorf("transfer token %s: %w", tokenID, listingerrors.ErrNotFound)
	}
	if quantity == 0 || quantity > tok.Quantity {
		return fmt.Errorf("transfer token %s: quantity %d of batch %d: %w",
			tokenID, quantity, tok.Quantity, listingerrors.ErrZeroQuantity)
	}

	tok.Owner = to
	tok.Provenance = to
	l.tokens[tokenID] = tok
	return nil
}

// Get returns the token record for tokenID.
func (l *Ledger) Get(tokenID string) (models.Token, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tok, ok := l.tokens[tokenID]
	if !ok {
		return models.Token{}, fmt.Errorf("get token %s: %w", tokenID, listingerrors.ErrNotFound)
	}
	return tok, nil
}
