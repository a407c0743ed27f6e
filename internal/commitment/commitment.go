package commitment

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Compute derives the sealed-bid commitment for a bidder. The digest binds
// the bidder identity so a commitment cannot be replayed by another account,
// and the salt keeps the value unguessable before reveal.
func Compute(bidder string, value uint64, salt string) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], value)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(bidder))
	h.Write(buf[:])
	h.Write([]byte(salt))

	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// Matches reports whether (bidder, value, salt) opens the stored commitment.
func Matches(stored, bidder string, value uint64, salt string) bool {
	return strings.EqualFold(stored, Compute(bidder, value, salt))
}
