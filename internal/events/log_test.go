package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Test ordering and listing-scoped filtering
func TestLog_OrderAndFilter(t *testing.T) {
	t.Parallel()

	log := NewLog()
	now := time.Now().UTC()

	log.Emit(now, UserAdded{Account: "0xa", Role: 1})
	log.Emit(now, ListingProduced{ListingID: "l1", Creator: "0xa"})
	log.Emit(now, NewBuyer{Buyer: "0xa", ListingID: "l1", Quantity: 2})
	log.Emit(now, ListingProduced{ListingID: "l2", Creator: "0xa"})

	all := log.All()
	require.Len(t, all, 4)
	for i, en := range all {
		require.Equal(t, uint64(i+1), en.Seq, "sequence numbers must be gapless")
	}

	l1 := log.ForListing("l1")
	require.Len(t, l1, 2)
	require.Equal(t, "ListingProduced", l1[0].Event.Type())
	require.Equal(t, "NewBuyer", l1[1].Event.Type())

	require.Empty(t, log.ForListing("unknown"))
}

// Test concurrent emitters keep the log gapless
func TestLog_ConcurrentEmit(t *testing.T) {
	t.Parallel()

	log := NewLog()
	now := time.Now().UTC()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Emit(now, RefundMade{Refundee: "0xa", ListingID: "l1"})
		}()
	}
	wg.Wait()

	all := log.All()
	require.Len(t, all, 50)
	seen := make(map[uint64]bool)
	for _, en := range all {
		require.False(t, seen[en.Seq], "duplicate sequence number")
		seen[en.Seq] = true
	}
}
