package events

import (
	"encoding/json"
	"sync"
	"time"
)

// Entry is one appended event with its position in the global order.
type Entry struct {
	Seq   uint64    `json:"seq"`
	At    time.Time `json:"at"`
	Event Event     `json:"event"`
}

// MarshalJSON adds an explicit type discriminator so consumers can dispatch
// without inspecting payload field names.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Seq   uint64    `json:"seq"`
		At    time.Time `json:"at"`
		Type  string    `json:"type"`
		Event Event     `json:"event"`
	}{e.Seq, e.At, e.Event.Type(), e.Event})
}

// Emitter is the write side of the event stream. The engine never blocks on,
// or assumes anything about, consumers downstream of emission.
type Emitter interface {
	Emit(at time.Time, e Event)
}

// Log is an append-only, globally ordered in-memory event log.
type Log struct {
	mu      sync.RWMutex
	seq     uint64
	entries []Entry
}

func NewLog() *Log {
	return &Log{}
}

// Emit appends an event, assigning it the next sequence number.
func (l *Log) Emit(at time.Time, e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	l.entries = append(l.entries, Entry{Seq: l.seq, At: at, Event: e})
}

// All returns the full log in emission order.
func (l *Log) All() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]Entry(nil), l.entries...)
}

// ForListing returns the sub-stream scoped to one listing, in emission order.
func (l *Log) ForListing(listingID string) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Entry
	for _, en := range l.entries {
		if en.Event.Listing() == listingID {
			out = append(out, en)
		}
	}
	return out
}
