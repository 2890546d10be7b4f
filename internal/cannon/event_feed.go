package cannon

const feedMaxEntries = 40

// EventFeed is a ring buffer of the most recent game events, rendered by the
// frontends' debug overlays.
type EventFeed struct {
	entries []LogEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]LogEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (ef *EventFeed) Add(e LogEntry) {
	ef.entries[ef.head] = e
	ef.head = (ef.head + 1) % feedMaxEntries
	if ef.count < feedMaxEntries {
		ef.count++
	}
}

// Len returns the number of buffered entries.
func (ef *EventFeed) Len() int { return ef.count }

// Recent returns entries in chronological order (oldest first).
func (ef *EventFeed) Recent() []LogEntry {
	result := make([]LogEntry, ef.count)
	for i := 0; i < ef.count; i++ {
		idx := (ef.head - ef.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = ef.entries[idx]
	}
	return result
}

// Tail returns at most n of the newest entries, oldest first.
func (ef *EventFeed) Tail(n int) []LogEntry {
	if n <= 0 {
		return nil
	}
	all := ef.Recent()
	if n < len(all) {
		return all[len(all)-n:]
	}
	return all
}
