package cannon

import (
	"fmt"
	"strings"
)

// LogEntry is one recorded game event.
type LogEntry struct {
	Tick     int
	Category string  // state, input, fire, bounce, hit, score, level, spawn, ammo, land, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] hit      target          chest at (212,340)
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-8s %-15s %s", e.Tick, e.Category, e.Key, e.Value)
}

// EventLog collects structured events from a Session. It is unbounded and
// meant for tests and the headless report; the on-screen overlay uses the
// bounded EventFeed instead.
type EventLog struct {
	entries []LogEntry
	verbose bool
}

// NewEventLog creates an EventLog. If verbose is true, per-tick ball and
// launcher positions are also recorded.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (el *EventLog) Add(tick int, category, key, value string, numVal float64) {
	el.entries = append(el.entries, LogEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (el *EventLog) AddVerbose(tick int, category, key, value string, numVal float64) {
	if !el.verbose {
		return
	}
	el.Add(tick, category, key, value, numVal)
}

// Verbose reports whether per-tick entries are recorded.
func (el *EventLog) Verbose() bool { return el.verbose }

// Entries returns all recorded entries.
func (el *EventLog) Entries() []LogEntry {
	return el.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (el *EventLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (el *EventLog) FilterTickRange(fromTick, toTick int) []LogEntry {
	var out []LogEntry
	for _, e := range el.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match the given category and key.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (el *EventLog) LastOf(category, key string) (LogEntry, bool) {
	entries := el.Filter(category, key)
	if len(entries) == 0 {
		return LogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (el *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatAround renders the entries within span ticks of tick, for failure
// messages that only need the moments around one event.
func (el *EventLog) FormatAround(tick, span int) string {
	var sb strings.Builder
	for _, e := range el.FilterTickRange(tick-span, tick+span) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
