// Package notify is the ordered feed of operation outcomes shown by the
// CLI and the TUI status bar. Remote-call failures are always caught at
// the point of call and land here; nothing propagates unhandled.
package notify

import "time"

// Level classifies feed entries.
type Level int

const (
	Info Level = iota
	Problem
)

// Entry is one recorded outcome.
type Entry struct {
	Level Level
	Text  string
	At    time.Time
}

// Feed is an ordered, bounded notification feed.
type Feed struct {
	max     int
	entries []Entry
}

// NewFeed builds a feed keeping at most max entries; older entries are
// dropped first. A non-positive max keeps everything.
func NewFeed(max int) *Feed {
	return &Feed{max: max}
}

// Success records an informational outcome.
func (f *Feed) Success(text string) {
	f.push(Entry{Level: Info, Text: text, At: time.Now()})
}

// Error records a failure outcome.
func (f *Feed) Error(text string) {
	f.push(Entry{Level: Problem, Text: text, At: time.Now()})
}

// Entries returns the feed oldest-first.
func (f *Feed) Entries() []Entry {
	return f.entries
}

// Last returns the most recent entry.
func (f *Feed) Last() (Entry, bool) {
	if len(f.entries) == 0 {
		return Entry{}, false
	}
	return f.entries[len(f.entries)-1], true
}

// Clear empties the feed.
func (f *Feed) Clear() {
	f.entries = nil
}

func (f *Feed) push(e Entry) {
	f.entries = append(f.entries, e)
	if f.max > 0 && len(f.entries) > f.max {
		f.entries = f.entries[len(f.entries)-f.max:]
	}
}
