// Package scores maintains the ranked high-score lists, one per difficulty.
package scores

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxEntries is the number of entries kept per difficulty.
	MaxEntries = 10
	// MaxNameLen is the maximum player name length in runes.
	MaxNameLen = 10
	// DateLayout is the calendar date format stored with each entry.
	DateLayout = "2006-01-02"
	// DefaultName is offered when asking for a name.
	DefaultName = "Player"
)

// Entry is a single high-score record.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Table maps a difficulty name to its entries, best first.
type Table map[string][]Entry

// SeedTable returns the table used when nothing has been persisted yet.
func SeedTable() Table {
	return Table{
		"Easy":   {{Name: DefaultName, Score: 100, Date: "2023-01-01"}},
		"Medium": {{Name: DefaultName, Score: 200, Date: "2023-01-01"}},
		"Hard":   {{Name: DefaultName, Score: 300, Date: "2023-01-01"}},
	}
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = slices.Clone(v)
	}
	return out
}

// Difficulties returns the difficulty keys present in the table, sorted.
func (t Table) Difficulties() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Best returns the top score for a difficulty, or 0 if there is none.
func (t Table) Best(difficulty string) int {
	entries := t[difficulty]
	if len(entries) == 0 {
		return 0
	}
	return entries[0].Score
}

// Qualifies reports whether score would enter the table for difficulty.
func (t Table) Qualifies(difficulty string, score int) bool {
	if score <= 0 {
		return false
	}
	entries := t[difficulty]
	if len(entries) < MaxEntries {
		return true
	}
	return score > entries[MaxEntries-1].Score
}

// Insert adds an entry, keeps the list sorted descending by score and
// truncates it to MaxEntries. Equal scores keep their arrival order, so an
// older record outranks a newer one with the same score.
func (t Table) Insert(difficulty, name string, score int, date time.Time) {
	entries := append(t[difficulty], Entry{
		Name:  CleanName(name),
		Score: score,
		Date:  date.Format(DateLayout),
	})
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Score - a.Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	t[difficulty] = entries
}

// Normalize sorts and truncates every list. Used on data read from disk.
func (t Table) Normalize() {
	for k, entries := range t {
		slices.SortStableFunc(entries, func(a, b Entry) int {
			return b.Score - a.Score
		})
		if len(entries) > MaxEntries {
			entries = entries[:MaxEntries]
		}
		t[k] = entries
	}
}

// CleanName trims surrounding whitespace and caps the name at MaxNameLen runes.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= MaxNameLen {
		return name
	}
	return strings.TrimSpace(string([]rune(name)[:MaxNameLen]))
}
