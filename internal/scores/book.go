package scores

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Persister reads and writes a whole high-score table.
type Persister interface {
	Load() (Table, error)
	Save(Table) error
}

// Book is the in-memory high-score table of a running process.
// It is authoritative: a failed save is logged and the table is kept.
type Book struct {
	table     Table
	persister Persister
	logger    *log.Logger
}

// Open loads the table through p. Missing or unreadable data is not an error:
// the seed table is used instead. A nil persister yields a memory-only book.
func Open(p Persister, logger *log.Logger) *Book {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &Book{persister: p, logger: logger}

	if p == nil {
		b.table = SeedTable()
		return b
	}

	table, err := p.Load()
	switch {
	case err != nil:
		logger.Warn("using default high scores", "error", err)
		b.table = SeedTable()
	case table == nil:
		b.table = SeedTable()
	default:
		table.Normalize()
		b.table = table
	}
	return b
}

// Table returns a copy of the current table.
func (b *Book) Table() Table {
	return b.table.Clone()
}

// Entries returns the ranked entries of one difficulty.
func (b *Book) Entries(difficulty string) []Entry {
	return b.Table()[difficulty]
}

// Best returns the top score for a difficulty.
func (b *Book) Best(difficulty string) int {
	return b.table.Best(difficulty)
}

// Qualifies reports whether score would enter the table for difficulty.
func (b *Book) Qualifies(difficulty string, score int) bool {
	return b.table.Qualifies(difficulty, score)
}

// Record inserts a qualifying score and persists the full table.
// Returns false when the score does not qualify or the name is blank.
func (b *Book) Record(difficulty, name string, score int, date time.Time) bool {
	name = CleanName(name)
	if name == "" || !b.Qualifies(difficulty, score) {
		return false
	}
	b.table.Insert(difficulty, name, score, date)
	b.logger.Info("high score recorded", "difficulty", difficulty, "name", name, "score", score)

	if b.persister == nil {
		return true
	}
	if err := b.persister.Save(b.table.Clone()); err != nil {
		b.logger.Error("could not save high scores", "error", err)
	}
	return true
}
