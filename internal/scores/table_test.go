package scores

import (
	"testing"
	"time"
)

var day = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func fullTable(lowest int) Table {
	t := Table{}
	for i := 0; i < MaxEntries; i++ {
		t.Insert("Medium", "p", lowest+i*10, day)
	}
	return t
}

func TestQualifies(t *testing.T) {
	tests := []struct {
		name     string
		table    Table
		score    int
		expected bool
	}{
		{"zero never qualifies", Table{}, 0, false},
		{"empty difficulty", Table{}, 1, true},
		{"room left", SeedTable(), 5, true},
		{"full table, below tenth", fullTable(50), 49, false},
		{"full table, equal to tenth", fullTable(50), 50, false},
		{"full table, above tenth", fullTable(50), 51, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.table.Qualifies("Medium", tc.score); got != tc.expected {
				t.Errorf("Qualifies(%d) = %v, expected %v", tc.score, got, tc.expected)
			}
		})
	}
}

func TestInsertKeepsSortedAndCapped(t *testing.T) {
	table := Table{}
	scores := []int{30, 10, 50, 20, 80, 70, 60, 40, 90, 5, 100, 1}
	for _, s := range scores {
		table.Insert("Easy", "p", s, day)

		entries := table["Easy"]
		if len(entries) > MaxEntries {
			t.Fatalf("table grew to %d entries", len(entries))
		}
		for i := 1; i < len(entries); i++ {
			if entries[i-1].Score < entries[i].Score {
				t.Fatalf("entries not descending after inserting %d: %v", s, entries)
			}
		}
	}

	entries := table["Easy"]
	if entries[0].Score != 100 || entries[len(entries)-1].Score != 10 {
		t.Errorf("unexpected ranking: %v", entries)
	}
}

func TestInsertStableForTies(t *testing.T) {
	table := Table{}
	table.Insert("Hard", "first", 40, day)
	table.Insert("Hard", "second", 40, day)

	if table["Hard"][0].Name != "first" {
		t.Errorf("older entry should win ties, got %v", table["Hard"])
	}
}

func TestInsertRecordsDateAndName(t *testing.T) {
	table := Table{}
	table.Insert("Easy", "  Alexandria the Great ", 12, day)

	e := table["Easy"][0]
	if e.Date != "2026-10-19" {
		t.Errorf("Date = %q, expected 2026-10-19", e.Date)
	}
	if e.Name != "Alexandria" {
		t.Errorf("Name = %q, expected name capped to 10 runes", e.Name)
	}
}

func TestNonQualifyingScoreLeavesTableUnchanged(t *testing.T) {
	book := Open(&fakePersister{loaded: Table{}}, nil)
	for i := 0; i < MaxEntries; i++ {
		book.Record("Medium", "p", 50+i, day)
	}
	before := book.Table()

	if book.Record("Medium", "late", 49, day) {
		t.Error("49 should not qualify against a full table with lowest 50")
	}

	after := book.Table()
	if len(after["Medium"]) != len(before["Medium"]) {
		t.Fatalf("table size changed: %d -> %d", len(before["Medium"]), len(after["Medium"]))
	}
	for i := range before["Medium"] {
		if before["Medium"][i] != after["Medium"][i] {
			t.Errorf("entry %d changed: %v -> %v", i, before["Medium"][i], after["Medium"][i])
		}
	}
}

func TestNormalize(t *testing.T) {
	table := Table{"Easy": {}}
	for i := 0; i < 15; i++ {
		table["Easy"] = append(table["Easy"], Entry{Name: "p", Score: i})
	}
	table.Normalize()

	if len(table["Easy"]) != MaxEntries {
		t.Errorf("Normalize should cap entries, got %d", len(table["Easy"]))
	}
	if table["Easy"][0].Score != 14 {
		t.Errorf("Normalize should sort descending, first = %d", table["Easy"][0].Score)
	}
}

func TestCloneIsDeep(t *testing.T) {
	table := SeedTable()
	clone := table.Clone()
	clone["Easy"][0].Score = 1

	if table["Easy"][0].Score != 100 {
		t.Error("Clone shares entry storage with the original")
	}
}
