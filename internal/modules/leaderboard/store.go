// Package leaderboard persists the hall of fame: the ten best final net
// worths ever recorded, sorted descending.
package leaderboard

// Entry is one hall of fame row.
type Entry struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Date  string  `json:"date"`
}

// MaxEntries caps the board.
const MaxEntries = 10

// Store is the persistence collaborator the engine's callers use. Save
// returns the updated board so the caller can render it immediately.
type Store interface {
	Load() ([]Entry, error)
	Save(Entry) ([]Entry, error)
}

// SeedEntries is the arcade default list shown while the board is empty.
var SeedEntries = []Entry{
	{Name: "Han S.", Score: 5000000000, Date: "20XX"},
	{Name: "Jean-Luc", Score: 2500000000, Date: "2364"},
	{Name: "Ellen Ripley", Score: 1000000000, Date: "2122"},
	{Name: "Starbuck", Score: 500000000, Date: "2003"},
	{Name: "Mal Reynolds", Score: 250000000, Date: "2517"},
	{Name: "Korben Dallas", Score: 100000000, Date: "2263"},
	{Name: "Dave Bowman", Score: 50000000, Date: "2001"},
	{Name: "Sarah Connor", Score: 10000000, Date: "1984"},
	{Name: "Rick Deckard", Score: 5000000, Date: "2019"},
	{Name: "Arthur Dent", Score: 42000, Date: "1979"},
}

// Qualifies reports whether a score would enter the given board.
func Qualifies(board []Entry, score float64) bool {
	if len(board) < MaxEntries {
		return score > 0
	}
	return score > board[len(board)-1].Score
}
