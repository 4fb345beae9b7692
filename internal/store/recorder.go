// internal/store/recorder.go
//
// In-memory collection of finished game results, used for end-of-run
// summaries in batch mode. Results live only for the process lifetime;
// nothing is persisted across runs.
//
// Characteristics:
//   - Stores game.Result values in arrival order.
//   - Concurrency-safe via RWMutex, though the simulator itself is
//     strictly sequential.

package store

import (
	"sync"

	"github.com/wordybot/wordy/internal/game"
)

// Recorder collects finished game results.
// Implementations may be backed by memory (this package) or anything else
// that can tally results.
type Recorder interface {
	// Record appends one finished game.
	Record(res game.Result)

	// Summary tallies everything recorded so far.
	Summary() Summary
}

// Summary aggregates a batch of games.
type Summary struct {
	Games     int
	Wins      int
	Exhausted int
	Aborted   int
	WonRounds int // total rounds across won games
}

// WinRate returns wins / games, or 0 for an empty batch.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// AvgWinRounds returns the mean round count of won games, or 0 with no wins.
func (s Summary) AvgWinRounds() float64 {
	if s.Wins == 0 {
		return 0
	}
	return float64(s.WonRounds) / float64(s.Wins)
}

// memory is the map-free, slice-backed Recorder implementation.
type memory struct {
	mu      sync.RWMutex
	results []game.Result
}

// NewMemoryRecorder constructs an in-memory Recorder.
func NewMemoryRecorder() Recorder {
	return &memory{}
}

// Record appends the result.
func (m *memory) Record(res game.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
}

// Summary walks the recorded results and tallies them.
func (m *memory) Summary() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var s Summary
	for _, r := range m.results {
		s.Games++
		switch r.Status {
		case game.StatusWon:
			s.Wins++
			s.WonRounds += r.Rounds
		case game.StatusExhausted:
			s.Exhausted++
		case game.StatusAborted:
			s.Aborted++
		}
	}
	return s
}
