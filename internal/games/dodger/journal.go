package dodger

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/hsmto25519/block-game/internal/config"
)

// Move is one recorded player move. Tick is the number of ticks that had
// run when the move was applied, so replay applies it right before tick
// Tick+1.
type Move struct {
	Tick uint64
	Dir  Direction
}

// Journal is the ordered list of moves made during a run.
type Journal []Move

// String encodes the journal compactly, e.g. "0L 0L 3R 17R".
func (j Journal) String() string {
	parts := make([]string, len(j))
	for i, m := range j {
		parts[i] = strconv.FormatUint(m.Tick, 10) + m.Dir.String()
	}
	return strings.Join(parts, " ")
}

// ParseJournal decodes the String form.
func ParseJournal(s string) (Journal, error) {
	fields := strings.Fields(s)
	j := make(Journal, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			return nil, fmt.Errorf("dodger: malformed journal entry %q", f)
		}
		var dir Direction
		switch f[len(f)-1] {
		case 'L':
			dir = DirLeft
		case 'R':
			dir = DirRight
		default:
			return nil, fmt.Errorf("dodger: malformed journal entry %q", f)
		}
		tick, err := strconv.ParseUint(f[:len(f)-1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("dodger: malformed journal entry %q: %w", f, err)
		}
		if n := len(j); n > 0 && j[n-1].Tick > tick {
			return nil, fmt.Errorf("dodger: journal out of order at %q", f)
		}
		j = append(j, Move{Tick: tick, Dir: dir})
	}
	return j, nil
}

// Replay re-runs a recorded session headlessly. It seeds the spawner the
// same way Game.Reset does and applies each move before the tick it
// preceded. The run stops at game over or after maxTicks ticks, whichever
// comes first.
func Replay(cfg config.DodgerConfig, seed int64, journal Journal, maxTicks uint64) (Snapshot, error) {
	s, err := NewSession(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return Snapshot{}, err
	}

	i := 0
	for s.State() == StatePlaying && s.Ticks() < maxTicks {
		for i < len(journal) && journal[i].Tick == s.Ticks() {
			s.Move(journal[i].Dir)
			i++
		}
		s.Tick()
	}
	// Moves made after the last tick of a quit run
	for ; i < len(journal); i++ {
		s.Move(journal[i].Dir)
	}

	return s.Snapshot(), nil
}
