package engine

import "fmt"

// Game tuning constants. The simplified ruleset fixes these; they are not
// negotiable at runtime beyond the initial player count.
const (
	StartHP    = 10
	MaxHP      = 12
	MaxVP      = 20
	MinPlayers = 2
	MaxPlayers = 6
)

// Player is a single kaiju's mutable record. Records are created once at game
// start and never removed; HP 0 marks elimination, but the record persists so
// the final tally can include everyone.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	HP     int    `json:"hp"`
	VP     int    `json:"vp"`
	Energy int    `json:"energy"`
}

// Alive reports whether the player has not been eliminated.
func (p *Player) Alive() bool {
	return p.HP > 0
}

// GameState is the projection of a game built from applied events. The
// registry exclusively owns all player records; the zone holds a bare ID.
type GameState struct {
	Players   map[string]*Player `json:"players"`
	TurnOrder []string           `json:"turn_order"`

	// ZoneOccupant is the ID of the player holding Tokyo, or empty when the
	// zone is vacant. At most one occupant exists at any time. Elimination
	// does not vacate the zone; only an explicit concession does.
	ZoneOccupant string `json:"zone_occupant"`
}

// NewGameState creates a clean, empty game state.
func NewGameState() *GameState {
	return &GameState{
		Players:   make(map[string]*Player),
		TurnOrder: make([]string, 0),
	}
}

// Player looks up a record by ID.
func (s *GameState) Player(id string) (*Player, bool) {
	p, ok := s.Players[id]
	return p, ok
}

// MustPlayer looks up a record by ID and panics if it is missing. IDs are
// never invalidated during a game, so a miss is a programming error, not a
// condition callers should handle.
func (s *GameState) MustPlayer(id string) *Player {
	p, ok := s.Players[id]
	if !ok {
		panic(fmt.Sprintf("engine: unknown player ID %q", id))
	}
	return p
}

// InZone reports whether the given player currently occupies Tokyo.
func (s *GameState) InZone(id string) bool {
	return s.ZoneOccupant != "" && s.ZoneOccupant == id
}

// ZoneVacant reports whether Tokyo is unoccupied.
func (s *GameState) ZoneVacant() bool {
	return s.ZoneOccupant == ""
}

// clamp bounds v to [lo, hi]. All score and health accumulation saturates
// instead of wrapping.
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
