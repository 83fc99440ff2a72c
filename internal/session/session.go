package session

import (
	"fmt"
	"strings"

	"github.com/Dyvontrae/kingoftokyo/internal/engine"
)

// Session coordinates one game: it owns the projected GameState, the turn
// resolver, and the in-memory event journal the driver renders from. The
// driver's loop calls PassiveReward, CheckVictory, Roll, and ResolveTurn in
// that order each turn; turns are strictly serialized, so no locking exists.
type Session struct {
	state    *engine.GameState
	resolver *engine.Resolver
	journal  []engine.Event
}

// NewSession seats the named players in order and wires the decision provider
// the resolver will query mid-turn. More than six names are truncated to six;
// fewer than two is an error the caller must fix at setup.
func NewSession(names []string, decider engine.DecisionProvider) (*Session, error) {
	if len(names) < engine.MinPlayers {
		return nil, fmt.Errorf("need at least %d players, got %d", engine.MinPlayers, len(names))
	}
	if len(names) > engine.MaxPlayers {
		names = names[:engine.MaxPlayers]
	}

	s := &Session{state: engine.NewGameState()}
	for _, name := range names {
		evt := &engine.PlayerJoinedEvent{ID: s.uniqueID(name), Name: name}
		if err := s.ApplyAndAppend(evt); err != nil {
			return nil, err
		}
	}
	s.resolver = engine.NewResolver(s.state, decider)
	return s, nil
}

// uniqueID derives a stable readable ID from a display name, suffixing
// duplicates so every seat keys distinctly.
func (s *Session) uniqueID(name string) string {
	base := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
	if base == "" {
		base = "kaiju"
	}
	id := base
	for n := 2; ; n++ {
		if _, ok := s.state.Player(id); !ok {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

// State returns the current projected GameState.
func (s *Session) State() *engine.GameState {
	return s.state
}

// Journal returns every event applied so far, in order.
func (s *Session) Journal() []engine.Event {
	return s.journal
}

// PassiveReward applies the start-of-turn Tokyo holding bonus and returns the
// resulting events for display.
func (s *Session) PassiveReward() ([]engine.Event, error) {
	events := s.resolver.ApplyPassiveReward()
	for _, evt := range events {
		if err := s.ApplyAndAppend(evt); err != nil {
			return nil, err
		}
	}
	return events, nil
}

// CheckVictory reports the terminal outcome, or nil while the game continues.
func (s *Session) CheckVictory() *engine.Outcome {
	return engine.CheckVictory(s.state)
}

// Roll produces a fresh six-die roll.
func (s *Session) Roll() engine.RollOutcome {
	return engine.RollSix()
}

// ResolveTurn runs the full resolution of the active player's roll, applying
// and journaling each event in rule order.
func (s *Session) ResolveTurn(playerID string, roll engine.RollOutcome) ([]engine.Event, error) {
	events, err := s.resolver.ResolveTurn(playerID, roll)
	if err != nil {
		return nil, err
	}
	for _, evt := range events {
		if err := s.ApplyAndAppend(evt); err != nil {
			return nil, err
		}
	}
	return events, nil
}

// ApplyAndAppend commits a finalized event to memory state and the journal.
func (s *Session) ApplyAndAppend(evt engine.Event) error {
	if err := evt.Apply(s.state); err != nil {
		return fmt.Errorf("failed to apply event to memory state: %w", err)
	}
	s.journal = append(s.journal, evt)
	return nil
}
