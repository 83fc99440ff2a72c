package engine

import "fmt"

// OutcomeKind classifies how a game ended.
type OutcomeKind string

const (
	// ScoreVictory means a living player reached the score cap.
	ScoreVictory OutcomeKind = "ScoreVictory"
	// LastStanding means exactly one player survived.
	LastStanding OutcomeKind = "LastStanding"
	// Draw means every player was eliminated in the same resolution step.
	Draw OutcomeKind = "Draw"
)

// Outcome is a terminal game result. PlayerID is empty for a Draw.
type Outcome struct {
	Kind     OutcomeKind
	PlayerID string
}

func (o *Outcome) Message() string {
	switch o.Kind {
	case ScoreVictory:
		return fmt.Sprintf("%s reached %d Victory Points!", o.PlayerID, MaxVP)
	case LastStanding:
		return fmt.Sprintf("%s is the Last Kaiju Standing!", o.PlayerID)
	case Draw:
		return "All Kaiju were eliminated simultaneously!"
	}
	return string(o.Kind)
}

// CheckVictory inspects the registry for a terminal condition and returns nil
// while the game should continue. Players are scanned in turn order, so score
// ties break in favor of the earliest seat.
func CheckVictory(state *GameState) *Outcome {
	alive := 0
	var lastAlive string
	for _, id := range state.TurnOrder {
		p := state.MustPlayer(id)
		if !p.Alive() {
			continue
		}
		if p.VP >= MaxVP {
			return &Outcome{Kind: ScoreVictory, PlayerID: id}
		}
		alive++
		lastAlive = id
	}

	switch alive {
	case 0:
		return &Outcome{Kind: Draw}
	case 1:
		return &Outcome{Kind: LastStanding, PlayerID: lastAlive}
	}
	return nil
}
