package engine

import (
	"fmt"
	"strings"
)

type EventType string

const (
	EventPlayerJoined  EventType = "PlayerJoined"
	EventDiceRolled    EventType = "DiceRolled"
	EventVPChanged     EventType = "VPChanged"
	EventEnergyChanged EventType = "EnergyChanged"
	EventHPChanged     EventType = "HPChanged"
	EventZoneEntered   EventType = "ZoneEntered"
	EventZoneVacated   EventType = "ZoneVacated"
)

// Event is the building block of the event-sourced engine. Commands generate
// events without mutating anything; state changes happen only in Apply.
type Event interface {
	Type() EventType
	Apply(state *GameState) error
	Message() string
}

// VPReason records why victory points changed, for narration.
type VPReason string

const (
	ReasonMatchedNumbers VPReason = "matched numbers"
	ReasonZoneEntry      VPReason = "entered Tokyo"
	ReasonZoneHold       VPReason = "holds Tokyo"
)

// VacateReason records which decision point emptied the zone.
type VacateReason string

const (
	VacateAfterAttack VacateReason = "conceded after attacking"
	VacateToChallenge VacateReason = "conceded to the challenge"
)

// PlayerJoinedEvent seats a new player at game start.
type PlayerJoinedEvent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (e *PlayerJoinedEvent) Type() EventType { return EventPlayerJoined }
func (e *PlayerJoinedEvent) Apply(state *GameState) error {
	if _, ok := state.Players[e.ID]; ok {
		return fmt.Errorf("player with ID %s already seated", e.ID)
	}
	state.Players[e.ID] = &Player{
		ID:   e.ID,
		Name: e.Name,
		HP:   StartHP,
	}
	state.TurnOrder = append(state.TurnOrder, e.ID)
	return nil
}
func (e *PlayerJoinedEvent) Message() string {
	return fmt.Sprintf("%s joins the brawl (%d HP)", e.Name, StartHP)
}

// DiceRolledEvent records the six faces the active player rolled.
type DiceRolledEvent struct {
	PlayerID string      `json:"player_id"`
	Faces    RollOutcome `json:"faces"`
}

func (e *DiceRolledEvent) Type() EventType { return EventDiceRolled }
func (e *DiceRolledEvent) Apply(state *GameState) error {
	return nil // rolls do not inherently modify state
}
func (e *DiceRolledEvent) Message() string {
	parts := make([]string, 0, DiceCount)
	for _, f := range e.Faces {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("%s rolled: [%s]", e.PlayerID, strings.Join(parts, " "))
}

// VPChangedEvent awards victory points. Application saturates at the score
// cap; points are never lost in the simplified ruleset, so Amount is positive.
type VPChangedEvent struct {
	PlayerID string   `json:"player_id"`
	Amount   int      `json:"amount"`
	Reason   VPReason `json:"reason"`
}

func (e *VPChangedEvent) Type() EventType { return EventVPChanged }
func (e *VPChangedEvent) Apply(state *GameState) error {
	p, ok := state.Players[e.PlayerID]
	if !ok {
		return fmt.Errorf("player %s not found", e.PlayerID)
	}
	p.VP = clamp(p.VP+e.Amount, 0, MaxVP)
	return nil
}
func (e *VPChangedEvent) Message() string {
	return fmt.Sprintf("%s gains +%d VP (%s)", e.PlayerID, e.Amount, e.Reason)
}

// EnergyChangedEvent accumulates energy. Energy has no cap, only a zero floor.
type EnergyChangedEvent struct {
	PlayerID string `json:"player_id"`
	Amount   int    `json:"amount"`
}

func (e *EnergyChangedEvent) Type() EventType { return EventEnergyChanged }
func (e *EnergyChangedEvent) Apply(state *GameState) error {
	p, ok := state.Players[e.PlayerID]
	if !ok {
		return fmt.Errorf("player %s not found", e.PlayerID)
	}
	p.Energy += e.Amount
	if p.Energy < 0 {
		p.Energy = 0
	}
	return nil
}
func (e *EnergyChangedEvent) Message() string {
	return fmt.Sprintf("%s gains +%d energy", e.PlayerID, e.Amount)
}

// HPChangedEvent modifies a player's HP (positive heals, negative damages).
// Application saturates: damage floors at 0, healing caps at MaxHP.
type HPChangedEvent struct {
	PlayerID string `json:"player_id"`
	Amount   int    `json:"amount"`
}

func (e *HPChangedEvent) Type() EventType { return EventHPChanged }
func (e *HPChangedEvent) Apply(state *GameState) error {
	p, ok := state.Players[e.PlayerID]
	if !ok {
		return fmt.Errorf("player %s not found", e.PlayerID)
	}
	p.HP = clamp(p.HP+e.Amount, 0, MaxHP)
	return nil
}
func (e *HPChangedEvent) Message() string {
	if e.Amount >= 0 {
		return fmt.Sprintf("%s heals %d HP", e.PlayerID, e.Amount)
	}
	return fmt.Sprintf("%s takes %d damage", e.PlayerID, -e.Amount)
}

// ZoneEnteredEvent puts the active player in Tokyo. The zone must be vacant;
// the resolver vacates it first when an occupant concedes.
type ZoneEnteredEvent struct {
	PlayerID string `json:"player_id"`
}

func (e *ZoneEnteredEvent) Type() EventType { return EventZoneEntered }
func (e *ZoneEnteredEvent) Apply(state *GameState) error {
	if _, ok := state.Players[e.PlayerID]; !ok {
		return fmt.Errorf("player %s not found", e.PlayerID)
	}
	if state.ZoneOccupant != "" {
		return fmt.Errorf("Tokyo already occupied by %s", state.ZoneOccupant)
	}
	state.ZoneOccupant = e.PlayerID
	return nil
}
func (e *ZoneEnteredEvent) Message() string {
	return fmt.Sprintf("%s ENTERS Tokyo!", e.PlayerID)
}

// ZoneVacatedEvent empties Tokyo following a concession.
type ZoneVacatedEvent struct {
	PlayerID string       `json:"player_id"`
	Reason   VacateReason `json:"reason"`
}

func (e *ZoneVacatedEvent) Type() EventType { return EventZoneVacated }
func (e *ZoneVacatedEvent) Apply(state *GameState) error {
	if state.ZoneOccupant != e.PlayerID {
		return fmt.Errorf("player %s does not hold Tokyo", e.PlayerID)
	}
	state.ZoneOccupant = ""
	return nil
}
func (e *ZoneVacatedEvent) Message() string {
	return fmt.Sprintf("%s leaves Tokyo (%s)", e.PlayerID, e.Reason)
}
