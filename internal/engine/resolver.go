package engine

// Resolver turns a six-die roll into the events that settle a turn: number
// matching, energy, healing, and the Tokyo contention protocol. It only
// generates events; the caller applies them in order.
type Resolver struct {
	state   *GameState
	decider DecisionProvider
}

// NewResolver wires the resolver to the game state it reads and the decision
// provider it queries mid-turn.
func NewResolver(state *GameState, decider DecisionProvider) *Resolver {
	return &Resolver{state: state, decider: decider}
}

// ApplyPassiveReward awards the Tokyo occupant +2 VP at turn start, before
// any dice are rolled. No events while the zone is vacant.
func (r *Resolver) ApplyPassiveReward() []Event {
	if r.state.ZoneVacant() {
		return nil
	}
	return []Event{&VPChangedEvent{
		PlayerID: r.state.ZoneOccupant,
		Amount:   2,
		Reason:   ReasonZoneHold,
	}}
}

// ResolveTurn tallies the roll and produces the full event sequence for the
// active player's turn, in rule order: matched numbers, energy, hearts,
// claws. Claw resolution may block on the decision provider.
func (r *Resolver) ResolveTurn(playerID string, roll RollOutcome) ([]Event, error) {
	actor := r.state.MustPlayer(playerID)
	tally := roll.Tally()
	inZone := r.state.InZone(playerID)

	events := []Event{&DiceRolledEvent{PlayerID: playerID, Faces: roll}}

	// Matched numbers: three or more of face N scores N, once per face value.
	matched := 0
	if tally[FaceOne] >= 3 {
		matched += 1
	}
	if tally[FaceTwo] >= 3 {
		matched += 2
	}
	if tally[FaceThree] >= 3 {
		matched += 3
	}
	if matched > 0 {
		events = append(events, &VPChangedEvent{
			PlayerID: playerID,
			Amount:   matched,
			Reason:   ReasonMatchedNumbers,
		})
	}

	if n := tally[FaceEnergy]; n > 0 {
		events = append(events, &EnergyChangedEvent{PlayerID: playerID, Amount: n})
	}

	// Hearts heal only outside Tokyo; an occupant's hearts are wasted.
	if n := tally[FaceHeart]; n > 0 && !inZone {
		events = append(events, &HPChangedEvent{PlayerID: playerID, Amount: n})
	}

	claws := tally[FaceClaw]
	if claws == 0 {
		return events, nil
	}

	if inZone {
		// The occupant's claws hit every player outside Tokyo. Since the
		// attacker is the sole occupant, that is everyone else.
		for _, id := range r.state.TurnOrder {
			if id == playerID {
				continue
			}
			events = append(events, &HPChangedEvent{PlayerID: id, Amount: -claws})
		}

		if r.decider.AskYesNo(Decision{
			Kind:     DecideConcedeAfterAttack,
			Actor:    playerID,
			Occupant: playerID,
			Claws:    claws,
			Default:  false,
		}) {
			events = append(events, &ZoneVacatedEvent{PlayerID: playerID, Reason: VacateAfterAttack})
		}
		return events, nil
	}

	if !r.state.ZoneVacant() {
		// A challenger's claws deal no damage; they only force the
		// concession question. If the occupant holds, nothing changes.
		occupant := r.state.MustPlayer(r.state.ZoneOccupant)
		conceded := r.decider.AskYesNo(Decision{
			Kind:     DecideConcedeToChallenge,
			Actor:    actor.ID,
			Occupant: occupant.ID,
			Claws:    claws,
			Default:  false,
		})
		if !conceded {
			return events, nil
		}
		events = append(events, &ZoneVacatedEvent{PlayerID: occupant.ID, Reason: VacateToChallenge})
	}

	// Tokyo is vacant, either originally or just vacated above.
	if r.decider.AskYesNo(Decision{
		Kind:    DecideEnterZone,
		Actor:   actor.ID,
		Claws:   claws,
		Default: true,
	}) {
		events = append(events,
			&ZoneEnteredEvent{PlayerID: playerID},
			&VPChangedEvent{PlayerID: playerID, Amount: 1, Reason: ReasonZoneEntry},
		)
	}
	return events, nil
}
