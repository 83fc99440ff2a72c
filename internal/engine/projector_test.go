package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectorRebuildsStateFromEvents(t *testing.T) {
	events := []Event{
		&PlayerJoinedEvent{ID: "rex", Name: "Rex"},
		&PlayerJoinedEvent{ID: "gigazaur", Name: "Gigazaur"},
		&VPChangedEvent{PlayerID: "rex", Amount: 3, Reason: ReasonMatchedNumbers},
		&EnergyChangedEvent{PlayerID: "rex", Amount: 2},
		&ZoneEnteredEvent{PlayerID: "rex"},
		&VPChangedEvent{PlayerID: "rex", Amount: 1, Reason: ReasonZoneEntry},
		&HPChangedEvent{PlayerID: "gigazaur", Amount: -4},
		&ZoneVacatedEvent{PlayerID: "rex", Reason: VacateAfterAttack},
	}

	state, err := NewProjector().Build(events)
	require.NoError(t, err)

	rex := state.MustPlayer("rex")
	assert.Equal(t, 4, rex.VP)
	assert.Equal(t, 2, rex.Energy)
	assert.Equal(t, StartHP-4, state.MustPlayer("gigazaur").HP)
	assert.True(t, state.ZoneVacant())
	assert.Equal(t, []string{"rex", "gigazaur"}, state.TurnOrder)
}

func TestProjectorStopsOnBrokenEvent(t *testing.T) {
	events := []Event{
		&PlayerJoinedEvent{ID: "rex", Name: "Rex"},
		&HPChangedEvent{PlayerID: "ghost", Amount: -1},
	}

	_, err := NewProjector().Build(events)
	assert.Error(t, err)
}
