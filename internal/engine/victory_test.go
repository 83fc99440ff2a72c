package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVictoryNoneWhileGameRuns(t *testing.T) {
	state := testState("rex", "gigazaur", "cyberbunny")
	assert.Nil(t, CheckVictory(state))
}

func TestScoreVictory(t *testing.T) {
	state := testState("rex", "gigazaur")
	state.MustPlayer("gigazaur").VP = MaxVP

	outcome := CheckVictory(state)
	require.NotNil(t, outcome)
	assert.Equal(t, ScoreVictory, outcome.Kind)
	assert.Equal(t, "gigazaur", outcome.PlayerID)
}

func TestScoreVictoryIgnoresEliminatedPlayers(t *testing.T) {
	state := testState("rex", "gigazaur", "cyberbunny")
	dead := state.MustPlayer("rex")
	dead.VP = MaxVP
	dead.HP = 0

	assert.Nil(t, CheckVictory(state), "a dead kaiju at the cap does not win")
}

func TestScoreTieBreaksByTurnOrder(t *testing.T) {
	state := testState("rex", "gigazaur")
	state.MustPlayer("rex").VP = MaxVP
	state.MustPlayer("gigazaur").VP = MaxVP

	outcome := CheckVictory(state)
	require.NotNil(t, outcome)
	assert.Equal(t, "rex", outcome.PlayerID, "first seat scanned wins the tie")
}

func TestLastStanding(t *testing.T) {
	state := testState("rex", "gigazaur", "cyberbunny")
	state.MustPlayer("rex").HP = 0
	state.MustPlayer("cyberbunny").HP = 0

	outcome := CheckVictory(state)
	require.NotNil(t, outcome)
	assert.Equal(t, LastStanding, outcome.Kind)
	assert.Equal(t, "gigazaur", outcome.PlayerID)
}

func TestSimultaneousEliminationIsADraw(t *testing.T) {
	state := testState("rex", "gigazaur")
	state.MustPlayer("rex").HP = 0
	state.MustPlayer("gigazaur").HP = 0

	outcome := CheckVictory(state)
	require.NotNil(t, outcome)
	assert.Equal(t, Draw, outcome.Kind)
	assert.Empty(t, outcome.PlayerID)
}

func TestOutcomeMessages(t *testing.T) {
	assert.Contains(t, (&Outcome{Kind: ScoreVictory, PlayerID: "rex"}).Message(), "rex")
	assert.Contains(t, (&Outcome{Kind: LastStanding, PlayerID: "rex"}).Message(), "Last Kaiju Standing")
	assert.Contains(t, (&Outcome{Kind: Draw}).Message(), "simultaneously")
}
