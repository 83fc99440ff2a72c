package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dyvontrae/kingoftokyo/internal/engine"
)

func TestNewSessionRequiresTwoPlayers(t *testing.T) {
	_, err := NewSession([]string{"Rex"}, engine.AutoDecider)
	assert.Error(t, err)
}

func TestNewSessionTruncatesToSixSeats(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	sess, err := NewSession(names, engine.AutoDecider)
	require.NoError(t, err)
	assert.Len(t, sess.State().TurnOrder, engine.MaxPlayers)
}

func TestDuplicateNamesGetDistinctIDs(t *testing.T) {
	sess, err := NewSession([]string{"Rex", "Rex", "Mega Rex"}, engine.AutoDecider)
	require.NoError(t, err)

	order := sess.State().TurnOrder
	assert.Equal(t, []string{"rex", "rex-2", "mega-rex"}, order)
	assert.Equal(t, "Rex", sess.State().MustPlayer("rex-2").Name)
}

func TestFullTurnFlow(t *testing.T) {
	defer engine.ResetMockDice()

	sess, err := NewSession([]string{"Rex", "Gigazaur"}, engine.AutoDecider)
	require.NoError(t, err)

	// First turn: Rex matches three 1s, banks energy, heals, and takes the
	// vacant zone (entry defaults to yes).
	engine.MockDice([]engine.DieFace{
		engine.FaceOne, engine.FaceOne, engine.FaceOne,
		engine.FaceEnergy, engine.FaceClaw, engine.FaceHeart,
	})
	_, err = sess.ResolveTurn("rex", sess.Roll())
	require.NoError(t, err)

	state := sess.State()
	rex := state.MustPlayer("rex")
	assert.Equal(t, 2, rex.VP)
	assert.Equal(t, 1, rex.Energy)
	assert.Equal(t, engine.StartHP+1, rex.HP)
	assert.Equal(t, "rex", state.ZoneOccupant)
	assert.Nil(t, sess.CheckVictory())

	// Second turn: Gigazaur challenges; concession defaults to no, so
	// nothing changes hands and nobody is hurt.
	engine.MockDice([]engine.DieFace{
		engine.FaceClaw, engine.FaceClaw, engine.FaceTwo,
		engine.FaceTwo, engine.FaceTwo, engine.FaceEnergy,
	})
	_, err = sess.ResolveTurn("gigazaur", sess.Roll())
	require.NoError(t, err)

	assert.Equal(t, "rex", state.ZoneOccupant)
	assert.Equal(t, engine.StartHP, state.MustPlayer("rex").HP)
	assert.Equal(t, 2, state.MustPlayer("gigazaur").VP, "three 2s score 2")

	// The journal replays to the exact same state.
	rebuilt, err := engine.NewProjector().Build(sess.Journal())
	require.NoError(t, err)
	assert.Equal(t, state, rebuilt)
}

func TestPassiveRewardCanEndGameBeforeRolling(t *testing.T) {
	sess, err := NewSession([]string{"Rex", "Gigazaur"}, engine.AutoDecider)
	require.NoError(t, err)

	state := sess.State()
	state.ZoneOccupant = "rex"
	state.MustPlayer("rex").VP = engine.MaxVP - 2

	events, err := sess.PassiveReward()
	require.NoError(t, err)
	require.Len(t, events, 1)

	outcome := sess.CheckVictory()
	require.NotNil(t, outcome, "the holding bonus alone ends the game before dice are rolled")
	assert.Equal(t, engine.ScoreVictory, outcome.Kind)
	assert.Equal(t, "rex", outcome.PlayerID)
}

func TestJournalRecordsSeating(t *testing.T) {
	sess, err := NewSession([]string{"Rex", "Gigazaur"}, engine.AutoDecider)
	require.NoError(t, err)

	journal := sess.Journal()
	require.Len(t, journal, 2)
	for _, evt := range journal {
		assert.Equal(t, engine.EventPlayerJoined, evt.Type())
	}
}
