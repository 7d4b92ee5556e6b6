package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom_rejectsOutOfTurnAction(t *testing.T) {
	a := assert.New(t)
	r, _ := newTestRoom(t)

	alice := mustJoin(t, r, "alice", 0)
	bob := mustJoin(t, r, "bob", 0)

	require.NoError(t, r.StartGame(alice.ID))

	before := r.Snapshot(alice.ID)

	err := r.PlayerAction(bob.ID, ActionCall, 0)
	a.ErrorIs(err, ErrNotYourTurn)

	err = r.PlayerAction("nobody", ActionCall, 0)
	a.ErrorIs(err, ErrNotYourTurn)

	// a rejected action must not change any state
	after := r.Snapshot(alice.ID)
	a.Equal(before.Pot, after.Pot)
	a.Equal(before.CurrentBet, after.CurrentBet)
	a.Equal(before.CurrentPlayerSeat, after.CurrentPlayerSeat)
	a.Equal(before.Players[bob.Seat].Chips, after.Players[bob.Seat].Chips)
}

func TestRoom_illegalActions(t *testing.T) {
	a := assert.New(t)
	r, _ := newTestRoom(t)

	alice := mustJoin(t, r, "alice", 0)
	mustJoin(t, r, "bob", 0)

	err := r.PlayerAction(alice.ID, ActionCheck, 0)
	a.ErrorIs(err, ErrIllegalAction) // no hand in progress

	require.NoError(t, r.StartGame(alice.ID))

	err = r.PlayerAction(alice.ID, ActionCheck, 0)
	a.ErrorIs(err, ErrIllegalAction) // 10 more to call

	err = r.PlayerAction(alice.ID, "bet", 100)
	a.ErrorIs(err, ErrIllegalAction) // unknown action

	state := r.Snapshot(alice.ID)
	a.Equal(30, state.Pot)
	a.Equal(alice.Seat, state.CurrentPlayerSeat)
}

func TestRoom_raiseMinimum(t *testing.T) {
	a := assert.New(t)
	r, _ := newTestRoom(t)

	alice := mustJoin(t, r, "alice", 0)
	mustJoin(t, r, "bob", 0)

	require.NoError(t, r.StartGame(alice.ID))

	// the minimum raise is double the current bet
	err := r.PlayerAction(alice.ID, ActionRaise, 39)
	a.ErrorIs(err, ErrIllegalAction)

	require.NoError(t, r.PlayerAction(alice.ID, ActionRaise, 40))

	state := r.Snapshot(alice.ID)
	a.Equal(40, state.CurrentBet)
	a.Equal(40, state.Players[alice.Seat].Bet)
	a.Equal(960, state.Players[alice.Seat].Chips)
	a.Equal(60, state.Pot)
}

func TestRoom_callCappedAtStack(t *testing.T) {
	a := assert.New(t)
	r, _ := newTestRoom(t)

	alice := mustJoin(t, r, "alice", 1000)
	bob := mustJoin(t, r, "bob", 100)

	require.NoError(t, r.StartGame(alice.ID))
	require.NoError(t, r.PlayerAction(alice.ID, ActionRaise, 500))

	// bob only has 80 behind his blind
	require.NoError(t, r.PlayerAction(bob.ID, ActionCall, 0))

	state := r.Snapshot(bob.ID)
	a.Equal(0, state.Players[bob.Seat].Chips)
	a.True(state.Players[bob.Seat].AllIn)
	a.Equal(100, state.Players[bob.Seat].HandBet)
	a.Equal(600, state.Pot)
}

func TestRoom_wagersAccumulateAcrossStreets(t *testing.T) {
	a := assert.New(t)
	r, _ := newTestRoom(t)

	alice := mustJoin(t, r, "alice", 0)
	bob := mustJoin(t, r, "bob", 0)
	carol := mustJoin(t, r, "carol", 0)

	require.NoError(t, r.StartGame(alice.ID))

	require.NoError(t, r.PlayerAction(alice.ID, ActionCall, 0))
	require.NoError(t, r.PlayerAction(bob.ID, ActionCall, 0))

	// big blind has the option
	state := r.Snapshot(carol.ID)
	a.Equal(carol.Seat, state.CurrentPlayerSeat)
	require.NoError(t, r.PlayerAction(carol.ID, ActionCheck, 0))

	state = r.Snapshot(alice.ID)
	a.Equal(GameStateFlop, state.GameState)
	a.Len(state.CommunityCards, 3)
	a.Equal(60, state.Pot)
	a.Equal(0, state.CurrentBet)

	// the per-street wager resets but the hand total carries forward
	for _, p := range state.Players {
		a.Equal(0, p.Bet)
		a.Equal(20, p.HandBet)
	}

	// first to act after the dealer on later streets
	a.Equal(bob.Seat, state.CurrentPlayerSeat)

	require.NoError(t, r.PlayerAction(bob.ID, ActionRaise, 30))

	state = r.Snapshot(bob.ID)
	a.Equal(30, state.CurrentBet)
	a.Equal(30, state.Players[bob.Seat].Bet)
	a.Equal(50, state.Players[bob.Seat].HandBet)
	a.Equal(90, state.Pot)
}

func TestRoom_allInAboveCurrentBetReopensAction(t *testing.T) {
	a := assert.New(t)
	r, _ := newTestRoom(t)

	alice := mustJoin(t, r, "alice", 300)
	bob := mustJoin(t, r, "bob", 1000)

	require.NoError(t, r.StartGame(alice.ID))
	require.NoError(t, r.PlayerAction(alice.ID, ActionAllIn, 0))

	state := r.Snapshot(alice.ID)
	a.Equal(300, state.CurrentBet)
	a.Equal(GameStatePreflop, state.GameState)
	a.Equal(bob.Seat, state.CurrentPlayerSeat)

	// bob can still get away from it
	require.NoError(t, r.PlayerAction(bob.ID, ActionFold, 0))

	state = r.Snapshot(bob.ID)
	a.Equal(GameStateEnded, state.GameState)
	a.Equal(320, state.Players[alice.Seat].Chips)
	a.Equal(980, state.Players[bob.Seat].Chips)
}
