package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom_requestSettlementPausesHand(t *testing.T) {
	a := assert.New(t)
	r, _ := newTestRoom(t)

	alice := mustJoin(t, r, "alice", 0)
	bob := mustJoin(t, r, "bob", 0)

	client := NewClient(nil, r, alice.ID)
	r.AddClient(client)

	require.NoError(t, r.StartGame(alice.ID))
	require.NoError(t, r.RequestSettlement(bob.ID))

	state := r.Snapshot(alice.ID)
	a.True(state.Paused)
	a.Equal(GameStatePreflop, state.GameState)

	err := r.PlayerAction(alice.ID, ActionCall, 0)
	a.ErrorIs(err, ErrGamePaused)

	report := lastSettlement(t, client)
	a.Equal("paused", report.Reason)
	require.Len(t, report.Results, 2)

	// blinds are already in the pot, so both players show a loss
	a.Equal(-10, report.Results[0].NetChange)
	a.Equal(-20, report.Results[1].NetChange)

	require.NoError(t, r.Resume(bob.ID))
	a.False(r.Snapshot(alice.ID).Paused)

	require.NoError(t, r.PlayerAction(alice.ID, ActionCall, 0))
	a.Equal(40, r.Snapshot(alice.ID).Pot)
}

func TestRoom_pauseFreezesRunoutTimer(t *testing.T) {
	a := assert.New(t)
	r, mock := newTestRoom(t)
	ctx := context.Background()

	alice := mustJoin(t, r, "alice", 500)
	bob := mustJoin(t, r, "bob", 2000)

	require.NoError(t, r.StartGame(alice.ID))
	require.NoError(t, r.PlayerAction(alice.ID, ActionAllIn, 0))
	require.NoError(t, r.PlayerAction(bob.ID, ActionCall, 0))

	a.Equal(GameStateFlop, r.Snapshot(alice.ID).GameState)

	require.NoError(t, r.RequestSettlement(bob.ID))

	// the armed street timer fires but must not deal while paused
	mock.Advance(r.opts.StreetDelay).MustWait(ctx)
	state := r.Snapshot(alice.ID)
	a.Equal(GameStateFlop, state.GameState)
	a.Len(state.CommunityCards, 3)

	require.NoError(t, r.Resume(bob.ID))

	mock.Advance(r.opts.StreetDelay).MustWait(ctx)
	state = r.Snapshot(alice.ID)
	a.Equal(GameStateTurn, state.GameState)
	a.Len(state.CommunityCards, 4)
}

func TestRoom_settlementWhileIdle(t *testing.T) {
	a := assert.New(t)
	r, _ := newTestRoom(t)

	alice := mustJoin(t, r, "alice", 0)
	client := NewClient(nil, r, alice.ID)
	r.AddClient(client)

	require.NoError(t, r.RequestSettlement(alice.ID))

	state := r.Snapshot(alice.ID)
	a.False(state.Paused)
	a.Equal(GameStateWaiting, state.GameState)

	report := lastSettlement(t, client)
	a.Equal("manual", report.Reason)
	require.Len(t, report.Results, 1)
	a.Equal(0, report.Results[0].NetChange)
}

func TestRoom_settleNowRunsOutTheHand(t *testing.T) {
	a := assert.New(t)
	r, mock := newTestRoom(t)
	ctx := context.Background()

	alice := mustJoin(t, r, "alice", 0)
	bob := mustJoin(t, r, "bob", 0)

	client := NewClient(nil, r, alice.ID)
	r.AddClient(client)

	require.NoError(t, r.StartGame(alice.ID))
	require.NoError(t, r.PlayerAction(alice.ID, ActionCall, 0))
	require.NoError(t, r.PlayerAction(bob.ID, ActionCheck, 0))

	a.Equal(GameStateFlop, r.Snapshot(alice.ID).GameState)

	require.NoError(t, r.SettleNow(alice.ID))

	state := r.Snapshot(alice.ID)
	a.Equal(GameStateEnded, state.GameState)
	a.Len(state.CommunityCards, 5)
	a.Equal(0, state.Pot)
	a.Equal(2000, totalChips(state))

	report := lastSettlement(t, client)
	a.Equal("hand-end", report.Reason)

	// a forced settlement never auto-starts the next hand
	mock.Advance(r.opts.NextHandDelay).MustWait(ctx)
	a.Equal(GameStateEnded, r.Snapshot(alice.ID).GameState)
}
