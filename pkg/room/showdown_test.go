package room

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdempoker-server/pkg/deck"
)

func hand(s string) deck.Hand {
	return deck.CardsFromString(s)
}

func TestRoom_allInRunsOutTheBoard(t *testing.T) {
	a := assert.New(t)
	r, mock := newTestRoom(t)
	ctx := context.Background()

	alice := mustJoin(t, r, "alice", 500)
	bob := mustJoin(t, r, "bob", 2000)

	require.NoError(t, r.StartGame(alice.ID))
	require.NoError(t, r.PlayerAction(alice.ID, ActionAllIn, 0))
	require.NoError(t, r.PlayerAction(bob.ID, ActionCall, 0))

	// betting is finished, so the flop comes at once and the rest of
	// the board is dealt on a timer with no further turns
	state := r.Snapshot(alice.ID)
	a.Equal(GameStateFlop, state.GameState)
	a.Len(state.CommunityCards, 3)
	a.Equal(1000, state.Pot)
	a.Equal(-1, state.CurrentPlayerSeat)

	mock.Advance(r.opts.StreetDelay).MustWait(ctx)
	state = r.Snapshot(alice.ID)
	a.Equal(GameStateTurn, state.GameState)
	a.Len(state.CommunityCards, 4)

	mock.Advance(r.opts.StreetDelay).MustWait(ctx)
	state = r.Snapshot(alice.ID)
	a.Equal(GameStateRiver, state.GameState)
	a.Len(state.CommunityCards, 5)

	// pin the cards so the short stack wins the showdown
	r.run(func() {
		alice.hand = hand("14s,14h")
		bob.hand = hand("3h,4s")
		r.community = hand("2c,5d,9h,11s,13d")
		r.advanceStreet()
	})

	state = r.Snapshot(alice.ID)
	a.Equal(GameStateEnded, state.GameState)
	a.Equal(0, state.Pot)
	a.Equal(1000, state.Players[alice.Seat].Chips)
	a.Equal(1500, state.Players[bob.Seat].Chips)
	a.Equal(2500, totalChips(state))
}

func TestRoom_unequalShovesBuildSidePot(t *testing.T) {
	a := assert.New(t)
	r, mock := newTestRoom(t)
	ctx := context.Background()

	alice := mustJoin(t, r, "alice", 500)
	bob := mustJoin(t, r, "bob", 1000)

	require.NoError(t, r.StartGame(alice.ID))
	require.NoError(t, r.PlayerAction(alice.ID, ActionAllIn, 0))
	require.NoError(t, r.PlayerAction(bob.ID, ActionAllIn, 0))

	state := r.Snapshot(alice.ID)
	a.Equal(GameStateFlop, state.GameState)
	a.Equal(1500, state.Pot)
	a.Equal(-1, state.CurrentPlayerSeat)

	mock.Advance(r.opts.StreetDelay).MustWait(ctx)
	r.Snapshot(alice.ID) // flush the run loop so the next street's timer is registered
	mock.Advance(r.opts.StreetDelay).MustWait(ctx)
	a.Equal(GameStateRiver, r.Snapshot(alice.ID).GameState)

	// pin the cards so the short stack takes the main pot
	r.run(func() {
		alice.hand = hand("14s,14h")
		bob.hand = hand("3h,4s")
		r.community = hand("2c,5d,9h,11s,13d")
	})

	mock.Advance(r.opts.StreetDelay).MustWait(ctx)

	// the short stack wins only the 1000 it could contest; the uncalled
	// 500 comes back to the deep stack through the side pot
	state = r.Snapshot(alice.ID)
	a.Equal(GameStateEnded, state.GameState)
	a.Equal(0, state.Pot)
	a.Equal(1000, state.Players[alice.Seat].Chips)
	a.Equal(500, state.Players[bob.Seat].Chips)
	a.Equal(1500, totalChips(state))
}

func TestRoom_showdownAwardsSidePots(t *testing.T) {
	a := assert.New(t)
	r, _ := newTestRoom(t)

	p1 := mustJoin(t, r, "short", 400)
	p2 := mustJoin(t, r, "mid", 500)
	p3 := mustJoin(t, r, "deep", 500)

	r.run(func() {
		r.state = GameStateRiver
		r.dealerSeat = 0
		r.pot = 700
		r.community = hand("2c,5d,9h,11s,13d")

		p1.hand = hand("14s,14h")
		p1.handBet = 100
		p1.Chips = 0
		p1.allIn = true
		p1.startChips = 100

		p2.hand = hand("12s,12h")
		p2.handBet = 300
		p2.Chips = 200

		p3.hand = hand("3s,4h")
		p3.handBet = 300
		p3.Chips = 200

		r.advanceStreet()
	})

	state := r.Snapshot(p1.ID)
	a.Equal(GameStateEnded, state.GameState)
	a.Equal(0, state.Pot)

	// the short stack only wins the main pot it was eligible for; the
	// side pot goes to the best remaining hand
	a.Equal(300, state.Players[p1.Seat].Chips)
	a.Equal(600, state.Players[p2.Seat].Chips)
	a.Equal(200, state.Players[p3.Seat].Chips)
}

func TestRoom_foldedCommitmentIsDeadMoney(t *testing.T) {
	a := assert.New(t)
	r, _ := newTestRoom(t)

	p1 := mustJoin(t, r, "winner", 500)
	p2 := mustJoin(t, r, "folder", 500)
	p3 := mustJoin(t, r, "caller", 500)

	r.run(func() {
		r.state = GameStateRiver
		r.dealerSeat = 0
		r.pot = 250
		r.community = hand("2c,5d,9h,11s,13d")

		p1.hand = hand("14s,14h")
		p1.handBet = 100
		p1.Chips = 400

		p2.hand = hand("12s,12h")
		p2.handBet = 50
		p2.folded = true
		p2.Chips = 450

		p3.hand = hand("3s,4h")
		p3.handBet = 100
		p3.Chips = 400

		r.advanceStreet()
	})

	// the folder's 50 rides along in the pot but they win nothing
	state := r.Snapshot(p1.ID)
	a.Equal(650, state.Players[p1.Seat].Chips)
	a.Equal(450, state.Players[p2.Seat].Chips)
	a.Equal(400, state.Players[p3.Seat].Chips)
}

func TestRoom_bustedPlayerClosesRoom(t *testing.T) {
	a := assert.New(t)

	registry := NewRegistry(DefaultOptions(), quartz.NewMock(t))
	rm, alice, err := registry.CreateRoom("alice", 0)
	require.NoError(t, err)
	a.Equal(1, registry.Count())

	bob, err := rm.Join("bob", 0)
	require.NoError(t, err)

	rm.run(func() {
		rm.state = GameStateRiver
		rm.dealerSeat = 0
		rm.pot = 200
		rm.community = hand("3c,5d,9h,11s,13d")

		alice.hand = hand("2c,7d")
		alice.handBet = 100
		alice.Chips = 0
		alice.allIn = true
		alice.startChips = 100

		bob.hand = hand("14s,14h")
		bob.handBet = 100
		bob.Chips = 900

		rm.advanceStreet()
	})

	select {
	case <-rm.done:
	case <-time.After(time.Second):
		t.Fatal("expected the room to shut down after a bust")
	}

	a.Equal(0, registry.Count())
	_, err = registry.Room(rm.Code())
	a.ErrorIs(err, ErrRoomNotFound)
}
