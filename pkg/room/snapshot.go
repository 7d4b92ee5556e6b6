package room

import "holdempoker-server/pkg/deck"

// PlayerState is a player as seen in a state snapshot. Hand is only
// populated for the viewer's own cards, or for all live hands once the
// showdown is reached.
type PlayerState struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Seat       int       `json:"seat"`
	Chips      int       `json:"chips"`
	IsBot      bool      `json:"isBot"`
	Folded     bool      `json:"folded"`
	AllIn      bool      `json:"allIn"`
	Bet        int       `json:"bet"`
	HandBet    int       `json:"handBet"`
	LastAction string    `json:"lastAction,omitempty"`
	Hand       deck.Hand `json:"hand,omitempty"`
}

// State is a full, per-viewer snapshot of the room.
type State struct {
	RoomCode          string         `json:"roomCode"`
	HostID            string         `json:"hostId"`
	GameState         GameState      `json:"gameState"`
	Paused            bool           `json:"paused"`
	Pot               int            `json:"pot"`
	CurrentBet        int            `json:"currentBet"`
	CommunityCards    deck.Hand      `json:"communityCards"`
	DealerSeat        int            `json:"dealerSeat"`
	CurrentPlayerSeat int            `json:"currentPlayerSeat"`
	Players           []*PlayerState `json:"players"`
}

// snapshotFor builds the state as visible to viewerID. Must run on the
// run loop.
func (r *Room) snapshotFor(viewerID string) *State {
	players := make([]*PlayerState, 0, r.seatedCount())
	for _, p := range r.seats {
		if p == nil {
			continue
		}

		ps := &PlayerState{
			ID:         p.ID,
			Name:       p.Name,
			Seat:       p.Seat,
			Chips:      p.Chips,
			IsBot:      p.IsBot,
			Folded:     p.folded,
			AllIn:      p.allIn,
			Bet:        p.streetBet,
			HandBet:    p.handBet,
			LastAction: p.lastAction,
		}

		if p.ID == viewerID || (r.state.holeCardsVisible() && p.inHand()) {
			ps.Hand = p.hand.Clone()
		}

		players = append(players, ps)
	}

	currentSeat := -1
	if r.state.isBettingStreet() {
		currentSeat = r.currentSeat
	}

	return &State{
		RoomCode:          r.code,
		HostID:            r.hostID,
		GameState:         r.state,
		Paused:            r.paused,
		Pot:               r.pot,
		CurrentBet:        r.currentBet,
		CommunityCards:    r.community.Clone(),
		DealerSeat:        r.dealerSeat,
		CurrentPlayerSeat: currentSeat,
		Players:           players,
	}
}
