package room

import "holdempoker-server/pkg/deck"

// Player is a seated participant, human or bot.
type Player struct {
	ID    string
	Name  string
	Seat  int
	Chips int
	IsBot bool

	hand       deck.Hand
	handBet    int
	streetBet  int
	folded     bool
	allIn      bool
	acted      bool
	lastAction string
	startChips int
	left       bool
}

// inHand returns true if the player was dealt in and has not folded.
func (p *Player) inHand() bool {
	return len(p.hand) > 0 && !p.folded
}

// canAct returns true if the player may still make a betting decision this hand.
func (p *Player) canAct() bool {
	return p.inHand() && !p.allIn && p.Chips > 0
}

// commit moves up to amount chips from the stack into the current wager,
// capping at the stack. A player whose stack reaches zero is all in.
// Returns the amount actually committed.
func (p *Player) commit(amount int) int {
	if amount > p.Chips {
		amount = p.Chips
	}

	p.Chips -= amount
	p.streetBet += amount
	p.handBet += amount
	if p.Chips == 0 {
		p.allIn = true
	}

	return amount
}

// resetForHand clears all per-hand state and records the stack for
// settlement reporting.
func (p *Player) resetForHand() {
	p.hand = nil
	p.handBet = 0
	p.streetBet = 0
	p.folded = false
	p.allIn = false
	p.acted = false
	p.lastAction = ""
	p.startChips = p.Chips
}
