package room

import "fmt"

// player action kinds
const (
	ActionFold  = "fold"
	ActionCheck = "check"
	ActionCall  = "call"
	ActionRaise = "raise"
	ActionAllIn = "all-in"
)

// PlayerAction applies a betting action for the player. The action is
// rejected outright, with no state change, unless it is the player's
// turn and the action is legal for the current wager.
func (r *Room) PlayerAction(playerID, kind string, amount int) error {
	return r.runErr(func() error {
		p, ok := r.players[playerID]
		if !ok {
			return ErrNotYourTurn
		}
		if r.paused {
			return ErrGamePaused
		}
		if !r.state.isBettingStreet() {
			return fmt.Errorf("%w: no betting round in progress", ErrIllegalAction)
		}
		if p.Seat != r.currentSeat {
			return ErrNotYourTurn
		}

		return r.act(p, kind, amount)
	})
}

// act validates and applies the action, logs it, and advances the hand.
func (r *Room) act(p *Player, kind string, amount int) error {
	committed, err := r.applyAction(p, kind, amount)
	if err != nil {
		return err
	}

	r.logAction(p, kind, committed)
	r.advance()
	return nil
}

// applyAction mutates the player and pot for a single legal action and
// returns the chips committed. The player's state is untouched on error.
func (r *Room) applyAction(p *Player, kind string, amount int) (int, error) {
	toCall := r.currentBet - p.streetBet
	committed := 0

	switch kind {
	case ActionFold:
		p.folded = true
	case ActionCheck:
		if toCall > 0 {
			return 0, fmt.Errorf("%w: cannot check with %d to call", ErrIllegalAction, toCall)
		}
	case ActionCall:
		if toCall <= 0 {
			return 0, fmt.Errorf("%w: there is no bet to call", ErrIllegalAction)
		}
		committed = p.commit(toCall)
	case ActionRaise:
		minRaise := r.minRaiseTo()
		if amount < minRaise {
			return 0, fmt.Errorf("%w: raise must be to at least %d", ErrIllegalAction, minRaise)
		}
		delta := amount - p.streetBet
		if delta <= 0 {
			return 0, fmt.Errorf("%w: raise must increase the wager", ErrIllegalAction)
		}
		committed = p.commit(delta)
		if p.streetBet > r.currentBet {
			r.currentBet = p.streetBet
		}
	case ActionAllIn:
		if p.Chips == 0 {
			return 0, fmt.Errorf("%w: no chips remaining", ErrIllegalAction)
		}
		committed = p.commit(p.Chips)
		if p.streetBet > r.currentBet {
			r.currentBet = p.streetBet
		}
	default:
		return 0, fmt.Errorf("%w: unknown action %q", ErrIllegalAction, kind)
	}

	r.pot += committed
	p.acted = true
	p.lastAction = kind
	return committed, nil
}

// minRaiseTo returns the minimum total street wager for a raise.
func (r *Room) minRaiseTo() int {
	min := r.currentBet * 2
	if min < r.opts.BigBlind {
		min = r.opts.BigBlind
	}
	return min
}
