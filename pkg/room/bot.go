package room

import (
	"time"

	"holdempoker-server/pkg/deck"
)

// maybeScheduleBot arms a decision timer if the current player is a
// bot. The randomized delay keeps bot play from feeling instantaneous.
func (r *Room) maybeScheduleBot() {
	if !r.state.isBettingStreet() || r.paused || r.currentSeat < 0 {
		return
	}

	p := r.seats[r.currentSeat]
	if p == nil || !p.IsBot {
		return
	}

	r.pending = pendingBot
	delay := r.opts.BotDelayMin
	if spread := r.opts.BotDelayMax - r.opts.BotDelayMin; spread > 0 {
		delay += time.Duration(r.rng.Intn(int(spread)))
	}

	handNum, turnSeq := r.handNum, r.turnSeq
	r.clock.AfterFunc(delay, func() {
		r.post(func() {
			r.botStep(handNum, turnSeq)
		})
	})
}

func (r *Room) botStep(handNum, turnSeq int) {
	if r.paused {
		// leave the pending marker so resume reschedules
		return
	}
	if handNum != r.handNum || turnSeq != r.turnSeq {
		return
	}
	if !r.state.isBettingStreet() || r.currentSeat < 0 {
		return
	}

	p := r.seats[r.currentSeat]
	if p == nil || !p.IsBot {
		return
	}

	r.pending = pendingNone
	kind, amount := r.botDecision(p)
	if err := r.act(p, kind, amount); err != nil {
		// the decision should already be clamped to a legal action, but
		// never let a bot stall the hand
		r.logger.WithError(err).Warn("bot chose an illegal action")
		fallback := ActionCheck
		if r.currentBet > p.streetBet {
			fallback = ActionCall
		}
		if err := r.act(p, fallback, 0); err != nil {
			_ = r.act(p, ActionFold, 0)
		}
	}
}

// botDecision picks an action from a simple hand-strength heuristic with
// a little randomness mixed in.
func (r *Room) botDecision(p *Player) (string, int) {
	strength := botHandStrength(p.hand, r.community)
	toCall := r.currentBet - p.streetBet
	roll := r.rng.Intn(100)

	kind := ActionCheck
	amount := 0

	switch {
	case strength < 0.3:
		switch {
		case toCall <= 0:
			kind = ActionCheck
		case toCall > p.Chips*3/10 || roll < 25:
			kind = ActionFold
		default:
			kind = ActionCall
		}
	case strength < 0.6:
		switch {
		case toCall <= 0:
			kind = ActionCheck
		case toCall <= p.Chips/2:
			kind = ActionCall
		default:
			kind = ActionFold
		}
	default:
		switch {
		case roll < 15:
			kind = ActionAllIn
		case toCall <= 0:
			kind, amount = ActionRaise, r.minRaiseTo()
		case toCall < p.Chips*7/10:
			kind, amount = ActionRaise, p.streetBet+toCall+p.Chips*3/10
		default:
			kind = ActionAllIn
		}
	}

	if kind == ActionRaise {
		if max := p.streetBet + p.Chips; amount > max {
			amount = max
		}
		if amount < r.minRaiseTo() {
			if toCall > 0 {
				kind, amount = ActionCall, 0
			} else {
				kind, amount = ActionCheck, 0
			}
		}
	}

	return kind, amount
}

// botHandStrength scores the hole cards plus community cards on a scale
// from 0 to 1.
func botHandStrength(hole, community deck.Hand) float64 {
	if len(hole) < 2 {
		return 0
	}

	cards := append(hole.Clone(), community...)

	rankCounts := make(map[int]int)
	suitCounts := make(map[deck.Suit]int)
	for _, c := range cards {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
	}

	pairs := 0
	for _, n := range rankCounts {
		if n >= 2 {
			pairs++
		}
	}

	strength := 0.1
	switch {
	case pairs == 1:
		strength += 0.3
	case pairs > 1:
		strength += 0.4
	}

	for _, n := range suitCounts {
		if n >= 5 || (n >= 4 && len(community) >= 3) {
			strength += 0.5
			break
		}
	}

	for _, c := range cards {
		if c.Rank >= deck.Jack {
			strength += 0.05
		}
	}

	if len(community) >= 3 {
		strength += 0.1
	}

	if strength > 1 {
		strength = 1
	}

	return strength
}
