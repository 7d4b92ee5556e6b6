package room

import (
	"github.com/sirupsen/logrus"

	"holdempoker-server/pkg/deck"
	"holdempoker-server/pkg/poker"
	"holdempoker-server/pkg/potmanager"
)

// startHand shuffles a fresh deck, rotates the dealer button, posts the
// blinds and deals two hole cards to every player with chips.
func (r *Room) startHand() {
	r.deck = deck.New()
	if r.deckRNG != nil {
		r.deck.SetRNG(r.deckRNG)
	}
	r.deck.Shuffle()

	r.community = nil
	r.pot = 0
	r.currentBet = 0
	r.actionLog = r.actionLog[:0]
	r.noAutoStart = false
	r.pending = pendingNone
	r.handNum++

	for _, p := range r.players {
		p.resetForHand()
	}

	r.dealerSeat = r.nextFundedSeat(r.dealerSeat)

	// players in seat order starting at the dealer, zero stacks sit out
	var order []*Player
	n := len(r.seats)
	for i := 0; i < n; i++ {
		if p := r.seats[(r.dealerSeat+i)%n]; p != nil && p.Chips > 0 {
			order = append(order, p)
		}
	}

	if len(order) < 2 {
		r.state = GameStateWaiting
		r.broadcast()
		return
	}

	// one card per pass, starting left of the dealer
	for pass := 0; pass < 2; pass++ {
		for i := range order {
			p := order[(i+1)%len(order)]
			card, err := r.deck.Draw()
			if err != nil {
				panic(err)
			}
			p.hand.AddCard(card)
		}
	}

	var sb, bb, first *Player
	if len(order) == 2 {
		// heads up the dealer posts the small blind and acts first
		sb, bb, first = order[0], order[1], order[0]
	} else {
		sb, bb = order[1], order[2]
		first = order[3%len(order)]
	}

	r.postBlind(sb, r.opts.SmallBlind, "small blind")
	r.postBlind(bb, r.opts.BigBlind, "big blind")
	r.currentBet = bb.streetBet

	r.state = GameStatePreflop
	r.currentSeat = first.Seat
	r.turnSeq++

	r.logger.WithFields(logrus.Fields{
		"hand":   r.handNum,
		"dealer": r.dealerSeat,
	}).Debug("hand started")

	r.advance()
}

// postBlind commits a forced wager, capped at the player's stack.
func (r *Room) postBlind(p *Player, amount int, label string) {
	n := p.commit(amount)
	r.pot += n
	r.logAction(p, label, n)
}

// advance moves the hand forward after any state change: ends the hand
// on a fold-out, closes the betting round when nobody owes a decision,
// or passes the turn to the next player who does.
func (r *Room) advance() {
	if !r.state.isBettingStreet() {
		return
	}

	active := r.playersInHand()
	if len(active) == 0 {
		// everyone left mid-hand
		r.logger.Warn("hand abandoned with no eligible players")
		r.pot = 0
		r.state = GameStateWaiting
		r.turnSeq++
		r.handNum++
		r.broadcast()
		return
	}

	if len(active) == 1 {
		r.awardFoldWin(active[0])
		return
	}

	if r.currentSeat < 0 {
		// the board is running out on a timer; no turn to reassign
		r.broadcast()
		return
	}

	if !r.anyNeedsToAct() {
		r.advanceStreet()
		return
	}

	cur := r.seats[r.currentSeat]
	if cur == nil || !r.needsToAct(cur) {
		next := r.nextActorAfter(r.currentSeat)
		if next < 0 {
			r.advanceStreet()
			return
		}
		r.currentSeat = next
		r.turnSeq++
	}

	r.broadcast()
	r.maybeScheduleBot()
}

// advanceStreet closes the current betting round, deals the next set of
// community cards and opens the next round. On the river it runs the
// showdown instead.
func (r *Room) advanceStreet() {
	for _, p := range r.players {
		p.streetBet = 0
		p.acted = false
		p.lastAction = ""
	}
	r.currentBet = 0

	switch r.state {
	case GameStatePreflop:
		r.dealCommunity(3)
		r.state = GameStateFlop
	case GameStateFlop:
		r.dealCommunity(1)
		r.state = GameStateTurn
	case GameStateTurn:
		r.dealCommunity(1)
		r.state = GameStateRiver
	case GameStateRiver:
		r.showdown()
		return
	default:
		return
	}

	r.turnSeq++

	// betting is over for the hand once fewer than two players can act,
	// so the remaining streets are dealt on a timer
	next := r.nextActorAfter(r.dealerSeat)
	if r.countCanAct() < 2 || next < 0 {
		r.currentSeat = -1
		r.broadcast()
		r.scheduleRunout()
		return
	}

	r.currentSeat = next
	r.broadcast()
	r.maybeScheduleBot()
}

// dealCommunity burns one card and deals count cards face up.
func (r *Room) dealCommunity(count int) {
	if err := r.deck.Burn(); err != nil {
		panic(err)
	}

	for i := 0; i < count; i++ {
		card, err := r.deck.Draw()
		if err != nil {
			panic(err)
		}
		r.community.AddCard(card)
	}
}

// awardFoldWin gives the pot to the last unfolded player. No further
// cards are dealt and no hands are evaluated.
func (r *Room) awardFoldWin(p *Player) {
	r.logger.WithField("player", p.Name).Debug("won by fold")
	p.Chips += r.pot
	r.pot = 0
	r.endHand()
}

// showdown reveals the live hands, splits the pot into side pots by
// commitment level and pays each pot to its best eligible hand.
func (r *Room) showdown() {
	r.state = GameStateShowdown
	r.turnSeq++
	r.broadcast()

	// entries in seat order left of the dealer so remainder chips land
	// on the earliest winner
	var entries []potmanager.Entry
	n := len(r.seats)
	for i := 1; i <= n; i++ {
		p := r.seats[(r.dealerSeat+i)%n]
		if p == nil || p.handBet == 0 {
			continue
		}
		entries = append(entries, potmanager.Entry{
			ID:     p.ID,
			Amount: p.handBet,
			Folded: !p.inHand(),
		})
	}
	for _, p := range r.players {
		if p.left && p.handBet > 0 {
			entries = append(entries, potmanager.Entry{ID: p.ID, Amount: p.handBet, Folded: true})
		}
	}

	ranks := make(map[string]*poker.HandRank)
	for _, p := range r.players {
		if p.inHand() {
			cards := append(p.hand.Clone(), r.community...)
			ranks[p.ID] = poker.Evaluate(cards)
		}
	}

	for _, pot := range potmanager.Build(entries) {
		var winners []*Player
		var best *poker.HandRank
		for _, id := range pot.Eligible {
			rank := ranks[id]
			switch c := rank.Compare(best); {
			case c > 0:
				best = rank
				winners = winners[:0]
				winners = append(winners, r.players[id])
			case c == 0:
				winners = append(winners, r.players[id])
			}
		}

		shares := potmanager.Split(pot.Amount, len(winners))
		for i, w := range winners {
			w.Chips += shares[i]
			r.logger.WithFields(logrus.Fields{
				"player": w.Name,
				"amount": shares[i],
				"hand":   best.Hand.String(),
			}).Debug("won pot")
		}
	}
	r.pot = 0

	r.endHand()
}

// endHand reports the settlement and either tears the room down on a
// bust-out or schedules the next hand.
func (r *Room) endHand() {
	r.state = GameStateEnded
	r.turnSeq++
	r.handNum++
	r.pending = pendingNone
	r.broadcast()
	r.reportSettlement(settlementReasonHandEnd)

	busted := false
	for _, p := range r.players {
		if !p.left && p.startChips > 0 && p.Chips == 0 {
			busted = true
			break
		}
	}

	// drop players who left mid-hand now that the pot is settled
	for id, p := range r.players {
		if p.left {
			delete(r.players, id)
		}
	}

	if busted {
		r.teardown()
		return
	}

	if r.noAutoStart {
		r.noAutoStart = false
		return
	}

	r.scheduleNextHand()
}

// runOutBoard deals all remaining community cards immediately and runs
// the showdown. Used for forced settlement.
func (r *Room) runOutBoard() {
	for r.state.isBettingStreet() {
		switch r.state {
		case GameStatePreflop:
			r.dealCommunity(3)
			r.state = GameStateFlop
		case GameStateFlop:
			r.dealCommunity(1)
			r.state = GameStateTurn
		case GameStateTurn:
			r.dealCommunity(1)
			r.state = GameStateRiver
		case GameStateRiver:
			r.showdown()
		}
	}
}

func (r *Room) scheduleRunout() {
	r.pending = pendingRunout
	handNum, turnSeq := r.handNum, r.turnSeq
	r.clock.AfterFunc(r.opts.StreetDelay, func() {
		r.post(func() {
			r.runoutStep(handNum, turnSeq)
		})
	})
}

func (r *Room) runoutStep(handNum, turnSeq int) {
	if handNum != r.handNum || turnSeq != r.turnSeq {
		return
	}
	if r.paused {
		// leave the pending marker so resume reschedules
		return
	}
	if !r.state.isBettingStreet() {
		return
	}

	r.pending = pendingNone
	r.advanceStreet()
}

func (r *Room) scheduleNextHand() {
	r.pending = pendingNextHand
	handNum := r.handNum
	r.clock.AfterFunc(r.opts.NextHandDelay, func() {
		r.post(func() {
			r.nextHandStep(handNum)
		})
	})
}

func (r *Room) nextHandStep(handNum int) {
	if handNum != r.handNum || r.state != GameStateEnded {
		return
	}
	if r.paused {
		return
	}

	r.pending = pendingNone
	if r.fundedCount() >= 2 {
		r.startHand()
		return
	}

	r.state = GameStateWaiting
	r.broadcast()
}
