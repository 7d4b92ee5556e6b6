package room

import "sort"

// settlement reasons
const (
	settlementReasonHandEnd = "hand-end"
	settlementReasonPaused  = "paused"
	settlementReasonManual  = "manual"
)

// SettlementResult is one player's line in a settlement report.
type SettlementResult struct {
	Nickname  string `json:"nickname"`
	NetChange int    `json:"netChange"`
	Chips     int    `json:"chips"`
}

// SettlementReport summarizes every player's net position plus the
// action log of the most recent hand.
type SettlementReport struct {
	Reason  string              `json:"reason"`
	Results []*SettlementResult `json:"results"`
	Log     []*HandAction       `json:"log"`
}

// RequestSettlement produces a settlement report. If a hand is in
// progress the game pauses first, freezing all timers.
func (r *Room) RequestSettlement(playerID string) error {
	return r.runErr(func() error {
		if _, ok := r.players[playerID]; !ok {
			return ErrRoomNotFound
		}

		if r.state.isBettingStreet() && !r.paused {
			r.paused = true
			r.broadcast()
			r.reportSettlement(settlementReasonPaused)
			return nil
		}

		r.reportSettlement(settlementReasonManual)
		return nil
	})
}

// Resume unpauses the game and reschedules whatever timer was frozen.
func (r *Room) Resume(playerID string) error {
	return r.runErr(func() error {
		if _, ok := r.players[playerID]; !ok {
			return ErrRoomNotFound
		}
		if !r.paused {
			return nil
		}

		r.paused = false
		r.broadcast()

		switch r.pending {
		case pendingRunout:
			r.scheduleRunout()
		case pendingNextHand:
			r.scheduleNextHand()
		default:
			r.maybeScheduleBot()
		}
		return nil
	})
}

// SettleNow forces an immediate resolution: any hand in progress runs
// out to a full showdown and the final report is sent. A new hand is
// not started automatically afterwards.
func (r *Room) SettleNow(playerID string) error {
	return r.runErr(func() error {
		if _, ok := r.players[playerID]; !ok {
			return ErrRoomNotFound
		}

		if r.state.isBettingStreet() {
			r.paused = false
			r.noAutoStart = true
			r.runOutBoard()
			return nil
		}

		r.reportSettlement(settlementReasonManual)
		return nil
	})
}

// reportSettlement broadcasts the report, biggest winners first.
func (r *Room) reportSettlement(reason string) {
	results := make([]*SettlementResult, 0, len(r.players))
	for _, p := range r.players {
		if p.left {
			continue
		}
		results = append(results, &SettlementResult{
			Nickname:  p.Name,
			NetChange: p.Chips - p.startChips,
			Chips:     p.Chips,
		})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].NetChange != results[j].NetChange {
			return results[i].NetChange > results[j].NetChange
		}
		return results[i].Nickname < results[j].Nickname
	})

	log := make([]*HandAction, len(r.actionLog))
	copy(log, r.actionLog)

	r.send(&Response{Key: "settlement", Data: &SettlementReport{
		Reason:  reason,
		Results: results,
		Log:     log,
	}})
}
