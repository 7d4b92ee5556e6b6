package room

import "time"

// HandAction is a single entry in the hand's action log.
type HandAction struct {
	Nickname string    `json:"nickname"`
	Action   string    `json:"action"`
	Amount   int       `json:"amount"`
	Time     time.Time `json:"time"`
}

func (r *Room) logAction(p *Player, action string, amount int) {
	r.actionLog = append(r.actionLog, &HandAction{
		Nickname: p.Name,
		Action:   action,
		Amount:   amount,
		Time:     r.clock.Now(),
	})
}
