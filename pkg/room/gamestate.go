package room

import "encoding/json"

// GameState tracks where a room is in the hand lifecycle.
type GameState int

// game states
const (
	GameStateWaiting GameState = iota
	GameStatePreflop
	GameStateFlop
	GameStateTurn
	GameStateRiver
	GameStateShowdown
	GameStateEnded
)

func (g GameState) String() string {
	switch g {
	case GameStateWaiting:
		return "waiting"
	case GameStatePreflop:
		return "preflop"
	case GameStateFlop:
		return "flop"
	case GameStateTurn:
		return "turn"
	case GameStateRiver:
		return "river"
	case GameStateShowdown:
		return "showdown"
	case GameStateEnded:
		return "ended"
	}

	panic("unknown game state")
}

// MarshalJSON encodes the state by name.
func (g GameState) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// isBettingStreet returns true if players may still wager chips.
func (g GameState) isBettingStreet() bool {
	return g >= GameStatePreflop && g <= GameStateRiver
}

// holeCardsVisible returns true once all live hands are face up.
func (g GameState) holeCardsVisible() bool {
	return g == GameStateShowdown || g == GameStateEnded
}
