package room

import "errors"

// errors returned to clients
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomFull            = errors.New("room is full")
	ErrNotYourTurn         = errors.New("it is not your turn")
	ErrIllegalAction       = errors.New("illegal action")
	ErrInsufficientPlayers = errors.New("at least two players with chips are required")
	ErrNotHost             = errors.New("only the host may perform that action")
	ErrGamePaused          = errors.New("the game is paused")
	ErrGameInProgress      = errors.New("a hand is already in progress")
)
