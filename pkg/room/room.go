package room

import (
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdempoker-server/internal/rng"
	"holdempoker-server/internal/util"
	"holdempoker-server/pkg/deck"
)

const execBufferSize = 256

// pendingTimer identifies which scheduled callback, if any, the room is
// waiting on. It is how a paused room knows what to reschedule on resume.
type pendingTimer int

const (
	pendingNone pendingTimer = iota
	pendingBot
	pendingRunout
	pendingNextHand
)

// Room is a single poker table. All mutable state is owned by the run
// loop goroutine; exported methods marshal into it and block for the
// result.
type Room struct {
	code     string
	hostID   string
	logger   logrus.FieldLogger
	clock    quartz.Clock
	rng      rng.Generator
	deckRNG  rng.Generator
	opts     Options
	registry *Registry

	players map[string]*Player
	seats   []*Player

	state       GameState
	paused      bool
	deck        *deck.Deck
	community   deck.Hand
	pot         int
	currentBet  int
	dealerSeat  int
	currentSeat int

	// generation counters. handNum changes whenever a hand starts or
	// ends, turnSeq whenever the acting seat changes. Timer callbacks
	// capture both and no-op if either has moved on.
	handNum int
	turnSeq int

	pending     pendingTimer
	noAutoStart bool

	actionLog []*HandAction
	emoteLast map[string]time.Time

	clients map[*Client]bool

	exec chan func()
	done chan struct{}
}

// NewRoom creates a room with no players. Call Start before using any
// exported method.
func NewRoom(code string, opts Options, clock quartz.Clock) *Room {
	return &Room{
		code:       code,
		logger:     logrus.WithField("roomCode", code),
		clock:      clock,
		rng:        rng.Crypto{},
		opts:       opts,
		players:    make(map[string]*Player),
		seats:      make([]*Player, opts.MaxSeats),
		state:      GameStateWaiting,
		dealerSeat: -1,
		emoteLast:  make(map[string]time.Time),
		clients:    make(map[*Client]bool),
		exec:       make(chan func(), execBufferSize),
		done:       make(chan struct{}),
	}
}

// Start spins up the run loop.
func (r *Room) Start() {
	go r.runLoop()
}

func (r *Room) runLoop() {
	r.logger.Debug("starting room run loop")
	for {
		select {
		case fn := <-r.exec:
			fn()
		case <-r.done:
			r.logger.Debug("terminating room run loop")
			return
		}
	}
}

// post enqueues fn onto the run loop without waiting for it. Used by
// timer callbacks. Dropped if the room has been torn down.
func (r *Room) post(fn func()) {
	select {
	case r.exec <- fn:
	case <-r.done:
	}
}

// run executes fn on the run loop and waits for it to finish.
func (r *Room) run(fn func()) {
	fin := make(chan struct{})
	select {
	case r.exec <- func() {
		fn()
		close(fin)
	}:
	case <-r.done:
		return
	}

	select {
	case <-fin:
	case <-r.done:
	}
}

func (r *Room) runErr(fn func() error) error {
	err := ErrRoomNotFound
	r.run(func() {
		err = fn()
	})
	return err
}

// Code returns the room's join code.
func (r *Room) Code() string {
	return r.code
}

// SetRNG overrides the source used for bot timing and decisions.
// Only use this method for testing purposes.
func (r *Room) SetRNG(g rng.Generator) {
	r.rng = g
}

// SetDeckRNG overrides the shuffle source for subsequent hands.
// Only use this method for testing purposes.
func (r *Room) SetDeckRNG(g rng.Generator) {
	r.deckRNG = g
}

// HasPlayer returns true if the given player ID is known to the room.
func (r *Room) HasPlayer(id string) bool {
	found := false
	r.run(func() {
		_, found = r.players[id]
	})
	return found
}

// Join seats a new player. The first player to join becomes the host.
// If startingChips is not positive the room default is used. A player
// who joins mid-hand sits out until the next deal.
func (r *Room) Join(name string, startingChips int) (*Player, error) {
	var player *Player
	err := r.runErr(func() error {
		seat := -1
		for i, p := range r.seats {
			if p == nil {
				seat = i
				break
			}
		}
		if seat < 0 {
			return ErrRoomFull
		}

		chips := startingChips
		if chips <= 0 {
			chips = r.opts.StartingChips
		}

		player = &Player{
			ID:    uuid.NewString(),
			Name:  name,
			Seat:  seat,
			Chips: chips,
		}
		player.startChips = player.Chips

		r.players[player.ID] = player
		r.seats[seat] = player
		if r.hostID == "" {
			r.hostID = player.ID
		}

		r.logger.WithFields(logrus.Fields{
			"player": player.Name,
			"seat":   seat,
		}).Debug("player joined")

		r.broadcast()
		return nil
	})

	return player, err
}

// AddBot seats a computer player. Only the host may add bots, and only
// between hands.
func (r *Room) AddBot(callerID string) (*Player, error) {
	var player *Player
	err := r.runErr(func() error {
		if callerID != r.hostID {
			return ErrNotHost
		}
		if r.state != GameStateWaiting && r.state != GameStateEnded {
			return ErrGameInProgress
		}

		seat := -1
		for i, p := range r.seats {
			if p == nil {
				seat = i
				break
			}
		}
		if seat < 0 {
			return ErrRoomFull
		}

		player = &Player{
			ID:    uuid.NewString(),
			Name:  util.RandomBotName(),
			Seat:  seat,
			Chips: r.opts.StartingChips,
			IsBot: true,
		}
		player.startChips = player.Chips

		r.players[player.ID] = player
		r.seats[seat] = player

		r.logger.WithField("bot", player.Name).Debug("bot added")
		r.broadcast()
		return nil
	})

	return player, err
}

// StartGame begins the first hand. Host only.
func (r *Room) StartGame(callerID string) error {
	return r.runErr(func() error {
		if callerID != r.hostID {
			return ErrNotHost
		}
		if r.state != GameStateWaiting && r.state != GameStateEnded {
			return ErrGameInProgress
		}
		if r.fundedCount() < 2 {
			return ErrInsufficientPlayers
		}

		r.startHand()
		return nil
	})
}

// Leave removes a player. If a hand is running their cards are folded
// but their committed chips stay in the pot.
func (r *Room) Leave(playerID string) {
	r.run(func() {
		p, ok := r.players[playerID]
		if !ok {
			return
		}

		r.logger.WithField("player", p.Name).Debug("player left")

		wasHost := playerID == r.hostID
		if r.state.isBettingStreet() && (p.inHand() || p.handBet > 0) {
			// chips already committed stay in the pot accounting until
			// the hand settles
			if p.inHand() {
				p.folded = true
				p.lastAction = "fold"
			}
			p.left = true
		} else {
			delete(r.players, playerID)
		}
		r.seats[p.Seat] = nil

		if wasHost {
			r.hostID = ""
			for _, next := range r.seats {
				if next != nil {
					r.hostID = next.ID
					break
				}
			}
		}

		if r.seatedCount() == 0 {
			r.teardown()
			return
		}

		if r.state.isBettingStreet() {
			r.advance()
			return
		}

		r.broadcast()
	})
}

// AddClient attaches a websocket client to the room's broadcast set and
// sends it an initial state snapshot.
func (r *Room) AddClient(c *Client) {
	r.run(func() {
		r.clients[c] = true
		c.Send(&Response{Key: "gameState", Data: r.snapshotFor(c.PlayerID())})
	})
}

// RemoveClient detaches a websocket client.
func (r *Room) RemoveClient(c *Client) {
	r.run(func() {
		delete(r.clients, c)
	})
}

// Emote relays an emoji to all clients, rate limited per player.
func (r *Room) Emote(playerID, emoji string) error {
	return r.runErr(func() error {
		p, ok := r.players[playerID]
		if !ok {
			return ErrRoomNotFound
		}

		now := r.clock.Now()
		if last, ok := r.emoteLast[playerID]; ok && now.Sub(last) < r.opts.EmoteCooldown {
			return ErrIllegalAction
		}
		r.emoteLast[playerID] = now

		r.send(&Response{Key: "emote", Data: map[string]interface{}{
			"nickname": p.Name,
			"emoji":    emoji,
		}})
		return nil
	})
}

// ReceivedMessage dispatches a client message. Called from the client's
// read loop goroutine.
func (r *Room) ReceivedMessage(c *Client, msg *PayloadIn) {
	var err error
	switch msg.Action {
	case "playerAction":
		kind, _ := msg.AdditionalData.GetString("kind")
		amount, _ := msg.AdditionalData.GetInt("amount")
		err = r.PlayerAction(c.PlayerID(), kind, amount)
	case "startGame":
		err = r.StartGame(c.PlayerID())
	case "addBot":
		_, err = r.AddBot(c.PlayerID())
	case "requestSettlement":
		err = r.RequestSettlement(c.PlayerID())
	case "resumeGame":
		err = r.Resume(c.PlayerID())
	case "settleNow":
		err = r.SettleNow(c.PlayerID())
	case "emote":
		emoji, _ := msg.AdditionalData.GetString("emoji")
		err = r.Emote(c.PlayerID(), emoji)
	case "leaveRoom":
		r.Leave(c.PlayerID())
	default:
		r.logger.WithField("action", msg.Action).Warn("unknown action")
		err = ErrIllegalAction
	}

	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
}

// Snapshot returns the room state as seen by the given viewer.
func (r *Room) Snapshot(viewerID string) *State {
	var s *State
	r.run(func() {
		s = r.snapshotFor(viewerID)
	})
	return s
}

// broadcast sends each connected client its own redacted snapshot.
func (r *Room) broadcast() {
	for c := range r.clients {
		c.Send(&Response{Key: "gameState", Data: r.snapshotFor(c.PlayerID())})
	}
}

// send delivers the same message to every connected client.
func (r *Room) send(msg *Response) {
	for c := range r.clients {
		c.Send(msg)
	}
}

// teardown closes the room and removes it from the registry.
func (r *Room) teardown() {
	r.logger.Debug("tearing down room")

	for c := range r.clients {
		c.SendCloseReason("game over")
	}
	r.clients = make(map[*Client]bool)

	if r.registry != nil {
		r.registry.remove(r.code)
	}

	close(r.done)
}

func (r *Room) seatedCount() int {
	n := 0
	for _, p := range r.seats {
		if p != nil {
			n++
		}
	}
	return n
}

func (r *Room) fundedCount() int {
	n := 0
	for _, p := range r.seats {
		if p != nil && p.Chips > 0 {
			n++
		}
	}
	return n
}

// playersInHand returns the non-folded players who were dealt cards.
func (r *Room) playersInHand() []*Player {
	var active []*Player
	for _, p := range r.seats {
		if p != nil && p.inHand() {
			active = append(active, p)
		}
	}
	return active
}

// countCanAct returns the number of players who could still wager chips.
func (r *Room) countCanAct() int {
	n := 0
	for _, p := range r.seats {
		if p != nil && p.canAct() {
			n++
		}
	}
	return n
}

// needsToAct returns true if the player still owes a decision this street.
func (r *Room) needsToAct(p *Player) bool {
	return p.canAct() && (!p.acted || p.streetBet < r.currentBet)
}

func (r *Room) anyNeedsToAct() bool {
	for _, p := range r.seats {
		if p != nil && r.needsToAct(p) {
			return true
		}
	}
	return false
}

// nextActorAfter returns the first seat clockwise of seat whose player
// still needs to act, or -1.
func (r *Room) nextActorAfter(seat int) int {
	n := len(r.seats)
	for i := 1; i <= n; i++ {
		s := (seat + i) % n
		if p := r.seats[s]; p != nil && r.needsToAct(p) {
			return s
		}
	}
	return -1
}

// nextFundedSeat returns the first seat clockwise of seat holding a
// player with chips, or -1.
func (r *Room) nextFundedSeat(seat int) int {
	n := len(r.seats)
	for i := 1; i <= n; i++ {
		s := (seat + i) % n
		if p := r.seats[s]; p != nil && p.Chips > 0 {
			return s
		}
	}
	return -1
}
