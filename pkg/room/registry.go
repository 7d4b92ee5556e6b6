package room

import (
	"sync"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// Registry tracks all live rooms by join code.
type Registry struct {
	opts  Options
	clock quartz.Clock

	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRegistry returns an empty registry. All rooms it creates share the
// same options and clock.
func NewRegistry(opts Options, clock quartz.Clock) *Registry {
	return &Registry{
		opts:  opts,
		clock: clock,
		rooms: make(map[string]*Room),
	}
}

// CreateRoom creates a room with a unique join code and seats the host.
func (g *Registry) CreateRoom(hostName string, startingChips int) (*Room, *Player, error) {
	g.mu.Lock()
	var code string
	for {
		var err error
		code, err = newCode()
		if err != nil {
			g.mu.Unlock()
			return nil, nil, err
		}
		if _, found := g.rooms[code]; !found {
			break
		}
	}

	r := NewRoom(code, g.opts, g.clock)
	r.registry = g
	g.rooms[code] = r
	g.mu.Unlock()

	r.Start()
	host, err := r.Join(hostName, startingChips)
	if err != nil {
		g.remove(code)
		return nil, nil, err
	}

	logrus.WithField("roomCode", code).Info("room created")
	return r, host, nil
}

// Room returns the room with the given code.
func (g *Registry) Room(code string) (*Room, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r, found := g.rooms[code]
	if !found {
		return nil, ErrRoomNotFound
	}

	return r, nil
}

// Count returns the number of live rooms.
func (g *Registry) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}

func (g *Registry) remove(code string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.rooms, code)
}
