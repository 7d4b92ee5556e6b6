package room

import (
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	a := assert.New(t)
	registry := NewRegistry(DefaultOptions(), quartz.NewMock(t))

	a.Equal(0, registry.Count())

	_, err := registry.Room("12345")
	a.ErrorIs(err, ErrRoomNotFound)

	rm, host, err := registry.CreateRoom("alice", 0)
	require.NoError(t, err)
	a.Equal(1, registry.Count())
	a.Regexp(`^[1-9][0-9]{4}$`, rm.Code())
	a.Equal("alice", host.Name)
	a.Equal(1000, host.Chips)

	found, err := registry.Room(rm.Code())
	require.NoError(t, err)
	a.Same(rm, found)

	// the creator is the host
	a.Equal(host.ID, rm.Snapshot(host.ID).HostID)
	a.True(rm.HasPlayer(host.ID))
	a.False(rm.HasPlayer("missing"))
}

func TestRegistry_customStartingChips(t *testing.T) {
	a := assert.New(t)
	registry := NewRegistry(DefaultOptions(), quartz.NewMock(t))

	rm, host, err := registry.CreateRoom("alice", 2500)
	require.NoError(t, err)
	a.Equal(2500, host.Chips)

	guest, err := rm.Join("bob", 0)
	require.NoError(t, err)
	a.Equal(1000, guest.Chips)
}

func TestRegistry_emptyRoomIsRemoved(t *testing.T) {
	a := assert.New(t)
	registry := NewRegistry(DefaultOptions(), quartz.NewMock(t))

	rm, host, err := registry.CreateRoom("alice", 0)
	require.NoError(t, err)
	a.Equal(1, registry.Count())

	rm.Leave(host.ID)
	a.Equal(0, registry.Count())
}
