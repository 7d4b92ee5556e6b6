package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const clientSendBuffer = 64

// Client is a websocket connection bound to a player in a room.
type Client struct {
	Conn *websocket.Conn

	// Close receives a reason when the server wants the connection shut down
	Close chan string

	room     *Room
	playerID string
	send     chan interface{}
}

// NewClient returns a client for the connection.
func NewClient(conn *websocket.Conn, r *Room, playerID string) *Client {
	return &Client{
		Conn:     conn,
		Close:    make(chan string, 1),
		room:     r,
		playerID: playerID,
		send:     make(chan interface{}, clientSendBuffer),
	}
}

// PlayerID returns the ID of the player this connection belongs to.
func (c *Client) PlayerID() string {
	return c.playerID
}

// Send queues a message for the write loop. A client that cannot keep
// up is disconnected rather than allowed to block the room.
func (c *Client) Send(msg interface{}) {
	select {
	case c.send <- msg:
	default:
		logrus.WithField("client", c.String()).Warn("client send buffer full")
		c.SendCloseReason("too slow")
	}
}

// SendChan returns the channel the write loop drains.
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// SendCloseReason asks the write loop to close the connection.
func (c *Client) SendCloseReason(reason string) {
	select {
	case c.Close <- reason:
	default:
	}
}

// ReceivedMessage forwards a decoded payload to the room.
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	c.room.ReceivedMessage(c, msg)
}

func (c *Client) String() string {
	return fmt.Sprintf("client:%s:%s", c.room.Code(), c.playerID)
}
