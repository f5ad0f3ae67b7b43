package room

import (
	"fmt"

	"github.com/gorilla/websocket"
)

// Client is a player's websocket subscription to a table
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Close is a channel for closing the client with a reason
	Close chan string

	// PlayerID is the seat the client is watching the table as
	PlayerID int

	// TableID is the table the client is subscribed to
	TableID string

	send chan interface{}
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, tableID string, playerID int) *Client {
	return &Client{
		Conn:     conn,
		Close:    make(chan string),
		PlayerID: playerID,
		TableID:  tableID,
		send:     make(chan interface{}, 256),
	}
}

// Send sends a message to the web client.
// Returns false if the client's buffer is full and the message was dropped.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of pending messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and table
func (c *Client) String() string {
	return fmt.Sprintf("%d:%s", c.PlayerID, c.TableID)
}
