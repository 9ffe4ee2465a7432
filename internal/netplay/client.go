package netplay

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/local-optimum/kart-world/internal/kart"
)

// Message is the wire envelope for kart state replication. The payload is
// the per-frame snapshot; the session id distinguishes players sharing a
// relay room.
type Message struct {
	Session  string        `json:"session"`
	Snapshot kart.Snapshot `json:"snapshot"`
}

const (
	sendInterval = 50 * time.Millisecond // 20 updates/s is plenty for ghosts
	writeTimeout = 2 * time.Second
	sendBuffer   = 8
)

// Client replicates the local kart state to a relay server and collects
// remote snapshots for ghost rendering. The simulation never blocks on it:
// Publish drops frames when the writer is behind, and Remotes returns a
// copy of whatever arrived so far.
type Client struct {
	session string
	conn    *websocket.Conn

	sendCh chan kart.Snapshot
	done   chan struct{}

	mu      sync.Mutex
	remotes map[string]kart.Snapshot

	lastSend time.Time
}

// Dial connects to the relay. The caller should treat an error as "play
// single-player", not as fatal.
func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		session: uuid.NewString(),
		conn:    conn,
		sendCh:  make(chan kart.Snapshot, sendBuffer),
		done:    make(chan struct{}),
		remotes: make(map[string]kart.Snapshot),
	}

	go c.writeLoop()
	go c.readLoop()
	return c, nil
}

// Session returns the local player's wire identity.
func (c *Client) Session() string {
	return c.session
}

// Publish hands this frame's snapshot to the writer. Rate-limited and
// non-blocking; excess frames are simply dropped, the next one supersedes
// them anyway.
func (c *Client) Publish(snapshot kart.Snapshot) {
	now := time.Now()
	if now.Sub(c.lastSend) < sendInterval {
		return
	}
	select {
	case c.sendCh <- snapshot:
		c.lastSend = now
	default:
	}
}

// Remotes returns a copy of the latest known remote kart snapshots keyed
// by session id.
func (c *Client) Remotes() map[string]kart.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]kart.Snapshot, len(c.remotes))
	for id, snap := range c.remotes {
		out[id] = snap
	}
	return out
}

// Close tears the connection down. Safe to call once.
func (c *Client) Close() {
	close(c.done)
	c.conn.Close()
}

func (c *Client) writeLoop() {
	for {
		select {
		case snapshot := <-c.sendCh:
			data, err := json.Marshal(Message{Session: c.session, Snapshot: snapshot})
			if err != nil {
				continue
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

func (c *Client) readLoop() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Session == c.session {
			continue
		}
		c.mu.Lock()
		c.remotes[msg.Session] = msg.Snapshot
		c.mu.Unlock()
	}
}
