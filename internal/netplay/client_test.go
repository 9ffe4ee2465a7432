package netplay

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/local-optimum/kart-world/internal/kart"
)

var upgrader = websocket.Upgrader{}

// relayHub fans every received message out to all connected clients,
// including the sender, the way the real relay room does.
type relayHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func (h *relayHub) broadcast(kind int, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(kind, data); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

func broadcastRelay(t *testing.T) *httptest.Server {
	t.Helper()
	hub := &relayHub{conns: make(map[*websocket.Conn]struct{})}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.mu.Lock()
		hub.conns[conn] = struct{}{}
		hub.mu.Unlock()

		for {
			kind, data, err := conn.ReadMessage()
			if err != nil {
				hub.mu.Lock()
				delete(hub.conns, conn)
				hub.mu.Unlock()
				conn.Close()
				return
			}
			hub.broadcast(kind, data)
		}
	}))
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func waitFor(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func TestClientDropsOwnEchoes(t *testing.T) {
	server := broadcastRelay(t)
	defer server.Close()

	c, err := Dial(wsURL(server))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	c.Publish(kart.Snapshot{ID: 1})

	// The relay echoes our own message back; it must never show up as a
	// remote kart. Nothing to wait on, so give the echo a moment.
	time.Sleep(200 * time.Millisecond)
	if remotes := c.Remotes(); len(remotes) != 0 {
		t.Errorf("own echo registered as %d remote kart(s)", len(remotes))
	}
}

func TestClientCollectsRemoteSnapshots(t *testing.T) {
	server := broadcastRelay(t)
	defer server.Close()

	a, err := Dial(wsURL(server))
	if err != nil {
		t.Fatalf("dial a: %v", err)
	}
	defer a.Close()

	// A second raw connection plays the remote peer.
	peer, _, err := websocket.DefaultDialer.Dial(wsURL(server), nil)
	if err != nil {
		t.Fatalf("dial peer: %v", err)
	}
	defer peer.Close()

	snap := kart.Snapshot{ID: 2, Position: kart.Vec3{X: 3, Y: 0.8, Z: -1}}
	data, err := json.Marshal(Message{Session: "peer-session", Snapshot: snap})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := peer.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatalf("write: %v", err)
	}

	ok := waitFor(t, func() bool {
		got, found := a.Remotes()["peer-session"]
		return found && got.ID == 2 && got.Position.X == 3
	})
	if !ok {
		t.Fatalf("remote snapshot never arrived, remotes: %+v", a.Remotes())
	}
}

func TestPublishRateLimit(t *testing.T) {
	server := broadcastRelay(t)
	defer server.Close()

	c, err := Dial(wsURL(server))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	// A burst well inside one send interval must not back up anywhere;
	// most frames are simply dropped.
	for i := 0; i < 1000; i++ {
		c.Publish(kart.Snapshot{ID: i})
	}
	if backlog := len(c.sendCh); backlog > 1 {
		t.Errorf("rate limiter let %d frames through in one interval", backlog)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	server := broadcastRelay(t)
	defer server.Close()

	a, err := Dial(wsURL(server))
	if err != nil {
		t.Fatalf("dial a: %v", err)
	}
	defer a.Close()

	b, err := Dial(wsURL(server))
	if err != nil {
		t.Fatalf("dial b: %v", err)
	}
	defer b.Close()

	if a.Session() == "" || a.Session() == b.Session() {
		t.Errorf("sessions must be distinct and non-empty: %q, %q", a.Session(), b.Session())
	}
}
