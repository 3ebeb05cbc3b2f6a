package kds

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/grubdash/models"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		hub.Unregister(conn)
	}))
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestPublishOrderReachesAllClients(t *testing.T) {
	hub, srv := startHub(t)
	a := dial(t, srv)
	b := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 2 }, 2*time.Second, 10*time.Millisecond)

	hub.PublishOrder(EventOrderCreated, models.Order{ID: "o1", DeliverTo: "A"})

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg struct {
			Event string       `json:"event"`
			Data  models.Order `json:"data"`
		}
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, EventOrderCreated, msg.Event)
		assert.Equal(t, "o1", msg.Data.ID)
	}
}

func TestUnregisterOnDisconnect(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)

	// no clients left, broadcasting is a no-op
	hub.PublishOrder(EventOrderDeleted, models.Order{ID: "o1"})
	assert.Equal(t, 0, hub.Count())
}

// upgradeOnly hands the server side of each connection to the test
// without registering it.
func upgradeOnly(t *testing.T) (<-chan *websocket.Conn, *httptest.Server) {
	t.Helper()
	conns := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- conn
	}))
	t.Cleanup(srv.Close)
	return conns, srv
}

func TestBroadcastDoesNotWaitForStalledClient(t *testing.T) {
	hub, srv := startHub(t)
	healthy := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	conns, stalledSrv := upgradeOnly(t)
	dial(t, stalledSrv)
	stalledConn := <-conns

	// No writer drains this queue, like a display that stopped reading.
	hub.mutex.Lock()
	hub.clients[stalledConn] = &client{conn: stalledConn, send: make(chan []byte)}
	hub.mutex.Unlock()

	done := make(chan struct{})
	go func() {
		hub.PublishOrder(EventOrderUpdated, models.Order{ID: "o1"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a stalled client")
	}
	assert.Equal(t, 1, hub.Count())

	healthy.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	require.NoError(t, healthy.ReadJSON(&msg))
	assert.Equal(t, EventOrderUpdated, msg.Event)
}
