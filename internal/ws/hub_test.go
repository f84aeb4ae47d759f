package ws_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Pratikshinde2410/container-event-processing-engine/internal/engine"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/store"
	wsHub "github.com/Pratikshinde2410/container-event-processing-engine/internal/ws"
)

const testInterval = 20 * time.Millisecond

// --- helpers ----------------------------------------------------------------

func newStore(summaries ...engine.Summary) *store.Store {
	st := store.New(5 * time.Minute)
	for _, s := range summaries {
		st.Put(s)
	}
	return st
}

func sum(id, status string) engine.Summary {
	return engine.Summary{ContainerID: id, CurrentStatus: status}
}

// startHub starts a test HTTP server with the hub as its handler and the
// broadcast loop running. Returns the ws:// URL and the hub.
func startHub(t *testing.T, st *store.Store) (string, *wsHub.Hub) {
	t.Helper()

	hub := wsHub.New(st, testInterval)
	ctx, cancel := context.WithCancel(context.Background())

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeHTTP))
	go hub.Run(ctx)

	t.Cleanup(func() {
		cancel()
		srv.Close()
	})

	return "ws" + strings.TrimPrefix(srv.URL, "http"), hub
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) wsHub.Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read message: %v", err)
	}
	var msg wsHub.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal message: %v (raw: %s)", err, data)
	}
	return msg
}

// --- tests ------------------------------------------------------------------

func TestHub_InitialSnapshotOnConnect(t *testing.T) {
	url, _ := startHub(t, newStore(sum("MSCU1234567", "in_transit")))
	conn := dial(t, url)

	msg := readMessage(t, conn)
	if msg.Event != "containers" {
		t.Errorf("event: got %q, want containers", msg.Event)
	}
	if len(msg.Data.Containers) != 1 || msg.Data.Containers[0].ContainerID != "MSCU1234567" {
		t.Errorf("containers: got %+v", msg.Data.Containers)
	}
	if msg.Data.GeneratedAt == "" {
		t.Error("generated_at: missing")
	}
}

func TestHub_BroadcastReflectsStoreUpdates(t *testing.T) {
	st := newStore()
	url, _ := startHub(t, st)
	conn := dial(t, url)

	// First message: empty store.
	first := readMessage(t, conn)
	if len(first.Data.Containers) != 0 {
		t.Fatalf("initial containers: got %d, want 0", len(first.Data.Containers))
	}

	st.Put(sum("MSCU1234567", "departed"))

	// A subsequent broadcast tick must carry the new summary.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		msg := readMessage(t, conn)
		if len(msg.Data.Containers) == 1 {
			if msg.Data.Containers[0].CurrentStatus != "departed" {
				t.Errorf("current_status: got %q", msg.Data.Containers[0].CurrentStatus)
			}
			return
		}
	}
	t.Fatal("no broadcast carried the stored summary")
}

func TestHub_CountTracksClients(t *testing.T) {
	url, hub := startHub(t, newStore())

	if hub.Count() != 0 {
		t.Fatalf("Count: got %d, want 0", hub.Count())
	}

	conn := dial(t, url)
	waitFor(t, func() bool { return hub.Count() == 1 })

	conn.Close()
	waitFor(t, func() bool { return hub.Count() == 0 })
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached within deadline")
}
