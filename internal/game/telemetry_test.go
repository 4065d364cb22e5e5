package game

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func waitForObservers(t *testing.T, hub *TelemetryHub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ObserverCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("observer count stuck at %d, want %d", hub.ObserverCount(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestTelemetryHub_Broadcast(t *testing.T) {
	hub := NewTelemetryHub(nil)
	srv := httptest.NewServer(http.HandlerFunc(hub.Handle))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	waitForObservers(t, hub, 1)

	hub.Broadcast(WorldSnapshot{EpisodeID: "ep-test", Tick: 42, Outcome: "running"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	var got WorldSnapshot
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("snapshot not valid JSON: %v", err)
	}
	if got.EpisodeID != "ep-test" || got.Tick != 42 {
		t.Fatalf("snapshot round trip wrong: %+v", got)
	}
}

func TestTelemetryHub_DropsClosedObserver(t *testing.T) {
	hub := NewTelemetryHub(nil)
	srv := httptest.NewServer(http.HandlerFunc(hub.Handle))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	waitForObservers(t, hub, 1)

	conn.Close()
	waitForObservers(t, hub, 0)
}
