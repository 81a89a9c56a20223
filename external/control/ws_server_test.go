package control

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/foxseedlab/mazerun/external/backend/soft"
	internalcontrol "github.com/foxseedlab/mazerun/internal/control"
	"github.com/foxseedlab/mazerun/internal/mixer"
)

func dialTestServer(t *testing.T) (*websocket.Conn, *soft.Backend) {
	t.Helper()
	backend := soft.New(soft.DefaultLayout())
	server := NewServer("127.0.0.1:0", backend)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn, backend
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var frame map[string]any
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("failed to read frame: %v", err)
	}
	return frame
}

func TestListTracksOverWebsocket(t *testing.T) {
	conn, _ := dialTestServer(t)

	req := internalcontrol.Request{Op: internalcontrol.OpListTracks}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("failed to write request: %v", err)
	}

	frame := readFrame(t, conn)
	if frame["type"] != "reply" || frame["ok"] != true {
		t.Fatalf("unexpected frame: %v", frame)
	}
	tracks, ok := frame["tracks"].([]any)
	if !ok || len(tracks) != 4 {
		t.Fatalf("expected 4 tracks, got %v", frame["tracks"])
	}
}

func TestSetVolumePushesEventToSubscriber(t *testing.T) {
	conn, _ := dialTestServer(t)

	req := internalcontrol.Request{Op: internalcontrol.OpSetVolume, Track: "Line-in", Volumes: []int{80, 90}}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("failed to write request: %v", err)
	}

	var gotReply, gotEvent bool
	for i := 0; i < 2; i++ {
		frame := readFrame(t, conn)
		switch frame["type"] {
		case "reply":
			gotReply = true
			if frame["ok"] != true {
				t.Fatalf("set_volume rejected: %v", frame)
			}
		case "event":
			gotEvent = true
			if frame["kind"] != internalcontrol.KindVolumeChanged || frame["track"] != "Line-in" {
				t.Fatalf("unexpected event frame: %v", frame)
			}
			volumes, ok := frame["volumes"].([]any)
			if !ok || len(volumes) != 2 || volumes[0].(float64) != 80 || volumes[1].(float64) != 90 {
				t.Fatalf("unexpected event volumes: %v", frame["volumes"])
			}
		default:
			t.Fatalf("unexpected frame type: %v", frame)
		}
	}
	if !gotReply || !gotEvent {
		t.Fatalf("expected one reply and one event, got reply=%v event=%v", gotReply, gotEvent)
	}
}

func TestBackendInitiatedChangeReachesClient(t *testing.T) {
	conn, backend := dialTestServer(t)

	// A change not requested over this connection, as if a hardware knob
	// turned, must still reach the subscriber.
	var mic *mixer.Track
	for _, track := range backend.ListTracks() {
		if track.Label == "Mic" {
			mic = track
		}
	}
	if mic == nil {
		t.Fatal("default layout must contain a Mic track")
	}
	backend.SetMute(mic, true)

	frame := readFrame(t, conn)
	if frame["type"] != "event" || frame["kind"] != internalcontrol.KindMuteToggled {
		t.Fatalf("unexpected frame: %v", frame)
	}
	if frame["track"] != "Mic" || frame["enabled"] != true {
		t.Fatalf("unexpected event payload: %v", frame)
	}
}

func TestMalformedRequestGetsErrorReply(t *testing.T) {
	conn, _ := dialTestServer(t)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("failed to write message: %v", err)
	}

	frame := readFrame(t, conn)
	if frame["type"] != "reply" {
		t.Fatalf("unexpected frame: %v", frame)
	}
	if frame["error"] == "" || frame["error"] == nil {
		t.Fatalf("expected error reply, got %v", frame)
	}
}
