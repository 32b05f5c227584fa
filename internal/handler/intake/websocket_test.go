package intake

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	intakeservice "github.com/oakfieldhealth/reception/backend/internal/service/intake"
)

func dialWebSocket(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()

	svc := intakeservice.NewService(intakeservice.NewStore(), stubSink{})
	h := NewWebSocketHandler(svc)

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	srv := httptest.NewServer(r)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial websocket: %v", err)
	}

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func TestWebSocketConversation(t *testing.T) {
	conn, cleanup := dialWebSocket(t)
	defer cleanup()

	if err := conn.WriteJSON(inboundFrame{Type: "message", Message: "I have severe chest pain"}); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	var out outgoingFrame
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if out.Type != "reply" {
		t.Fatalf("expected reply frame, got %q", out.Type)
	}
	if out.SessionID == "" {
		t.Fatal("expected a session id on the reply")
	}
	if !strings.Contains(out.Reply, "full name") {
		t.Fatalf("expected name prompt, got %q", out.Reply)
	}

	// Frames without a session id stay on the connection-scoped session.
	if err := conn.WriteJSON(inboundFrame{Type: "message", Message: "John Doe"}); err != nil {
		t.Fatalf("write frame: %v", err)
	}
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if !strings.Contains(out.Reply, "age") {
		t.Fatalf("expected age prompt, got %q", out.Reply)
	}
}

func TestWebSocketRejectsEmptyMessage(t *testing.T) {
	conn, cleanup := dialWebSocket(t)
	defer cleanup()

	if err := conn.WriteJSON(inboundFrame{Type: "message", Message: "   "}); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	var out outgoingFrame
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if out.Type != "error" {
		t.Fatalf("expected error frame, got %q", out.Type)
	}
}

func TestWebSocketRejectsUnknownFrameType(t *testing.T) {
	conn, cleanup := dialWebSocket(t)
	defer cleanup()

	if err := conn.WriteJSON(inboundFrame{Type: "ping"}); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	var out outgoingFrame
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if out.Type != "error" {
		t.Fatalf("expected error frame, got %q", out.Type)
	}
}
