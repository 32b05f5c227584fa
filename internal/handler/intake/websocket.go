package intake

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	intakeservice "github.com/oakfieldhealth/reception/backend/internal/service/intake"
)

// WebSocketHandler drives the intake flow over a websocket, one turn per
// inbound frame. Frames without a session id share a connection-scoped one.
type WebSocketHandler struct {
	svc      *intakeservice.Service
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates the websocket transport.
func NewWebSocketHandler(svc *intakeservice.Service) *WebSocketHandler {
	return &WebSocketHandler{
		svc: svc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ws", h.handleWebSocket)
}

type inboundFrame struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message,omitempty"`
}

type outgoingFrame struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId,omitempty"`
	Reply     string `json:"reply,omitempty"`
	Completed bool   `json:"completed,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	connSessionID := uuid.NewString()
	log.Printf("[ws] connection opened, default session=%s", connSessionID)

	for {
		var in inboundFrame
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[ws] read error: %v", err)
			}
			return
		}

		if in.Type != "message" {
			h.writeError(conn, "unsupported frame type")
			continue
		}
		if strings.TrimSpace(in.Message) == "" {
			h.writeError(conn, "message is required")
			continue
		}

		sessionID := in.SessionID
		if sessionID == "" {
			sessionID = connSessionID
		}

		res := h.svc.Process(r.Context(), sessionID, in.Message)
		out := outgoingFrame{
			Type:      "reply",
			SessionID: res.SessionID,
			Reply:     res.Reply,
			Completed: res.Completed,
			Timestamp: time.Now().UnixMilli(),
		}
		if err := conn.WriteJSON(out); err != nil {
			log.Printf("[ws] write error: %v", err)
			return
		}
	}
}

func (h *WebSocketHandler) writeError(conn *websocket.Conn, message string) {
	out := outgoingFrame{
		Type:      "error",
		Error:     message,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := conn.WriteJSON(out); err != nil {
		log.Printf("[ws] write error: %v", err)
	}
}
