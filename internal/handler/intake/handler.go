package intake

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	intakeservice "github.com/oakfieldhealth/reception/backend/internal/service/intake"
	"github.com/oakfieldhealth/reception/backend/pkg/utils"
)

// Handler exposes the intake flow over HTTP.
type Handler struct {
	svc *intakeservice.Service
}

// New creates the intake HTTP handler.
func New(svc *intakeservice.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the intake endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/session/{sessionID}", h.handleSession)
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"sessionId"`
	Completed bool   `json:"completed,omitempty"`
}

// handleChat advances a session by one turn. A missing session id starts a
// new conversation under a generated identifier.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	sessionID := payload.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	res := h.svc.Process(r.Context(), sessionID, payload.Message)
	utils.RespondJSON(w, http.StatusOK, chatResponse{
		Reply:     res.Reply,
		SessionID: res.SessionID,
		Completed: res.Completed,
	})
}

// handleSession returns the collected state of a live session so the
// frontend can restore progress after a reload.
func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, ok := h.svc.Snapshot(r.Context(), sessionID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, sess)
}
