package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/estevam5s/docgen/internal/markdown"
	"github.com/estevam5s/docgen/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// previewMessage is the websocket frame for the live preview channel
type previewMessage struct {
	Type    string                  `json:"type"`
	Preview *models.PreviewResponse `json:"preview,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

// previewHub tracks preview subscribers per session so mutations can
// push a fresh render to every open editor of that session
type previewHub struct {
	mu    sync.RWMutex
	conns map[string]map[*wsConn]struct{}
}

// wsConn serializes writes to one websocket connection
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) send(msg previewMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal preview message", "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func newPreviewHub() *previewHub {
	return &previewHub{
		conns: make(map[string]map[*wsConn]struct{}),
	}
}

func (h *previewHub) register(sessionID string, c *wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[sessionID] == nil {
		h.conns[sessionID] = make(map[*wsConn]struct{})
	}
	h.conns[sessionID][c] = struct{}{}
}

func (h *previewHub) unregister(sessionID string, c *wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.conns[sessionID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.conns, sessionID)
		}
	}
}

// broadcast pushes a preview to every subscriber of the session
func (h *previewHub) broadcast(sessionID string, preview models.PreviewResponse) {
	h.mu.RLock()
	subscribers := make([]*wsConn, 0, len(h.conns[sessionID]))
	for c := range h.conns[sessionID] {
		subscribers = append(subscribers, c)
	}
	h.mu.RUnlock()

	for _, c := range subscribers {
		if err := c.send(previewMessage{Type: "preview", Preview: &preview}); err != nil {
			slog.Debug("failed to push preview", "error", err, "session_id", sessionID)
		}
	}
}

// handlePreviewWS upgrades to a websocket that receives a preview on
// connect, after every project mutation, and on demand via refresh
// messages
func (s *Server) handlePreviewWS(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade to websocket", "error", err)
		return
	}
	defer conn.Close()

	c := &wsConn{conn: conn}
	s.previews.register(sess.ID, c)
	defer s.previews.unregister(sess.ID, c)

	slog.Info("preview websocket connected", "session_id", sess.ID)

	s.sendPreview(c, sess.ID)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket read error", "error", err)
			}
			break
		}

		var msg previewMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			slog.Debug("invalid message format", "error", err)
			continue
		}

		if msg.Type == "refresh" {
			s.sendPreview(c, sess.ID)
		}
	}

	slog.Info("preview websocket disconnected", "session_id", sess.ID)
}

// sendPreview renders the session's current project and writes it to
// one connection. The session is re-read so mutations from other
// requests are visible; the request context is not used because the
// connection outlives the HTTP timeout window.
func (s *Server) sendPreview(c *wsConn, sessionID string) {
	sess, err := s.store.Get(context.Background(), sessionID)
	if err != nil || sess.Project == nil {
		c.send(previewMessage{Type: "error", Error: "no active project in this session"})
		return
	}

	md := markdown.Generate(sess.Project)
	c.send(previewMessage{
		Type: "preview",
		Preview: &models.PreviewResponse{
			Markdown: md,
			HTML:     markdown.ToHTML(md),
		},
	})
}
