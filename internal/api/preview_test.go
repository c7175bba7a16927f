package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estevam5s/docgen/internal/models"
)

func dialPreview(t *testing.T, e *testEnv) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(e.server.URL, "http") + "/ws/preview"
	dialer := websocket.Dialer{Jar: e.client.Jar}

	conn, resp, err := dialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readPreviewMessage(t *testing.T, conn *websocket.Conn) previewMessage {
	t.Helper()

	var msg previewMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestPreviewWebsocketInitialRender(t *testing.T) {
	e := newTestEnv(t)
	createProject(t, e, models.CreateProjectRequest{Type: "backend", Name: "Minha API"})

	conn := dialPreview(t, e)

	msg := readPreviewMessage(t, conn)
	assert.Equal(t, "preview", msg.Type)
	require.NotNil(t, msg.Preview)
	assert.Contains(t, msg.Preview.Markdown, "# Minha API")
	assert.NotEmpty(t, msg.Preview.HTML)
}

func TestPreviewWebsocketPushOnUpdate(t *testing.T) {
	e := newTestEnv(t)
	createProject(t, e, models.CreateProjectRequest{Type: "backend", Name: "Minha API"})

	conn := dialPreview(t, e)
	readPreviewMessage(t, conn) // initial render

	resp := e.do(t, http.MethodPut, "/api/v1/project/sections/about", map[string]interface{}{
		"description": "Uma API de exemplo.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	msg := readPreviewMessage(t, conn)
	assert.Equal(t, "preview", msg.Type)
	require.NotNil(t, msg.Preview)
	assert.Contains(t, msg.Preview.Markdown, "Uma API de exemplo.")
}

func TestPreviewWebsocketRefresh(t *testing.T) {
	e := newTestEnv(t)
	createProject(t, e, models.CreateProjectRequest{Type: "backend", Name: "Minha API"})

	conn := dialPreview(t, e)
	readPreviewMessage(t, conn) // initial render

	require.NoError(t, conn.WriteJSON(previewMessage{Type: "refresh"}))

	msg := readPreviewMessage(t, conn)
	assert.Equal(t, "preview", msg.Type)
	require.NotNil(t, msg.Preview)
}

func TestPreviewWebsocketWithoutProject(t *testing.T) {
	e := newTestEnv(t)

	// Establish a session without starting a project.
	resp := e.do(t, http.MethodGet, "/api/v1/project-types", nil)
	resp.Body.Close()

	conn := dialPreview(t, e)

	msg := readPreviewMessage(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.NotEmpty(t, msg.Error)
}
