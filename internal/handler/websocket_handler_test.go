package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fingold/fingold-backend/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAllowedOrigins = []string{"http://localhost:3000", "https://fingold.app"}

func TestWebSocketHandler_HandleWS_InvalidTopics(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	h := NewWebSocketHandler(hub, testAllowedOrigins)

	req := httptest.NewRequest(http.MethodGet, "/ws?topics=expense,loan", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWS(c)

	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestWebSocketHandler_HandleWS_NoUpgrade(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	h := NewWebSocketHandler(hub, testAllowedOrigins)

	// Plain GET without upgrade headers
	req := httptest.NewRequest(http.MethodGet, "/ws?topics=goal", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWS(c)

	// gorilla/websocket returns an error when upgrade fails (no upgrade headers)
	assert.Error(t, err)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestWebSocketHandler_CheckOrigin(t *testing.T) {
	hub := websocket.NewHub()
	h := NewWebSocketHandler(hub, testAllowedOrigins)

	tests := []struct {
		name     string
		origin   string
		expected bool
	}{
		{"allowed origin", "http://localhost:3000", true},
		{"allowed origin https", "https://fingold.app", true},
		{"disallowed origin", "https://evil.com", false},
		{"empty origin (same-origin)", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			result := h.checkOrigin(req)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWebSocketHandler_DeliversSubscribedEvents(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	defer hub.CloseAll()
	h := NewWebSocketHandler(hub, testAllowedOrigins)
	e.GET("/ws", h.HandleWS)

	server := httptest.NewServer(e)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?topics=goal"
	conn, _, err := ws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(websocket.ExpenseCreated(map[string]string{"id": "skipped"}))
	hub.Publish(websocket.GoalDeleted(map[string]string{"id": "g1"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event struct {
		Type    string            `json:"type"`
		Entity  string            `json:"entity"`
		Payload map[string]string `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&event))

	assert.Equal(t, "goal.deleted", event.Type)
	assert.Equal(t, "goal", event.Entity)
	assert.Equal(t, "g1", event.Payload["id"])
}
