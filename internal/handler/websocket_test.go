package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/library-api/internal/model"
)

func setupWebSocketServer(t *testing.T) (*WebSocketHandler, *httptest.Server) {
	t.Helper()

	h := NewWebSocketHandler(zap.NewNop())
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return h, srv
}

func dialWebSocket(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

// waitForClients polls until the handler tracks the expected client count.
func waitForClients(t *testing.T, h *WebSocketHandler, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		h.mu.RLock()
		count := len(h.clients)
		h.mu.RUnlock()

		if count == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("client count did not reach %d", want)
}

func TestNewWebSocketHandler(t *testing.T) {
	// Act
	h := NewWebSocketHandler(zap.NewNop())

	// Assert
	if h == nil {
		t.Fatal("NewWebSocketHandler() returned nil")
	}
	if h.clients == nil {
		t.Error("clients map should be initialized")
	}
}

func TestWebSocketHandler_HandleWebSocket(t *testing.T) {
	// Arrange
	h, srv := setupWebSocketServer(t)

	// Act
	dialWebSocket(t, srv)

	// Assert
	waitForClients(t, h, 1)
}

func TestWebSocketHandler_Publish(t *testing.T) {
	// Arrange
	h, srv := setupWebSocketServer(t)
	conn := dialWebSocket(t, srv)
	waitForClients(t, h, 1)

	book := model.Book{ID: 1, Title: "A", Author: "B", Year: 2000, ISBN: "1234567890"}

	// Act
	h.Publish(model.NewCatalogEvent(model.EventBookCreated, book))

	// Assert: the event arrives on the connection
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("failed to set read deadline: %v", err)
	}

	var event model.CatalogEvent
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("failed to read event: %v", err)
	}
	if event.Type != model.EventBookCreated {
		t.Errorf("Type = %s, want %s", event.Type, model.EventBookCreated)
	}
	if event.Book.ID != 1 {
		t.Errorf("Book.ID = %d, want 1", event.Book.ID)
	}
}

func TestWebSocketHandler_Publish_NoClients(t *testing.T) {
	// Publishing without clients must not block or panic.
	h := NewWebSocketHandler(zap.NewNop())

	h.Publish(model.NewCatalogEvent(model.EventBookRemoved, model.Book{ID: 1}))
}

func TestWebSocketHandler_HandleWebSocket_UpgradeFailure(t *testing.T) {
	// Arrange: plain HTTP request without upgrade headers
	h, _ := setupWebSocketServer(t)
	req := httptest.NewRequest(http.MethodGet, "/ws/events", nil)
	rec := httptest.NewRecorder()

	// Act
	h.HandleWebSocket(rec, req)

	// Assert
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestWebSocketHandler_CloseAllConnections(t *testing.T) {
	// Arrange
	h, srv := setupWebSocketServer(t)
	conn := dialWebSocket(t, srv)
	waitForClients(t, h, 1)

	// Act
	h.CloseAllConnections()

	// Assert: no tracked clients remain and the client received a proper
	// close frame, not an abrupt drop
	waitForClients(t, h, 0)

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("failed to set read deadline: %v", err)
	}
	_, _, err := conn.ReadMessage()
	if err == nil {
		t.Fatal("expected read error after CloseAllConnections")
	}
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("read error = %v, want normal closure", err)
	}
}

func TestWebSocketHandler_CloseAllConnections_RejectsNewClients(t *testing.T) {
	// Arrange
	h, srv := setupWebSocketServer(t)
	h.CloseAllConnections()

	// Act: connect after shutdown has started
	conn := dialWebSocket(t, srv)

	// Assert: the client is refused with a close frame and never tracked
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("failed to set read deadline: %v", err)
	}
	_, _, err := conn.ReadMessage()
	if err == nil {
		t.Fatal("expected read error for client connecting during shutdown")
	}
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("read error = %v, want normal closure", err)
	}

	h.mu.RLock()
	count := len(h.clients)
	h.mu.RUnlock()
	if count != 0 {
		t.Errorf("client count = %d, want 0", count)
	}
}
