package handlers

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CaseEventHub stores connected register screens (connId -> *websocket.Conn)
type CaseEventHub struct {
	clients map[string]*websocket.Conn
	mutex   sync.Mutex
}

var hub = &CaseEventHub{
	clients: make(map[string]*websocket.Conn),
	mutex:   sync.Mutex{},
}

// HandleCaseEventsWebSocket streams case create/update events to connected clients
func HandleCaseEventsWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorf("WebSocket upgrade error: %v", err)
		return
	}

	connID := uuid.New().String()

	hub.mutex.Lock()
	hub.clients[connID] = conn
	hub.mutex.Unlock()
	zap.S().Debugf("client %s connected to /ws/cases", connID)

	conn.SetCloseHandler(func(code int, text string) error {
		hub.mutex.Lock()
		delete(hub.clients, connID)
		hub.mutex.Unlock()
		zap.S().Debugf("client %s disconnected from /ws/cases", connID)
		return nil
	})

	// Keep connection alive
	for {
		if _, _, err := conn.NextReader(); err != nil {
			conn.Close()
			break
		}
	}
}

// broadcastCaseEvent pushes one case event to every connected client
func broadcastCaseEvent(event string, payload interface{}) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	for connID, conn := range hub.clients {
		err := conn.WriteJSON(map[string]interface{}{
			"event": event,
			"data":  payload,
		})
		if err != nil {
			zap.S().Errorf("error sending case event to %s: %v", connID, err)
			delete(hub.clients, connID)
			conn.Close()
		}
	}
}
