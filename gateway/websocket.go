package gateway

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// streamHub broadcasts NATS messages to connected WebSocket clients.
type streamHub struct {
	gateway  *Gateway
	upgrader websocket.Upgrader

	clients   map[*websocket.Conn]*streamClient
	clientsMu sync.RWMutex
}

type streamClient struct {
	conn        *websocket.Conn
	connectedAt time.Time
	writeMu     sync.Mutex // serializes writes to the connection
	closeOnce   sync.Once
}

func newStreamHub(g *Gateway) *streamHub {
	return &streamHub{
		gateway: g,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				// Same-origin enforcement is left to the deployment proxy
				return true
			},
		},
		clients: make(map[*websocket.Conn]*streamClient),
	}
}

// handleStream upgrades the connection and keeps it registered until the
// client disconnects.
func (g *Gateway) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := g.hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Debug("WebSocket upgrade failed", "error", err)
		return
	}

	client := &streamClient{
		conn:        conn,
		connectedAt: time.Now(),
	}

	g.hub.clientsMu.Lock()
	g.hub.clients[conn] = client
	count := len(g.hub.clients)
	g.hub.clientsMu.Unlock()

	g.metrics.recordClientConnected(g.name, count)
	g.logger.Debug("WebSocket client connected", "clients", count)

	go g.hub.readLoop(client)
	go g.hub.pingLoop(client)
}

// readLoop consumes control frames and detects disconnect. Client data
// frames are ignored; the stream is one-way.
func (h *streamHub) readLoop(client *streamClient) {
	defer h.remove(client, "read_error")

	client.conn.SetReadLimit(512)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// pingLoop keeps the connection alive
func (h *streamHub) pingLoop(client *streamClient) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for range ticker.C {
		client.writeMu.Lock()
		err := client.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
		client.writeMu.Unlock()
		if err != nil {
			h.remove(client, "ping_failed")
			return
		}
	}
}

// broadcast fans a NATS message out to every connected client. Used as the
// NATS subscription handler.
func (h *streamHub) broadcast(_ context.Context, data []byte) {
	h.clientsMu.RLock()
	clients := make([]*streamClient, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	if len(clients) == 0 {
		return
	}

	start := time.Now()
	for _, client := range clients {
		client.writeMu.Lock()
		_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := client.conn.WriteMessage(websocket.TextMessage, data)
		client.writeMu.Unlock()

		if err != nil {
			h.remove(client, "write_failed")
			continue
		}
	}

	h.gateway.metrics.recordBroadcast(h.gateway.name, len(data), time.Since(start))
}

// remove unregisters and closes a client connection
func (h *streamHub) remove(client *streamClient, reason string) {
	client.closeOnce.Do(func() {
		h.clientsMu.Lock()
		delete(h.clients, client.conn)
		count := len(h.clients)
		h.clientsMu.Unlock()

		_ = client.conn.Close()

		h.gateway.metrics.recordClientDisconnected(h.gateway.name, reason, count)
		h.gateway.logger.Debug("WebSocket client disconnected",
			"reason", reason,
			"clients", count)
	})
}

// closeAll disconnects every client, used on shutdown
func (h *streamHub) closeAll() {
	h.clientsMu.RLock()
	clients := make([]*streamClient, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, client := range clients {
		client.writeMu.Lock()
		_ = client.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		client.writeMu.Unlock()
		h.remove(client, "shutdown")
	}
}

// clientCount returns the number of connected clients
func (h *streamHub) clientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}
