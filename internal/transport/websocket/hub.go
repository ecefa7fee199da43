package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 64
	eventBuffer    = 256
)

const (
	MessageTypePing = "ping"
	MessageTypePong = "pong"
)

// Message is the envelope written to connected agendas.
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// Client is one connected agenda screen.
type Client struct {
	ID       string
	Login    string
	DoctorID string
	Conn     *websocket.Conn
	Send     chan []byte
	Hub      *Hub
}

// Hub fans appointment change events out to connected screens so they know
// to reload.
type Hub struct {
	clients    map[*Client]struct{}
	events     chan domain.ChangeEvent
	register   chan *Client
	unregister chan *Client
	pings      chan *Client
	done       chan struct{}

	upgrader websocket.Upgrader
	logger   *zap.Logger

	mutex sync.RWMutex
}

func NewHub(allowedOrigins []string, logger *zap.Logger) *Hub {
	h := &Hub{
		clients:    make(map[*Client]struct{}),
		events:     make(chan domain.ChangeEvent, eventBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		pings:      make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin:     originChecker(allowedOrigins),
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// Publish queues an event for broadcast. It never blocks a mutation: when the
// queue is full the event is dropped.
func (h *Hub) Publish(event domain.ChangeEvent) {
	select {
	case h.events <- event:
	default:
		h.logger.Warn("cola de eventos llena, evento descartado",
			zap.String("appointmentID", event.AppointmentID),
			zap.String("operation", string(event.Operation)),
		)
	}
}

// Run serves registrations and broadcasts until ctx is done. Only Run closes
// a client's Send channel.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = struct{}{}
			h.mutex.Unlock()
			h.logger.Info("cliente conectado",
				zap.String("clientID", client.ID),
				zap.String("login", client.Login),
				zap.String("doctorID", client.DoctorID),
			)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			h.logger.Info("cliente desconectado", zap.String("clientID", client.ID))

		case client := <-h.pings:
			h.pong(client)

		case event := <-h.events:
			h.broadcast(event)
		}
	}
}

func (h *Hub) pong(client *Client) {
	data, err := json.Marshal(Message{Type: MessageTypePong, Timestamp: time.Now().Format(time.RFC3339)})
	if err != nil {
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	select {
	case client.Send <- data:
	default:
	}
}

func (h *Hub) broadcast(event domain.ChangeEvent) {
	data, err := json.Marshal(Message{
		Type:      event.Type,
		Data:      event,
		Timestamp: event.OccurredAt.Format(time.RFC3339),
	})
	if err != nil {
		h.logger.Error("error al serializar el evento", zap.Error(err))
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		if client.DoctorID != "" && event.DoctorID != "" && client.DoctorID != event.DoctorID {
			continue
		}
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("canal del cliente lleno, evento descartado", zap.String("clientID", client.ID))
		}
	}
}

func (h *Hub) ConnectedClients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// HandleWebSocket upgrades the request. An optional doctorId query parameter
// limits the events to that doctor's appointments.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("error al abrir el websocket", zap.Error(err))
		return
	}

	client := &Client{
		ID:       uuid.New().String(),
		Login:    c.GetString("login"),
		DoctorID: c.Query("doctorId"),
		Conn:     conn,
		Send:     make(chan []byte, sendBuffer),
		Hub:      h,
	}

	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump only answers pings; screens never push changes over the socket.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.Hub.logger.Warn("error en el websocket", zap.String("clientID", c.ID), zap.Error(err))
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.Hub.logger.Debug("mensaje no válido", zap.String("clientID", c.ID), zap.Error(err))
			continue
		}
		if msg.Type != MessageTypePing {
			continue
		}

		select {
		case c.Hub.pings <- c:
		case <-c.Hub.done:
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Hub.logger.Warn("error al escribir en el websocket", zap.String("clientID", c.ID), zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
