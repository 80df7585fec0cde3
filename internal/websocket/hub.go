package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"it-helpdesk-be/internal/pkg/logger"
	"it-helpdesk-be/pkg/events"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisChannel = "activity_events"

// Hub fans activity events out to every connected dashboard. Connections
// are anonymous (the dashboard has no login), so clients are tracked by
// connection id only.
type Hub struct {
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Optional Redis connection for cross-instance fan-out
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"conn_id": client.ID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"conn_id": client.ID})
		}
	}
}

// Broadcast pushes one activity event to all local clients and mirrors it
// to Redis so other instances can deliver it too.
func (h *Hub) Broadcast(event events.Event) {
	data, err := json.Marshal(map[string]interface{}{
		"type":      event.EventType(),
		"data":      event.Payload(),
		"timestamp": event.Timestamp().Format(time.RFC3339),
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal event", map[string]interface{}{"error": err.Error()})
		return
	}

	h.broadcastRaw(data)

	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), redisChannel, data).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (h *Hub) broadcastRaw(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Slow consumer: drop the connection rather than block the hub.
			h.logger.Warn("Hub", "Client send buffer full, dropping", map[string]interface{}{"conn_id": client.ID})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	sub := h.rdb.Subscribe(context.Background(), redisChannel)
	for msg := range sub.Channel() {
		h.broadcastRaw([]byte(msg.Payload))
	}
}
