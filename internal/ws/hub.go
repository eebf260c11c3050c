package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/salesledger/api/internal/logger"
	"github.com/sirupsen/logrus"
)

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Date    string          `json:"date"`
	Payload json.RawMessage `json:"payload"`
}

// dateEvent routes an event to the room of one calendar date
type dateEvent struct {
	Date  string
	Event Event
}

// Hub maintains the set of active clients and broadcasts messages to them.
// Clients subscribe to a single date (YYYY-MM-DD).
type Hub struct {
	// Registered clients by date
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	// Outbound messages to broadcast
	broadcast chan *dateEvent

	// Closed when Run returns
	done chan struct{}

	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *dateEvent, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop and returns when ctx is cancelled,
// closing every client's send channel on the way out.
// This should be called as a goroutine: go hub.Run(ctx)
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for date, clients := range h.rooms {
				for client := range clients {
					close(client.send)
				}
				delete(h.rooms, date)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.date] == nil {
				h.rooms[client.date] = make(map[*Client]bool)
			}
			h.rooms[client.date][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.date]; ok {
				if _, exists := clients[client]; exists {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.rooms, client.date)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			message, err := json.Marshal(event.Event)
			if err != nil {
				logger.LogError("ws", "broadcast", event.Event.Type, err)
				continue
			}

			h.mu.Lock()
			for client := range h.rooms[event.Date] {
				select {
				case client.send <- message:
				default:
					// Client's send buffer is full, close and unregister
					close(client.send)
					delete(h.rooms[event.Date], client)
					if len(h.rooms[event.Date]) == 0 {
						delete(h.rooms, event.Date)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToDate queues an event for every client watching date.
// It never blocks: when the queue is full or the hub has stopped the event is dropped.
func (h *Hub) BroadcastToDate(date string, event Event) {
	event.Date = date
	select {
	case <-h.done:
		return
	default:
	}
	select {
	case h.broadcast <- &dateEvent{Date: date, Event: event}:
	default:
		logger.Get().WithFields(logrus.Fields{"module": "ws", "type": event.Type, "date": date}).Warn("broadcast queue full, event dropped")
	}
}

// Publish marshals payload and broadcasts it as an event of the given type.
func (h *Hub) Publish(date, eventType string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.LogError("ws", "publish", eventType, err)
		return
	}
	h.BroadcastToDate(date, Event{Type: eventType, Payload: raw})
}
