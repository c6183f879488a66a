package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"RepairDesk/entity"
	"RepairDesk/internal/lib/sl"
)

const (
	EventBookingCreated   = "booking_created"
	EventSaleQuoteCreated = "sale_quote_created"
)

// Event is a message sent to staff clients.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub keeps the connected staff clients and fans events out to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.Mutex
	log        *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log.With(sl.Module("ws.hub")),
	}
}

// Run is the hub's event loop. It returns after Stop.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.log.Debug("client connected", slog.String("username", client.username))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.log.Debug("client disconnected", slog.String("username", client.username))

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				h.log.With(sl.Err(err)).Error("marshal event")
				continue
			}
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// slow client, drop it
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues an event; it never blocks the caller.
func (h *Hub) Broadcast(eventType string, data interface{}) {
	select {
	case h.broadcast <- &Event{Type: eventType, Data: data}:
	default:
		h.log.Warn("broadcast queue full, event dropped", slog.String("type", eventType))
	}
}

func (h *Hub) BroadcastBookingCreated(booking entity.Booking) {
	h.Broadcast(EventBookingCreated, booking)
}

func (h *Hub) BroadcastSaleQuoteCreated(quote entity.SaleQuote) {
	h.Broadcast(EventSaleQuoteCreated, quote)
}
