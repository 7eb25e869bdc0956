package events

import (
	"context"

	"workbridge_backend/internal/logger"
)

const broadcastBuffer = 64

// Hub fans events out to every connected client. Run owns the client set.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	count      chan chan int
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, broadcastBuffer),
		count:      make(chan chan int),
	}
}

// Run serves the hub until ctx is done, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			logger.Debug("Events client registered", "user_id", client.userID, "total", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				logger.Debug("Events client unregistered", "user_id", client.userID, "total", len(h.clients))
			}

		case e := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- e:
				default:
					logger.Warn("Events client too slow, disconnecting", "user_id", client.userID)
					h.drop(client)
				}
			}

		case reply := <-h.count:
			reply <- len(h.clients)
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
}

// Publish queues e for broadcast. When the queue is full the event is dropped.
func (h *Hub) Publish(e Event) {
	select {
	case h.broadcast <- e:
	default:
		logger.Warn("Events queue full, dropping event", "type", e.Type, "id", e.ID)
	}
}

// ClientCount asks the running hub how many clients are connected.
func (h *Hub) ClientCount(ctx context.Context) (int, error) {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
	case <-ctx.Done():
		return 0, ctx.Err()
	}
	select {
	case n := <-reply:
		return n, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
