package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// ProgressEvent is pushed to subscribers whenever a translation upsert
// changes a document's completion state
type ProgressEvent struct {
	Type       string `json:"type"` // always "TRANSLATION_PROGRESS"
	DocumentID string `json:"documentId"`
	LanguageID string `json:"languageId"`
	Percent    int    `json:"percent"`
}

// Hub maintains the set of active clients and routes progress events to
// the clients subscribed to the affected document
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("🔌 Progress client connected: %s", client.ID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("🔌 Progress client disconnected: %s", client.ID)
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastProgress sends a progress event to every client subscribed to
// the event's document
func (h *Hub) BroadcastProgress(event ProgressEvent) {
	event.Type = "TRANSLATION_PROGRESS"
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling progress event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if !client.SubscribedTo(event.DocumentID) {
			continue
		}
		select {
		case client.send <- msg:
		default:
			// Buffer full or client dead, skip
		}
	}
}
