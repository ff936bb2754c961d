package hub

import (
	"encoding/json"
	"log"
	"sync"
)

// Event types published on a game's stream.
const (
	EventSongRated    = "song.rated"
	EventSongAdded    = "song.added"
	EventStatsUpdated = "game.stats_updated"
)

// Event is a message pushed to every listener of a game.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// SongRatedPayload accompanies EventSongRated.
type SongRatedPayload struct {
	SongID        uint    `json:"song_id"`
	GameID        uint    `json:"game_id"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

// Client is one open event stream. The SSE handler reads from it until it is closed.
type Client chan []byte

// ClientBuffer is the number of events a slow client may lag behind before
// further events are dropped for it.
const ClientBuffer = 16

// Hub fans events out to the listeners of each game.
type Hub struct {
	games map[uint]map[Client]struct{}
	mu    sync.RWMutex
}

var GlobalHub = NewHub()

func NewHub() *Hub {
	return &Hub{
		games: make(map[uint]map[Client]struct{}),
	}
}

// Subscribe registers a new listener for gameID.
func (h *Hub) Subscribe(gameID uint) Client {
	client := make(Client, ClientBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.games[gameID]; !ok {
		h.games[gameID] = make(map[Client]struct{})
	}
	h.games[gameID][client] = struct{}{}
	return client
}

// Unsubscribe removes the listener and closes its channel.
func (h *Hub) Unsubscribe(gameID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.games[gameID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client)
	if len(clients) == 0 {
		delete(h.games, gameID)
	}
}

// Subscribers reports how many listeners a game has.
func (h *Hub) Subscribers(gameID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}

// Broadcast sends event to every listener of gameID without blocking.
func (h *Hub) Broadcast(gameID uint, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.games[gameID]
	if !ok {
		return
	}

	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("hub: marshal %s event: %v", event.Type, err)
		return
	}

	for client := range clients {
		select {
		case client <- message:
		default:
			// Slow listener; drop rather than stall the publisher.
		}
	}
}
