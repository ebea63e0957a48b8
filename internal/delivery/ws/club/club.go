// Package ws_club fans club events out to every connected member of a
// club room. The HTTP layer mutates state first, then broadcasts here.
package ws_club

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type EventType string

const (
	EventMessageSent        EventType = "MESSAGE_SENT"
	EventReactionUpdated    EventType = "REACTION_UPDATED"
	EventPollUpdated        EventType = "POLL_UPDATED"
	EventPredictionAdded    EventType = "PREDICTION_ADDED"
	EventPredictionLocked   EventType = "PREDICTION_LOCKED"
	EventPredictionRevealed EventType = "PREDICTION_REVEALED"
	EventPredictionVoted    EventType = "PREDICTION_VOTED"
	EventMemberJoined       EventType = "MEMBER_JOINED"
)

type Event struct {
	Type    EventType   `json:"type"`
	ClubID  string      `json:"club_id"`
	Payload interface{} `json:"payload,omitempty"`
}

type Client struct {
	Hub    *Hub
	Conn   *websocket.Conn
	Send   chan []byte
	ClubID uuid.UUID
}

type Hub struct {
	mu sync.RWMutex

	// Connected clients per club room.
	clubs map[uuid.UUID]map[*Client]bool

	logger *slog.Logger
}

func New(logger *slog.Logger) *Hub {
	return &Hub{
		clubs:  make(map[uuid.UUID]map[*Client]bool),
		logger: logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clubs[client.ClubID]; !ok {
		h.clubs[client.ClubID] = make(map[*Client]bool)
	}
	h.clubs[client.ClubID][client] = true

	h.logger.Info("client registered", "club_id", client.ClubID)
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, ok := h.clubs[client.ClubID]; ok {
		delete(room, client)
		if len(room) == 0 {
			delete(h.clubs, client.ClubID)
		}
	}
	h.logger.Info("client unregistered", "club_id", client.ClubID)
}

func (h *Hub) BroadcastToClub(clubID uuid.UUID, eventType EventType, payload interface{}) {
	messageBytes, _ := json.Marshal(Event{
		Type:    eventType,
		ClubID:  clubID.String(),
		Payload: payload,
	})

	// Full lock: dropping a slow client mutates the room map.
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clubs[clubID]; ok {
		for client := range clients {
			select {
			case client.Send <- messageBytes:
			default:
				close(client.Send)
				delete(h.clubs[clubID], client)
			}
		}
	}
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	for {
		_, _, err := client.Conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			break
		}
	}
}
