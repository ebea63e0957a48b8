package ws_club

import (
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type ClubHubSuite struct {
	suite.Suite
}

func newClient(hub *Hub, clubID uuid.UUID, buffer int) *Client {
	return &Client{
		Hub:    hub,
		Send:   make(chan []byte, buffer),
		ClubID: clubID,
	}
}

func (suite *ClubHubSuite) TestBroadcastReachesClubMembersOnly(t provider.T) {
	t.Parallel()

	hub := New(slog.Default())
	clubID := uuid.New()
	member := newClient(hub, clubID, 4)
	outsider := newClient(hub, uuid.New(), 4)
	hub.RegisterClient(member)
	hub.RegisterClient(outsider)

	hub.BroadcastToClub(clubID, EventMessageSent, map[string]string{"text": "hi"})

	assert.Len(t, member.Send, 1)
	assert.Empty(t, outsider.Send)

	var event Event
	assert.NoError(t, json.Unmarshal(<-member.Send, &event))
	assert.Equal(t, EventMessageSent, event.Type)
	assert.Equal(t, clubID.String(), event.ClubID)
}

func (suite *ClubHubSuite) TestSlowClientDropped(t provider.T) {
	t.Parallel()

	hub := New(slog.Default())
	clubID := uuid.New()
	slow := newClient(hub, clubID, 1)
	healthy := newClient(hub, clubID, 4)
	hub.RegisterClient(slow)
	hub.RegisterClient(healthy)

	hub.BroadcastToClub(clubID, EventPollUpdated, nil)
	hub.BroadcastToClub(clubID, EventPollUpdated, nil)

	// The second send overflows the slow buffer and closes its channel.
	_, open := <-slow.Send
	assert.True(t, open)
	_, open = <-slow.Send
	assert.False(t, open)

	assert.Len(t, healthy.Send, 2)
}

func (suite *ClubHubSuite) TestConcurrentBroadcastsWithOverflowingClients(t provider.T) {
	t.Parallel()

	hub := New(slog.Default())
	clubID := uuid.New()
	for i := 0; i < 8; i++ {
		hub.RegisterClient(newClient(hub, clubID, 1))
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.BroadcastToClub(clubID, EventReactionUpdated, nil)
		}()
	}
	wg.Wait()

	// Every overflowing client was dropped exactly once; the room map
	// survived the concurrent mutation.
	hub.BroadcastToClub(clubID, EventReactionUpdated, nil)
}

func TestClubHubSuite(t *testing.T) {
	suite.RunSuite(t, new(ClubHubSuite))
}
