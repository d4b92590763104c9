package server

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Conn is the hub-facing side of one viewer connection. The hub only writes;
// reads and connection teardown belong to the transport layer.
type Conn interface {
	Write(data []byte) error
	Close() error
}

type subscriber struct {
	id   string
	conn Conn
	mu   sync.Mutex
}

func (s *subscriber) send(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Write(data)
}

// BackgroundLister enumerates the background identifiers offered to clients
// in the connect-time payload.
type BackgroundLister interface {
	Backgrounds() []string
}

// Hub owns the authoritative session state and the set of live viewers.
// Every accepted mutation produces exactly one full-snapshot broadcast with
// identical bytes for every subscriber.
//
// Two locks: mu guards state and the subscriber set, sendMu serializes
// fan-outs. A broadcast grabs sendMu before releasing mu, so snapshots reach
// the wire in exactly the order their mutations were applied, while the next
// mutation only ever waits for one outstanding fan-out.
type Hub struct {
	mu          sync.Mutex
	sendMu      sync.Mutex
	state       *SessionState
	subscribers map[string]*subscriber
	backgrounds BackgroundLister
	logger      zerolog.Logger
}

// NewHub wires the hub to an explicitly owned session state; nothing here is
// package-global, so independent sessions (and tests) construct their own.
func NewHub(state *SessionState, backgrounds BackgroundLister, logger zerolog.Logger) *Hub {
	return &Hub{
		state:       state,
		subscribers: make(map[string]*subscriber),
		backgrounds: backgrounds,
		logger:      logger,
	}
}

// Subscribe registers conn and immediately delivers the hello payload: the
// snapshot as of registration plus the weather and background option lists.
// The returned id is the handle for Unsubscribe. A failed hello delivery
// evicts the subscriber again and surfaces the error.
func (h *Hub) Subscribe(conn Conn) (string, error) {
	sub := &subscriber{id: uuid.NewString(), conn: conn}

	h.mu.Lock()
	hello := HelloMessage{
		StateMessage:      h.state.Snapshot(),
		WeatherOptions:    WeatherOptions(),
		BackgroundOptions: h.backgrounds.Backgrounds(),
	}
	h.subscribers[sub.id] = sub
	h.sendMu.Lock()
	h.mu.Unlock()

	data, err := json.Marshal(hello)
	if err == nil {
		err = sub.send(data)
	}
	h.sendMu.Unlock()

	if err != nil {
		h.Unsubscribe(sub.id)
		return "", fmt.Errorf("deliver hello: %w", err)
	}

	h.logger.Debug().Str("subscriber", sub.id).Msg("viewer connected")
	return sub.id, nil
}

// Unsubscribe removes the subscriber from the registry; unknown ids are a
// no-op. The connection itself stays with its owner.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	_, ok := h.subscribers[id]
	delete(h.subscribers, id)
	h.mu.Unlock()

	if ok {
		h.logger.Debug().Str("subscriber", id).Msg("viewer disconnected")
	}
}

// SubscriberCount reports the current registry size.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// broadcastLocked snapshots the session and fans the payload out to every
// subscriber. Callers hold h.mu; broadcastLocked releases it once the send
// slot is reserved. Delivery to each subscriber is independent: a failed
// write evicts that subscriber and closes its connection, the rest still
// receive the payload. No retries.
func (h *Hub) broadcastLocked() {
	msg := h.state.Snapshot()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.sendMu.Lock()
	h.mu.Unlock()

	var failed []*subscriber
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Msg("marshal state message")
	} else {
		for _, sub := range subs {
			if err := sub.send(data); err != nil {
				failed = append(failed, sub)
			}
		}
	}
	h.sendMu.Unlock()

	for _, sub := range failed {
		h.logger.Warn().Str("subscriber", sub.id).Msg("dropping unreachable viewer")
		h.Unsubscribe(sub.id)
		sub.conn.Close()
	}
}
