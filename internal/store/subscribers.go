package store

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"iot-system/internal/domain"
)

// message is the frame broadcast to every websocket subscriber when a
// record is created, updated, or deleted.
type message struct {
	Kind string `json:"kind"`
	ID   any    `json:"id,omitempty"`
	Data any    `json:"data,omitempty"`
}

func newRecordMessage(id int32, data domain.ProcessedAgentData) ([]byte, error) {
	return json.Marshal(message{Kind: "new", ID: id, Data: data})
}

func updatedRecordMessage(id int32, data domain.ProcessedAgentData) ([]byte, error) {
	return json.Marshal(message{Kind: "update", ID: id, Data: data})
}

func deletedRecordMessage(id int32) ([]byte, error) {
	return json.Marshal(message{Kind: "delete", ID: id})
}

func createdListMessage(ids []int32, data []domain.ProcessedAgentData) ([]byte, error) {
	return json.Marshal(message{Kind: "new", ID: ids, Data: data})
}

// session pairs a websocket connection with the mutex that serializes
// writes to it: one writer at a time per connection, as gorilla/websocket
// requires.
type session struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *session) send(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.BinaryMessage, payload)
}

func (s *session) close() error {
	return s.conn.Close()
}

// subscribers tracks every open websocket connection and broadcasts
// change notifications to all of them, evicting any connection a send
// fails on.
type subscribers struct {
	mu       sync.RWMutex
	sessions map[uint64]*session
	nextID   atomic.Uint64
}

func newSubscribers() *subscribers {
	return &subscribers{sessions: make(map[uint64]*session)}
}

func (s *subscribers) add(conn *websocket.Conn) uint64 {
	id := s.nextID.Add(1)

	s.mu.Lock()
	s.sessions[id] = &session{conn: conn}
	s.mu.Unlock()

	return id
}

func (s *subscribers) remove(id uint64) {
	s.mu.Lock()
	sub, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		_ = sub.close()
	}
}

// broadcast sends payload to every subscriber under the registry's read
// lock, one session lock at a time, then evicts any that failed under
// the write lock.
func (s *subscribers) broadcast(payload []byte) {
	var failed []uint64
	s.mu.RLock()
	for id, sub := range s.sessions {
		if err := sub.send(payload); err != nil {
			failed = append(failed, id)
		}
	}
	s.mu.RUnlock()

	if len(failed) == 0 {
		return
	}

	s.mu.Lock()
	for _, id := range failed {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
}
