package session

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/akarsh17/reversi/internal/domain"
)

type Manager struct {
	sessions map[string]*GameSession
	mu       sync.Mutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*GameSession),
	}
}

func (m *Manager) Create(humanColor domain.Disk, difficulty string, botDelay time.Duration) *GameSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	gs := NewGameSession(humanColor, difficulty, botDelay)
	m.sessions[gs.ID] = gs

	log.Printf("[SESSION] Created session %s (human: %s, difficulty: %s)",
		gs.ID, humanColor, difficulty)
	return gs
}

func (m *Manager) Get(id string) (*GameSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gs, exists := m.sessions[id]
	return gs, exists
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return fmt.Errorf("session not found")
	}

	log.Printf("[SESSION] Removing session %s", id)
	delete(m.sessions, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// CleanupFinished evicts sessions whose game ended more than ttl ago,
// along with unfinished sessions that have been idle past the ttl.
// Returns the number of sessions removed.
func (m *Manager) CleanupFinished(ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for id, gs := range m.sessions {
		stale := false
		if gs.IsFinished() {
			stale = gs.FinishedAt.Before(cutoff)
		} else {
			stale = gs.CreatedAt.Before(cutoff)
		}
		if stale {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
