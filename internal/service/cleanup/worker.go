package cleanup

import (
	"log"
	"time"

	"github.com/akarsh17/reversi/internal/session"
)

type Worker struct {
	Manager  *session.Manager
	Interval time.Duration
	TTL      time.Duration

	stop chan struct{}
}

func NewWorker(m *session.Manager, interval, ttl time.Duration) *Worker {
	return &Worker{
		Manager:  m,
		Interval: interval,
		TTL:      ttl,
		stop:     make(chan struct{}),
	}
}

// Start runs an immediate sweep and then ticks until Stop is called.
func (w *Worker) Start() {
	go func() {
		w.runCleanup()

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.runCleanup()
			case <-w.stop:
				return
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

func (w *Worker) Stop() {
	close(w.stop)
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	if removed := w.Manager.CleanupFinished(w.TTL); removed > 0 {
		log.Printf("[CLEANUP] Removed %d expired sessions", removed)
	}
}
