package session

import (
	"errors"
	"testing"
	"time"

	"github.com/akarsh17/reversi/internal/domain"
	"github.com/akarsh17/reversi/internal/service/bot"
)

func TestCreateAndGet(t *testing.T) {
	m := NewManager()
	gs := m.Create(domain.Black, bot.DifficultyHeuristic, 0)

	if gs.ID == "" {
		t.Fatal("expected a session ID")
	}
	if m.Len() != 1 {
		t.Fatalf("manager holds %d sessions, want 1", m.Len())
	}

	got, ok := m.Get(gs.ID)
	if !ok || got != gs {
		t.Fatalf("Get(%q) = %v, %v", gs.ID, got, ok)
	}
	if _, ok := m.Get("unknown"); ok {
		t.Fatal("Get on unknown ID succeeded")
	}
}

func TestRemove(t *testing.T) {
	m := NewManager()
	gs := m.Create(domain.Black, bot.DifficultyHeuristic, 0)

	if err := m.Remove(gs.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("manager holds %d sessions, want 0", m.Len())
	}
	if err := m.Remove(gs.ID); err == nil {
		t.Fatal("expected error removing missing session")
	}
}

func TestHandleMoveAppliesPlacement(t *testing.T) {
	gs := NewGameSession(domain.Black, bot.DifficultyHeuristic, 0)

	applied, err := gs.HandleMove(19)
	if err != nil || !applied {
		t.Fatalf("HandleMove(19) = %v, %v", applied, err)
	}
	if gs.Game.BlackCount() != 4 || gs.Game.WhiteCount() != 1 {
		t.Fatalf("counts = %d/%d, want 4/1", gs.Game.BlackCount(), gs.Game.WhiteCount())
	}
	if gs.Game.CurrentPlayer() != domain.White {
		t.Fatalf("expected White to move, got %v", gs.Game.CurrentPlayer())
	}
	if !gs.IsBotTurn() {
		t.Fatal("expected the bot's turn after the human move")
	}
}

func TestHandleMoveWrongTurn(t *testing.T) {
	gs := NewGameSession(domain.White, bot.DifficultyHeuristic, 0)

	if _, err := gs.HandleMove(19); !errors.Is(err, domain.ErrNotYourTurn) {
		t.Fatalf("error = %v, want ErrNotYourTurn", err)
	}
}

func TestHandleMoveRejectedPlacement(t *testing.T) {
	gs := NewGameSession(domain.Black, bot.DifficultyHeuristic, 0)

	applied, err := gs.HandleMove(27)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied {
		t.Fatal("placement on occupied cell accepted")
	}
}

func TestPlayBotMove(t *testing.T) {
	// human plays White, so Black's opening move belongs to the bot
	gs := NewGameSession(domain.White, bot.DifficultyHeuristic, 0)

	move, ok := gs.PlayBotMove()
	if !ok {
		t.Fatal("expected the bot to move")
	}
	if move != 19 {
		t.Fatalf("bot played %d, want 19", move)
	}
	if gs.Game.CurrentPlayer() != domain.White {
		t.Fatalf("expected White to move after bot reply, got %v", gs.Game.CurrentPlayer())
	}
}

func TestPlayBotMoveNotBotTurn(t *testing.T) {
	gs := NewGameSession(domain.Black, bot.DifficultyHeuristic, 0)

	if move, ok := gs.PlayBotMove(); ok || move != -1 {
		t.Fatalf("PlayBotMove = %d, %v on the human's turn", move, ok)
	}
}

func TestBotVersusBotRunsToCompletion(t *testing.T) {
	gs := NewGameSession(domain.Empty, bot.DifficultyHeuristic, 0)

	for plies := 0; !gs.IsFinished(); plies++ {
		if plies > domain.Cells {
			t.Fatal("game did not terminate")
		}
		if _, ok := gs.PlayBotMove(); !ok {
			t.Fatal("bot failed to move in a live game")
		}
	}

	if gs.FinishedAt.IsZero() {
		t.Fatal("finished session has no FinishedAt")
	}
	if _, ok := gs.Game.Winner(); !ok {
		t.Fatal("finished game has no winner value")
	}
}

func TestCleanupFinished(t *testing.T) {
	m := NewManager()

	stale := m.Create(domain.Black, bot.DifficultyHeuristic, 0)
	stale.CreatedAt = time.Now().Add(-2 * time.Hour)

	done := m.Create(domain.Empty, bot.DifficultyHeuristic, 0)
	for !done.IsFinished() {
		if _, ok := done.PlayBotMove(); !ok {
			t.Fatal("bot failed to move")
		}
	}
	done.FinishedAt = time.Now().Add(-2 * time.Hour)

	fresh := m.Create(domain.Black, bot.DifficultyHeuristic, 0)

	if removed := m.CleanupFinished(time.Hour); removed != 2 {
		t.Fatalf("cleanup removed %d sessions, want 2", removed)
	}
	if _, ok := m.Get(fresh.ID); !ok {
		t.Fatal("fresh session was evicted")
	}
	if m.Len() != 1 {
		t.Fatalf("manager holds %d sessions, want 1", m.Len())
	}
}
