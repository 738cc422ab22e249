package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akarsh17/reversi/internal/domain"
	"github.com/akarsh17/reversi/internal/service/bot"
)

// GameSession ties one Game to its players. HumanColor is Empty when
// both sides are played by the bot. The mutex serializes every access
// to the game; the engine itself is single-threaded by contract.
type GameSession struct {
	ID            string
	Game          *domain.Game
	HumanColor    domain.Disk
	BotDifficulty string
	BotDelay      time.Duration
	CreatedAt     time.Time
	FinishedAt    time.Time

	mu sync.Mutex
}

func NewGameSession(humanColor domain.Disk, difficulty string, botDelay time.Duration) *GameSession {
	return &GameSession{
		ID:            uuid.NewString(),
		Game:          domain.NewGame(),
		HumanColor:    humanColor,
		BotDifficulty: difficulty,
		BotDelay:      botDelay,
		CreatedAt:     time.Now(),
	}
}

// IsBotTurn reports whether the side to move is bot-controlled.
func (gs *GameSession) IsBotTurn() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return !gs.Game.IsGameOver() && gs.Game.CurrentPlayer() != gs.HumanColor
}

func (gs *GameSession) IsFinished() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.IsGameOver()
}

// HandleMove applies the human player's placement. A rejected
// placement (occupied cell, no capture) reports false without error,
// matching the engine's silent no-op contract.
func (gs *GameSession) HandleMove(index int) (bool, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsGameOver() {
		return false, domain.ErrGameOver
	}
	if gs.Game.CurrentPlayer() != gs.HumanColor {
		return false, domain.ErrNotYourTurn
	}
	if !gs.Game.Place(index) {
		return false, nil
	}
	gs.finishIfOver()
	return true, nil
}

// PlayBotMove selects and applies the bot's move for the side to
// move. The configured delay runs before the move is applied; it is
// pure pacing for the caller's benefit, the engine knows nothing of
// it. Returns the chosen cell index, or -1 when it is not the bot's
// turn or the game is over.
func (gs *GameSession) PlayBotMove() (int, bool) {
	if gs.BotDelay > 0 {
		time.Sleep(gs.BotDelay)
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsGameOver() || gs.Game.CurrentPlayer() == gs.HumanColor {
		return -1, false
	}

	board := gs.Game.Board()
	move := bot.CalculateBestMove(&board, gs.Game.LegalMoves(), gs.Game.CurrentPlayer(), gs.BotDifficulty)
	if move == -1 || !gs.Game.Place(move) {
		return -1, false
	}
	gs.finishIfOver()
	return move, true
}

// finishIfOver stamps FinishedAt once. Callers hold the mutex.
func (gs *GameSession) finishIfOver() {
	if !gs.Game.IsGameOver() || !gs.FinishedAt.IsZero() {
		return
	}
	gs.FinishedAt = time.Now()
	winner, _ := gs.Game.Winner()
	log.Printf("[SESSION] Game %s finished: %s (black %d, white %d)",
		gs.ID, winner, gs.Game.BlackCount(), gs.Game.WhiteCount())
}
