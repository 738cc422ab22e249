package bot

import (
	"github.com/akarsh17/reversi/internal/domain"
)

const (
	DifficultyEasy      = "easy"
	DifficultyHeuristic = "heuristic"
)

// CalculateBestMove selects the bot's move based on difficulty.
// Returns -1 when there is no legal move.
func CalculateBestMove(board *domain.Board, legalMoves []int, botPlayer domain.Disk, difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return calculateEasyMove(legalMoves)
	case DifficultyHeuristic:
		return BestMove(board, legalMoves, botPlayer)
	default:
		return BestMove(board, legalMoves, botPlayer)
	}
}
