package bot

import (
	"math/rand"
)

// calculateEasyMove picks uniformly among the legal moves.
func calculateEasyMove(legalMoves []int) int {
	if len(legalMoves) == 0 {
		return -1
	}
	return legalMoves[rand.Intn(len(legalMoves))]
}
