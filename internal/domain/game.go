package domain

// Game is the full state of one match. All mutation goes through Reset
// and Place; the legal-move set and the disk counts are derived data
// and kept in sync with the board on every successful placement.
type Game struct {
	board         Board
	currentPlayer Disk
	legalMoves    []int
	blackCount    int
	whiteCount    int
	gameOver      bool
	winner        Outcome
}

// NewGame returns a game at the opening position with Black to move.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset puts the game back to the opening position.
func (g *Game) Reset() {
	g.board = OpeningBoard()
	g.currentPlayer = Black
	g.blackCount = 2
	g.whiteCount = 2
	g.gameOver = false
	g.winner = ""
	g.legalMoves = LegalMoves(&g.board, g.currentPlayer)
}

// CellAt returns the occupant of a cell.
func (g *Game) CellAt(index int) (Disk, error) {
	if !InRange(index) {
		return Empty, ErrOutOfRange
	}
	return g.board[index], nil
}

// Board returns a snapshot copy of the board. The bot evaluates
// snapshots, never the live array.
func (g *Game) Board() Board {
	return g.board
}

// LegalMoves returns the moves available to the current player, in
// ascending index order.
func (g *Game) LegalMoves() []int {
	return append([]int(nil), g.legalMoves...)
}

func (g *Game) CurrentPlayer() Disk { return g.currentPlayer }
func (g *Game) BlackCount() int     { return g.blackCount }
func (g *Game) WhiteCount() int     { return g.whiteCount }
func (g *Game) IsGameOver() bool    { return g.gameOver }

// Winner is only meaningful once the game is over.
func (g *Game) Winner() (Outcome, bool) {
	if !g.gameOver {
		return "", false
	}
	return g.winner, true
}

// Place attempts to put the current player's disk at index. Illegal
// attempts (occupied cell, no capture, finished game, bad index) are
// ignored and report false. A legal placement flips every captured
// run, updates both counts, hands the turn over and recomputes the
// legal moves; the game ends when the board is full or the new current
// player has nowhere to play.
func (g *Game) Place(index int) bool {
	if g.gameOver || !InRange(index) || g.board[index] != Empty {
		return false
	}
	if !g.isLegal(index) {
		return false
	}

	flips := Captures(&g.board, index, g.currentPlayer)
	g.board[index] = g.currentPlayer
	for _, f := range flips {
		g.board[f] = g.currentPlayer
	}
	if g.currentPlayer == Black {
		g.blackCount += len(flips) + 1
		g.whiteCount -= len(flips)
	} else {
		g.whiteCount += len(flips) + 1
		g.blackCount -= len(flips)
	}

	g.currentPlayer = Opponent(g.currentPlayer)
	g.legalMoves = LegalMoves(&g.board, g.currentPlayer)

	// No pass rule: a player left without a legal move is out
	// immediately, the turn is never handed back.
	if IsFull(&g.board) || len(g.legalMoves) == 0 {
		g.gameOver = true
		switch {
		case g.blackCount > g.whiteCount:
			g.winner = OutcomeBlack
		case g.whiteCount > g.blackCount:
			g.winner = OutcomeWhite
		default:
			g.winner = OutcomeDraw
		}
	}

	return true
}

func (g *Game) isLegal(index int) bool {
	for _, m := range g.legalMoves {
		if m == index {
			return true
		}
	}
	return false
}
