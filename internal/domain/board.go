package domain

// Board is the 8x8 grid stored flat, row-major: index = row*8 + col.
type Board [Cells]Disk

// Direction is one of the 8 compass offsets on the flat index. DCol is
// the column delta of a single step, used to reject steps that would
// wrap around the left or right edge.
type Direction struct {
	Step int
	DCol int
}

var Directions = [8]Direction{
	{Step: -9, DCol: -1}, {Step: -8, DCol: 0}, {Step: -7, DCol: 1},
	{Step: -1, DCol: -1}, {Step: 1, DCol: 1},
	{Step: 7, DCol: -1}, {Step: 8, DCol: 0}, {Step: 9, DCol: 1},
}

// OpeningBoard returns the starting position: the center 2x2 block
// with the two colors placed diagonally.
func OpeningBoard() Board {
	var b Board
	b[27], b[36] = White, White
	b[28], b[35] = Black, Black
	return b
}

func Row(index int) int { return index / BoardSize }
func Col(index int) int { return index % BoardSize }

// InRange reports whether index addresses a board cell.
func InRange(index int) bool {
	return index >= 0 && index < Cells
}

// next returns the neighboring index one step in dir, or -1 when the
// step leaves the board or wraps to the other side.
func next(index int, dir Direction) int {
	n := index + dir.Step
	if n < 0 || n >= Cells {
		return -1
	}
	if Col(n)-Col(index) != dir.DCol {
		return -1
	}
	return n
}

// CaptureRun returns the opponent disks that placing player at index
// would flip in the given direction. The run only counts when it is
// terminated by one of player's own disks; an empty cell or the board
// edge voids it.
func CaptureRun(board *Board, index int, player Disk, dir Direction) []int {
	opponent := Opponent(player)
	var run []int
	for n := next(index, dir); n != -1; n = next(n, dir) {
		switch board[n] {
		case opponent:
			run = append(run, n)
		case player:
			return run
		default:
			return nil
		}
	}
	return nil
}

// Captures returns every disk that placing player at index would flip,
// across all 8 directions.
func Captures(board *Board, index int, player Disk) []int {
	var flips []int
	for _, dir := range Directions {
		flips = append(flips, CaptureRun(board, index, player, dir)...)
	}
	return flips
}

// LegalMoves returns, in ascending index order, every empty cell where
// player would capture at least one opponent disk.
func LegalMoves(board *Board, player Disk) []int {
	moves := []int{}
	for i := 0; i < Cells; i++ {
		if board[i] != Empty {
			continue
		}
		if hasCapture(board, i, player) {
			moves = append(moves, i)
		}
	}
	return moves
}

func hasCapture(board *Board, index int, player Disk) bool {
	for _, dir := range Directions {
		if len(CaptureRun(board, index, player, dir)) > 0 {
			return true
		}
	}
	return false
}

// IsFull reports whether no empty cell remains.
func IsFull(board *Board) bool {
	for i := 0; i < Cells; i++ {
		if board[i] == Empty {
			return false
		}
	}
	return true
}

// CountDisks tallies both colors in one pass.
func CountDisks(board *Board) (black, white int) {
	for i := 0; i < Cells; i++ {
		switch board[i] {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}
