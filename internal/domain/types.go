package domain

// Disk is the occupant of a single board cell.
type Disk int

const (
	Empty Disk = 0
	Black Disk = 1
	White Disk = 2
)

// for board representation
const (
	BoardSize = 8
	Cells     = BoardSize * BoardSize
)

// Outcome of a finished game.
type Outcome string

const (
	OutcomeBlack Outcome = "black"
	OutcomeWhite Outcome = "white"
	OutcomeDraw  Outcome = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfRange  Error = "cell index out of range"
	ErrNotYourTurn Error = "not your turn"
	ErrGameOver    Error = "game over"
)

func Opponent(p Disk) Disk {
	if p == Black {
		return White
	}
	return Black
}

func (d Disk) String() string {
	switch d {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}
