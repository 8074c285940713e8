package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// the human always plays Player1 and the computer always plays Player2,
// whichever of them moves first
const (
	Human = Player1
	AI    = Player2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "PLAYER"
	case Player2:
		return "AI"
	}
	return "EMPTY"
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove      Error = "invalid move"
	ErrNoOpenRow        Error = "no open row in column"
	ErrColumnOutOfRange Error = "column out of range"
	ErrNotYourTurn      Error = "not your turn"
	ErrGameFinished     Error = "game is already finished"
)
