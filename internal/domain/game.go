package domain

// Game is the whole mutable state of one match. It replaces the loose
// board/turn/game_over variables a driver would otherwise keep around.
type Game struct {
	Board         *Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
	Moves         []int
}

func NewGame(first PlayerID) *Game {
	if first != Player1 && first != Player2 {
		first = Player1
	}
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: first,
		Status:        StatusActive,
		Winner:        Empty,
		MoveCount:     0,
		Moves:         make([]int, 0, Rows*Columns),
	}
}

// MakeMove drops the current player's piece into column and returns the row it
// landed on. The turn passes to the opponent unless the move ends the game.
func (g *Game) MakeMove(player PlayerID, column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameFinished
	}

	if player != g.CurrentPlayer {
		return -1, ErrNotYourTurn
	}

	if column < 0 || column >= Columns {
		return -1, ErrColumnOutOfRange
	}

	if !IsValidMove(g.Board, column) {
		return -1, ErrInvalidMove
	}

	row, err := NextOpenRow(g.Board, column)
	if err != nil {
		return -1, err
	}
	DropPiece(g.Board, row, column, player)

	g.MoveCount++
	g.Moves = append(g.Moves, column)

	if CheckWin(g.Board, row, column, player) {
		g.Status = StatusWon
		g.Winner = player
		return row, nil
	}

	if IsBoardFull(g.Board) {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = player.Opponent()
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
