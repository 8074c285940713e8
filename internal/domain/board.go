package domain

// Board is the grid, indexed [row][column]. Row 0 is the bottom of the stack,
// so a column fills from row 0 upwards.
type Board [Rows][Columns]PlayerID

func NewBoard() *Board {
	return &Board{}
}

// IsValidMove reports whether the top cell of the column is still empty.
// Columns outside the grid are never valid; callers that take user input
// should still reject them with ErrColumnOutOfRange before getting here.
func IsValidMove(board *Board, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	return board[Rows-1][column] == Empty
}

// NextOpenRow returns the lowest empty row of the column.
func NextOpenRow(board *Board, column int) (int, error) {
	for row := 0; row < Rows; row++ {
		if board[row][column] == Empty {
			return row, nil
		}
	}
	return -1, ErrNoOpenRow
}

// DropPiece writes the piece without any checks. It must only be called with a
// row obtained from NextOpenRow for the same column.
func DropPiece(board *Board, row, column int, piece PlayerID) {
	board[row][column] = piece
}

// this creates a deep copy of the board
func CopyBoard(board *Board) *Board {
	newBoard := *board
	return &newBoard
}

func IsBoardFull(board *Board) bool {
	for c := 0; c < Columns; c++ {
		if board[Rows-1][c] == Empty {
			return false
		}
	}
	return true
}

// GetValidMoves lists the playable columns in ascending order.
func GetValidMoves(board *Board) []int {
	validMoves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if IsValidMove(board, col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// this will simulate a move on a copy and give the result to the caller
func SimulateMove(board *Board, column int, player PlayerID) (*Board, int, error) {
	if !IsValidMove(board, column) {
		return nil, -1, ErrInvalidMove
	}
	newBoard := CopyBoard(board)
	row, err := NextOpenRow(newBoard, column)
	if err != nil {
		return nil, -1, err
	}
	DropPiece(newBoard, row, column, player)
	return newBoard, row, nil
}

// this counts the number of disks in a specific direction, not including the start cell
func CountDiskInDirection(board *Board, row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for InBounds(r, c) && board[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

func InBounds(row, column int) bool {
	return row >= 0 && row < Rows && column >= 0 && column < Columns
}

// Key encodes the grid bottom row first as one digit per cell.
func (b *Board) Key() string {
	buf := make([]byte, 0, Rows*Columns)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			buf = append(buf, byte('0'+b[r][c]))
		}
	}
	return string(buf)
}

// PieceCount returns how many cells hold a piece of either player.
func (b *Board) PieceCount() int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if b[r][c] != Empty {
				n++
			}
		}
	}
	return n
}
