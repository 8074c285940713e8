package domain

// HasFourInARow scans every start cell where a run of four fits on the grid.
// It is called at every node of the search, so it must not allocate.
func HasFourInARow(board *Board, piece PlayerID) bool {
	// horizontal
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if board[r][c] == piece && board[r][c+1] == piece &&
				board[r][c+2] == piece && board[r][c+3] == piece {
				return true
			}
		}
	}

	// vertical
	for c := 0; c < Columns; c++ {
		for r := 0; r <= Rows-ToWin; r++ {
			if board[r][c] == piece && board[r+1][c] == piece &&
				board[r+2][c] == piece && board[r+3][c] == piece {
				return true
			}
		}
	}

	// diagonal rising /
	for r := 0; r <= Rows-ToWin; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if board[r][c] == piece && board[r+1][c+1] == piece &&
				board[r+2][c+2] == piece && board[r+3][c+3] == piece {
				return true
			}
		}
	}

	// diagonal falling \
	for r := ToWin - 1; r < Rows; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if board[r][c] == piece && board[r-1][c+1] == piece &&
				board[r-2][c+2] == piece && board[r-3][c+3] == piece {
				return true
			}
		}
	}

	return false
}

// CheckWin only checks the lines passing through (row, column), which is
// enough right after a piece has been dropped there.
func CheckWin(board *Board, row, column int, player PlayerID) bool {
	if !InBounds(row, column) || board[row][column] != player {
		return false
	}

	directions := [4][2]int{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal /
		{-1, 1}, // diagonal \
	}

	for _, d := range directions {
		count := 1 +
			CountDiskInDirection(board, row, column, d[0], d[1], player) +
			CountDiskInDirection(board, row, column, -d[0], -d[1], player)
		if count >= ToWin {
			return true
		}
	}
	return false
}
