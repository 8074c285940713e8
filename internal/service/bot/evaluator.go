package bot

import (
	"github.com/iamasit07/connect4-minimax/internal/domain"
)

// Evaluator gives a heuristic value to a position where neither side has won.
// Positive favours domain.AI. Values must stay far inside (LossScore, WinScore)
// so a forced win always outranks any positional advantage.
type Evaluator interface {
	Evaluate(board *domain.Board) int
}

// ZeroEvaluator scores every undecided position as a draw.
type ZeroEvaluator struct{}

func (ZeroEvaluator) Evaluate(*domain.Board) int { return 0 }

const (
	windowCenterWeight = 3
	windowThreeWeight  = 5
	windowTwoWeight    = 2
	windowBlockPenalty = 4
)

// WindowEvaluator scores every four-cell window on the board for the AI minus
// the same score for the human, plus a bonus for pieces in the center column.
type WindowEvaluator struct{}

func (WindowEvaluator) Evaluate(board *domain.Board) int {
	return scorePosition(board, domain.AI) - scorePosition(board, domain.Human)
}

func scorePosition(board *domain.Board, piece domain.PlayerID) int {
	score := 0

	// Center column preference
	centerCol := domain.Columns / 2
	for r := 0; r < domain.Rows; r++ {
		if board[r][centerCol] == piece {
			score += windowCenterWeight
		}
	}

	var window [domain.ToWin]domain.PlayerID

	// Horizontal
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c <= domain.Columns-domain.ToWin; c++ {
			for i := range window {
				window[i] = board[r][c+i]
			}
			score += evaluateWindow(window, piece)
		}
	}

	// Vertical
	for c := 0; c < domain.Columns; c++ {
		for r := 0; r <= domain.Rows-domain.ToWin; r++ {
			for i := range window {
				window[i] = board[r+i][c]
			}
			score += evaluateWindow(window, piece)
		}
	}

	// Rising diagonal
	for r := 0; r <= domain.Rows-domain.ToWin; r++ {
		for c := 0; c <= domain.Columns-domain.ToWin; c++ {
			for i := range window {
				window[i] = board[r+i][c+i]
			}
			score += evaluateWindow(window, piece)
		}
	}

	// Falling diagonal
	for r := domain.ToWin - 1; r < domain.Rows; r++ {
		for c := 0; c <= domain.Columns-domain.ToWin; c++ {
			for i := range window {
				window[i] = board[r-i][c+i]
			}
			score += evaluateWindow(window, piece)
		}
	}

	return score
}

func evaluateWindow(window [domain.ToWin]domain.PlayerID, piece domain.PlayerID) int {
	opp := piece.Opponent()

	countPiece, countOpp, countEmpty := 0, 0, 0
	for _, v := range window {
		switch v {
		case piece:
			countPiece++
		case opp:
			countOpp++
		default:
			countEmpty++
		}
	}

	score := 0
	if countPiece == 3 && countEmpty == 1 {
		score += windowThreeWeight
	} else if countPiece == 2 && countEmpty == 2 {
		score += windowTwoWeight
	}

	if countOpp == 3 && countEmpty == 1 {
		score -= windowBlockPenalty
	}

	return score
}

// EvaluatorByName maps the BOT_HEURISTIC setting to an evaluator.
func EvaluatorByName(name string) (Evaluator, bool) {
	switch name {
	case "", "none":
		return ZeroEvaluator{}, true
	case "window":
		return WindowEvaluator{}, true
	}
	return nil, false
}

// the helpers below drive the medium difficulty

// evaluateThreats scores the lines through (row, col) that can still be extended.
func evaluateThreats(board *domain.Board, row, col int, player domain.PlayerID) int {
	score := 0
	for _, dir := range lineDirections {
		dRow, dCol := dir[0], dir[1]

		posCount := domain.CountDiskInDirection(board, row, col, dRow, dCol, player)
		negCount := domain.CountDiskInDirection(board, row, col, -dRow, -dCol, player)
		total := posCount + negCount

		if !checkSpaceForExtension(board, row, col, dRow, dCol, posCount, negCount) {
			continue
		}

		switch {
		case total >= 2:
			score += scoreThreeInRow
		case total == 1:
			score += scoreTwoInRow
		}
	}
	return score
}

// evaluateWinningThreat looks at how many immediate wins player has and
// whether the opponent can defuse them with a single block.
func evaluateWinningThreat(board *domain.Board, player domain.PlayerID) int {
	opponent := player.Opponent()
	winningMoves := winningColumns(board, player)

	// opponent can only block one of them
	if len(winningMoves) >= 2 {
		return scoreCreateWinThreat
	}

	if len(winningMoves) == 1 {
		blockBoard, _, err := domain.SimulateMove(board, winningMoves[0], opponent)
		if err != nil {
			return scoreCreateWinThreat / 4
		}
		if len(winningColumns(blockBoard, player)) > 0 {
			return scoreCreateWinThreat / 2
		}
		return scoreCreateWinThreat / 4
	}

	return 0
}

func winningColumns(board *domain.Board, player domain.PlayerID) []int {
	var cols []int
	for _, col := range domain.GetValidMoves(board) {
		next, row, err := domain.SimulateMove(board, col, player)
		if err == nil && domain.CheckWin(next, row, col, player) {
			cols = append(cols, col)
		}
	}
	return cols
}

var lineDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal /
	{-1, 1}, // diagonal \
}

// check if there's room to extend a line on a cell that can actually be played
func checkSpaceForExtension(board *domain.Board, row, col, dRow, dCol, posCount, negCount int) bool {
	posRow := row + dRow*(posCount+1)
	posCol := col + dCol*(posCount+1)
	if domain.InBounds(posRow, posCol) && board[posRow][posCol] == domain.Empty && isPlayableSpace(board, posRow, posCol) {
		return true
	}

	negRow := row - dRow*(negCount+1)
	negCol := col - dCol*(negCount+1)
	if domain.InBounds(negRow, negCol) && board[negRow][negCol] == domain.Empty && isPlayableSpace(board, negRow, negCol) {
		return true
	}

	return false
}

// a cell is playable once the cell below it is filled
func isPlayableSpace(board *domain.Board, row, col int) bool {
	if row == 0 {
		return true
	}
	return board[row-1][col] != domain.Empty
}
