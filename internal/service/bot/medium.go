package bot

import (
	"github.com/iamasit07/connect4-minimax/internal/domain"
)

const (
	// Score priorities (from highest to lowest)
	scoreWinNow          = 100000 // Bot can win immediately
	scoreBlockWin        = 10000  // Block opponent's immediate win
	scoreCreateWinThreat = 8000   // Leaves the bot with a win next move
	scoreBlockWinThreat  = 5000   // Reduces the opponent's winning setup
	scoreGiftPenalty     = 9000   // Lets the opponent win on top of our piece
	scoreThreeInRow      = 400
	scoreTwoInRow        = 100
	scoreCenter          = 30
	scoreNearCenter      = 20
	scoreEdge            = 5
)

// calculateMediumMove ranks every legal column with one ply of lookahead and
// a few tactical patterns. Ties go to the column closest to the center.
func calculateMediumMove(board *domain.Board, botPlayer domain.PlayerID) int {
	validColumns := domain.GetValidMoves(board)
	if len(validColumns) == 0 {
		return NoColumn
	}

	opponent := botPlayer.Opponent()
	currentOpponentThreat := evaluateWinningThreat(board, opponent)

	var scores [domain.Columns]int
	for _, col := range validColumns {
		botBoard, botRow, err := domain.SimulateMove(board, col, botPlayer)
		if err != nil {
			continue
		}
		oppBoard, oppRow, err := domain.SimulateMove(board, col, opponent)
		if err != nil {
			continue
		}

		if domain.CheckWin(botBoard, botRow, col, botPlayer) {
			scores[col] += scoreWinNow
		}
		if domain.CheckWin(oppBoard, oppRow, col, opponent) {
			scores[col] += scoreBlockWin
		}

		scores[col] += evaluateWinningThreat(botBoard, botPlayer)
		if evaluateWinningThreat(botBoard, opponent) < currentOpponentThreat {
			scores[col] += scoreBlockWinThreat
		}

		// playing here opens the cell above for the opponent
		if above, aboveRow, err := domain.SimulateMove(botBoard, col, opponent); err == nil {
			if domain.CheckWin(above, aboveRow, col, opponent) {
				scores[col] -= scoreGiftPenalty
			}
		}

		scores[col] += evaluateThreats(botBoard, botRow, col, botPlayer)
		scores[col] += evaluateThreats(oppBoard, oppRow, col, opponent) / 2 // Half value for blocking vs creating
		scores[col] += centerBonus(col)
	}

	return findBestColumn(validColumns, scores)
}

func centerBonus(col int) int {
	switch distanceFromCenter(col) {
	case 0:
		return scoreCenter
	case 1:
		return scoreNearCenter
	case 2:
		return scoreEdge
	}
	return 0
}

func distanceFromCenter(col int) int {
	d := col - domain.Columns/2
	if d < 0 {
		return -d
	}
	return d
}

// Find the column with the highest score
func findBestColumn(validColumns []int, scores [domain.Columns]int) int {
	bestColumn := validColumns[0]
	for _, col := range validColumns[1:] {
		switch {
		case scores[col] > scores[bestColumn]:
			bestColumn = col
		case scores[col] == scores[bestColumn] && distanceFromCenter(col) < distanceFromCenter(bestColumn):
			bestColumn = col
		}
	}
	return bestColumn
}
