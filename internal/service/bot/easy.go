package bot

import (
	"math/rand"

	"github.com/iamasit07/connect4-minimax/internal/domain"
)

// CalculateBestMoveEasy wins if it can, blocks an immediate loss if it must,
// and otherwise plays a random legal column. It returns NoColumn on a full board.
func CalculateBestMoveEasy(board *domain.Board, botPlayer domain.PlayerID, rng *rand.Rand) int {
	validColumns := domain.GetValidMoves(board)
	if len(validColumns) == 0 {
		return NoColumn
	}

	if wins := winningColumns(board, botPlayer); len(wins) > 0 {
		return wins[0]
	}

	if threats := winningColumns(board, botPlayer.Opponent()); len(threats) > 0 {
		return threats[0]
	}

	return validColumns[rng.Intn(len(validColumns))]
}
