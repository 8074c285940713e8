package bot

import (
	"fmt"
	"math"

	"github.com/iamasit07/connect4-minimax/internal/domain"
)

const (
	DefaultDepth = 5

	WinScore  = 1000000
	LossScore = -1000000
	DrawScore = 0

	// NegInf and PosInf stand in for -infinity and +infinity. Every score the
	// search can produce lies strictly between them.
	NegInf = math.MinInt32
	PosInf = math.MaxInt32

	NoColumn = -1
)

// SearchResult is the column chosen for the side to move and the minimax value
// of the position. Column is NoColumn when the node was terminal.
type SearchResult struct {
	Column int `json:"column"`
	Score  int `json:"score"`
}

func (r SearchResult) HasMove() bool {
	return r.Column != NoColumn
}

// Searcher runs depth-limited minimax with alpha-beta pruning. The computer
// (domain.AI) is always the maximizing side.
//
// A Searcher keeps a node counter, so one value must not be shared by
// goroutines searching at the same time.
type Searcher struct {
	// Evaluator scores depth-exhausted positions without a winner.
	// nil scores them as 0.
	Evaluator Evaluator

	// DisablePruning explores every child, giving plain minimax.
	DisablePruning bool

	nodes int
}

// Search explores the tree below board with a fresh Searcher.
func Search(board *domain.Board, depth, alpha, beta int, maximizing bool) SearchResult {
	var s Searcher
	return s.Search(board, depth, alpha, beta, maximizing)
}

// Search returns the best column for the side to move and its score. The
// caller's board is never modified.
func (s *Searcher) Search(board *domain.Board, depth, alpha, beta int, maximizing bool) SearchResult {
	s.nodes = 0
	return s.search(board, depth, alpha, beta, maximizing)
}

// Nodes is the number of positions visited by the last Search.
func (s *Searcher) Nodes() int {
	return s.nodes
}

func (s *Searcher) search(board *domain.Board, depth, alpha, beta int, maximizing bool) SearchResult {
	s.nodes++

	aiWon := domain.HasFourInARow(board, domain.AI)
	humanWon := domain.HasFourInARow(board, domain.Human)
	validColumns := domain.GetValidMoves(board)

	if depth <= 0 || aiWon || humanWon || len(validColumns) == 0 {
		switch {
		case aiWon:
			return SearchResult{Column: NoColumn, Score: WinScore}
		case humanWon:
			return SearchResult{Column: NoColumn, Score: LossScore}
		case len(validColumns) > 0 && s.Evaluator != nil:
			return SearchResult{Column: NoColumn, Score: s.Evaluator.Evaluate(board)}
		default:
			return SearchResult{Column: NoColumn, Score: DrawScore}
		}
	}

	if maximizing {
		value := NegInf
		bestCol := validColumns[0]
		for _, col := range validColumns {
			child := s.child(board, col, domain.AI)
			newScore := s.search(child, depth-1, alpha, beta, false).Score
			if newScore > value {
				value = newScore
				bestCol = col
			}
			alpha = max(alpha, value)
			if alpha >= beta && !s.DisablePruning {
				break
			}
		}
		return SearchResult{Column: bestCol, Score: value}
	}

	value := PosInf
	bestCol := validColumns[0]
	for _, col := range validColumns {
		child := s.child(board, col, domain.Human)
		newScore := s.search(child, depth-1, alpha, beta, true).Score
		if newScore < value {
			value = newScore
			bestCol = col
		}
		beta = min(beta, value)
		if alpha >= beta && !s.DisablePruning {
			break
		}
	}
	return SearchResult{Column: bestCol, Score: value}
}

// child copies board and drops piece into col. col always comes from
// GetValidMoves, so a missing open row means the board itself is corrupt.
func (s *Searcher) child(board *domain.Board, col int, piece domain.PlayerID) *domain.Board {
	next := domain.CopyBoard(board)
	row, err := domain.NextOpenRow(next, col)
	if err != nil {
		panic(fmt.Sprintf("bot: column %d listed as valid on %s: %v", col, board.Key(), err))
	}
	domain.DropPiece(next, row, col, piece)
	return next
}
