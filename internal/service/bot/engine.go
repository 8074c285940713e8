package bot

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/connect4-minimax/internal/domain"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

type Options struct {
	Difficulty Difficulty
	Depth      int
	Heuristic  string
	// Cache is optional and only consulted by the hard difficulty, the only
	// deterministic strategy.
	Cache Cache
	// Rand drives the easy difficulty. nil seeds from the clock.
	Rand *rand.Rand
}

// Engine picks the computer's column. It always plays domain.AI.
type Engine struct {
	difficulty Difficulty
	depth      int
	heuristic  string
	evaluator  Evaluator
	cache      Cache

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

func NewEngine(opts Options) (*Engine, error) {
	if opts.Difficulty == "" {
		opts.Difficulty = DifficultyHard
	}
	if _, err := ParseDifficulty(string(opts.Difficulty)); err != nil {
		return nil, err
	}
	if opts.Depth == 0 {
		opts.Depth = DefaultDepth
	}
	if opts.Depth < 1 {
		return nil, fmt.Errorf("search depth must be positive, got %d", opts.Depth)
	}
	evaluator, ok := EvaluatorByName(opts.Heuristic)
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q", opts.Heuristic)
	}
	if opts.Heuristic == "" {
		opts.Heuristic = "none"
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{
		difficulty: opts.Difficulty,
		depth:      opts.Depth,
		heuristic:  opts.Heuristic,
		evaluator:  evaluator,
		cache:      opts.Cache,
		rng:        opts.Rand,
	}, nil
}

func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// BestMove returns the column the computer should play. On a full board the
// result has no move and the caller must treat the game as drawn.
func (e *Engine) BestMove(ctx context.Context, board *domain.Board) (SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return SearchResult{Column: NoColumn}, err
	}

	switch e.difficulty {
	case DifficultyEasy:
		e.mu.Lock()
		col := CalculateBestMoveEasy(board, domain.AI, e.rng)
		e.mu.Unlock()
		return SearchResult{Column: col}, nil
	case DifficultyMedium:
		return SearchResult{Column: calculateMediumMove(board, domain.AI)}, nil
	default:
		return e.searchBestMove(ctx, board), nil
	}
}

func (e *Engine) searchBestMove(ctx context.Context, board *domain.Board) SearchResult {
	key := CacheKey(board.Key(), e.depth, e.heuristic)

	if e.cache != nil {
		res, ok, err := e.cache.Get(ctx, key)
		if err != nil {
			log.Printf("[BOT] Cache lookup failed, searching instead: %v", err)
		} else if ok {
			return res
		}
	}

	start := time.Now()
	s := Searcher{Evaluator: e.evaluator}
	res := s.Search(board, e.depth, NegInf, PosInf, true)
	log.Printf("[BOT] depth %d: column %d score %d (%d nodes, %s)",
		e.depth, res.Column, res.Score, s.Nodes(), time.Since(start).Round(time.Millisecond))

	if e.cache != nil && res.HasMove() {
		if err := e.cache.Set(ctx, key, res); err != nil {
			log.Printf("[BOT] Failed to cache search result: %v", err)
		}
	}
	return res
}
