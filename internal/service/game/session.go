package game

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/connect4-minimax/internal/domain"
	"github.com/iamasit07/connect4-minimax/internal/service/bot"
	"github.com/iamasit07/connect4-minimax/pkg/uid"
)

// BotPlayer chooses the computer's column for a position.
type BotPlayer interface {
	BestMove(ctx context.Context, board *domain.Board) (bot.SearchResult, error)
}

const ErrBotNoMove domain.Error = "bot returned no move on an active board"

// GameSession is one human-vs-computer match. The human plays domain.Human and
// the computer domain.AI.
type GameSession struct {
	GameID     string
	Game       *domain.Game
	CreatedAt  time.Time
	FinishedAt time.Time
	bot        BotPlayer
	mu         sync.Mutex
}

func NewGameSession(first domain.PlayerID, b BotPlayer) (*GameSession, error) {
	gameID, err := uid.GenerateGameID()
	if err != nil {
		return nil, err
	}

	gs := &GameSession{
		GameID:    gameID,
		Game:      domain.NewGame(first),
		CreatedAt: time.Now(),
		bot:       b,
	}

	log.Printf("[SESSION] Created session %s, %s moves first", gameID, gs.Game.CurrentPlayer)
	return gs, nil
}

// FirstPlayer resolves the FIRST_PLAYER setting.
func FirstPlayer(setting string, rng *rand.Rand) domain.PlayerID {
	switch setting {
	case "human":
		return domain.Human
	case "ai":
		return domain.AI
	}
	if rng.Intn(2) == 0 {
		return domain.Human
	}
	return domain.AI
}

// HandleMove applies the human's column and returns the row it landed on.
func (gs *GameSession) HandleMove(column int) (int, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	row, err := gs.Game.MakeMove(domain.Human, column)
	if err != nil {
		return -1, err
	}
	gs.afterMove(domain.Human, column)
	return row, nil
}

// PlayBotMove asks the bot for a column and applies it.
func (gs *GameSession) PlayBotMove(ctx context.Context) (int, int, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsFinished() {
		return -1, -1, domain.ErrGameFinished
	}
	if gs.Game.CurrentPlayer != domain.AI {
		return -1, -1, domain.ErrNotYourTurn
	}

	board := domain.CopyBoard(gs.Game.Board)
	res, err := gs.bot.BestMove(ctx, board)
	if err != nil {
		return -1, -1, fmt.Errorf("bot move: %w", err)
	}
	if !res.HasMove() {
		return -1, -1, ErrBotNoMove
	}

	row, err := gs.Game.MakeMove(domain.AI, res.Column)
	if err != nil {
		return -1, -1, fmt.Errorf("bot played column %d: %w", res.Column, err)
	}
	gs.afterMove(domain.AI, res.Column)
	return res.Column, row, nil
}

// caller must hold gs.mu
func (gs *GameSession) afterMove(player domain.PlayerID, column int) {
	log.Printf("[SESSION] %s: %s played column %d (move %d)", gs.GameID, player, column, gs.Game.MoveCount)
	if !gs.Game.IsFinished() {
		return
	}

	gs.FinishedAt = time.Now()
	duration := gs.FinishedAt.Sub(gs.CreatedAt).Round(time.Second)
	if gs.Game.Status == domain.StatusWon {
		log.Printf("[SESSION] %s finished: %s won after %d moves (%s)", gs.GameID, gs.Game.Winner, gs.Game.MoveCount, duration)
	} else {
		log.Printf("[SESSION] %s finished: draw after %d moves (%s)", gs.GameID, gs.Game.MoveCount, duration)
	}
}

// Board returns a copy of the current grid.
func (gs *GameSession) Board() domain.Board {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return *gs.Game.Board
}

// State reports whose turn it is and how the game stands.
func (gs *GameSession) State() (current domain.PlayerID, status domain.GameStatus, winner domain.PlayerID) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.CurrentPlayer, gs.Game.Status, gs.Game.Winner
}
