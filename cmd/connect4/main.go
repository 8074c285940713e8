package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect4-minimax/internal/config"
	"github.com/iamasit07/connect4-minimax/internal/repository/redis"
	"github.com/iamasit07/connect4-minimax/internal/service/bot"
	"github.com/iamasit07/connect4-minimax/internal/service/game"
	"github.com/iamasit07/connect4-minimax/internal/transport/console"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s\n\nPlay Connect Four against a minimax bot.\n\n%s\n", os.Args[0], config.Usage())
	}
	flag.Parse()

	// the board and prompts own stdout
	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cfg.Game.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cache, closeCache := buildCache(ctx, cfg)
	defer closeCache()

	engine, err := bot.NewEngine(bot.Options{
		Difficulty: bot.Difficulty(cfg.Bot.Difficulty),
		Depth:      cfg.Bot.SearchDepth,
		Heuristic:  cfg.Bot.Heuristic,
		Cache:      cache,
		Rand:       rng,
	})
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}
	log.Printf("[BOT] Difficulty %s, depth %d, heuristic %s", cfg.Bot.Difficulty, cfg.Bot.SearchDepth, cfg.Bot.Heuristic)

	session, err := game.NewGameSession(game.FirstPlayer(cfg.Game.FirstPlayer, rng), engine)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	driver := console.NewDriver(session, os.Stdin, os.Stdout)
	err = driver.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, console.ErrInputClosed), errors.Is(err, context.Canceled):
		log.Println("Game abandoned")
	default:
		closeCache()
		log.Fatalf("Game error: %v", err)
	}
}

// buildCache puts the in-process LRU in front of Redis. Either tier may be
// missing; Redis being unreachable only costs the shared tier.
func buildCache(ctx context.Context, cfg *config.Config) (bot.Cache, func()) {
	var tiers []bot.Cache
	closeFn := func() {}

	if cfg.Cache.Size > 0 {
		lruCache, err := bot.NewLRUCache(cfg.Cache.Size)
		if err != nil {
			log.Printf("[CACHE] Disabled in-memory cache: %v", err)
		} else {
			tiers = append(tiers, lruCache)
		}
	}

	if cfg.Redis.URL != "" {
		client, err := redis.Connect(ctx, redis.Options{
			URL:      cfg.Redis.URL,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Printf("[REDIS] Warning: %v. Falling back to in-memory cache only.", err)
		} else {
			store := redis.NewRedisCache(client)
			tiers = append(tiers, bot.NewRemoteCache(store, cfg.RedisTTL()))
			closeFn = func() {
				if err := store.Close(); err != nil {
					log.Printf("[REDIS] Error closing connection: %v", err)
				}
			}
		}
	}

	if len(tiers) == 0 {
		return nil, closeFn
	}
	return bot.NewTieredCache(tiers...), closeFn
}
