package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	MinSearchDepth = 1
	MaxSearchDepth = 9
)

// Defaults are filled in by Default before the file and environment are read,
// not through env-default tags: cleanenv applies those to any field that is
// still zero, which would turn an explicit 0 into the default.
type Config struct {
	Bot struct {
		SearchDepth int    `yaml:"search_depth" env:"SEARCH_DEPTH" env-description:"minimax depth in plies (1-9, default 5)"`
		Difficulty  string `yaml:"difficulty" env:"BOT_DIFFICULTY" env-description:"easy, medium or hard (default hard)"`
		Heuristic   string `yaml:"heuristic" env:"BOT_HEURISTIC" env-description:"leaf evaluation: none or window (default none)"`
	} `yaml:"bot"`

	Game struct {
		FirstPlayer string `yaml:"first_player" env:"FIRST_PLAYER" env-description:"random, human or ai (default random)"`
		RandomSeed  int64  `yaml:"random_seed" env:"RANDOM_SEED" env-description:"seed for random choices, 0 uses the clock"`
	} `yaml:"game"`

	Cache struct {
		Size int `yaml:"size" env:"SEARCH_CACHE_SIZE" env-description:"in-memory search cache entries, 0 disables (default 4096)"`
	} `yaml:"cache"`

	Redis struct {
		URL        string `yaml:"url" env:"REDIS_URL" env-description:"host:port or redis:// url, empty disables"`
		Password   string `yaml:"password" env:"REDIS_PASSWORD"`
		DB         int    `yaml:"db" env:"REDIS_DB"`
		TTLMinutes int    `yaml:"ttl_minutes" env:"REDIS_TTL_MINUTES" env-description:"search cache expiry, 0 never expires (default 1440)"`
	} `yaml:"redis"`
}

func Default() Config {
	var cfg Config
	cfg.Bot.SearchDepth = 5
	cfg.Bot.Difficulty = "hard"
	cfg.Bot.Heuristic = "none"
	cfg.Game.FirstPlayer = "random"
	cfg.Cache.Size = 4096
	cfg.Redis.TTLMinutes = 1440
	return cfg
}

func (c *Config) RedisTTL() time.Duration {
	return time.Duration(c.Redis.TTLMinutes) * time.Minute
}

// Load reads an optional .env file, then the YAML file named by CONFIG_PATH if
// set, then the environment. Environment variables win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] No .env file found, using environment variables")
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Bot.SearchDepth < MinSearchDepth || c.Bot.SearchDepth > MaxSearchDepth {
		return fmt.Errorf("SEARCH_DEPTH must be between %d and %d, got %d", MinSearchDepth, MaxSearchDepth, c.Bot.SearchDepth)
	}
	switch c.Bot.Difficulty {
	case "easy", "medium", "hard":
	default:
		return fmt.Errorf("BOT_DIFFICULTY must be easy, medium or hard, got %q", c.Bot.Difficulty)
	}
	switch c.Bot.Heuristic {
	case "none", "window":
	default:
		return fmt.Errorf("BOT_HEURISTIC must be none or window, got %q", c.Bot.Heuristic)
	}
	switch c.Game.FirstPlayer {
	case "random", "human", "ai":
	default:
		return fmt.Errorf("FIRST_PLAYER must be random, human or ai, got %q", c.Game.FirstPlayer)
	}
	if c.Redis.TTLMinutes < 0 {
		return fmt.Errorf("REDIS_TTL_MINUTES must not be negative, got %d", c.Redis.TTLMinutes)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("SEARCH_CACHE_SIZE must not be negative, got %d", c.Cache.Size)
	}
	return nil
}

// Usage describes every supported environment variable.
func Usage() string {
	var cfg Config
	header := "Environment variables:"
	text, err := cleanenv.GetDescription(&cfg, &header)
	if err != nil {
		return header
	}
	return text
}
