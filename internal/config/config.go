package config

import (
	"github.com/courtbook/courtbook/internal/env"

	"go.uber.org/zap"
)

const (
	PortEnv     = "PORT"
	RedisURLEnv = "REDIS_URL"
	RootPathEnv = "ROOT_PATH"
)

type Config struct {
	Logger *zap.Logger

	Port int

	// RedisURL selects the durable snapshot backend. Empty means
	// in-memory storage - state lives for the process lifetime only.
	RedisURL string
}

func Load() (Config, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return Config{}, err
	}

	port := env.GetIntOrDefault(PortEnv, 8080)
	redisURL := env.GetStringOrDefault(RedisURLEnv, "")

	return Config{
		Logger:   logger,
		Port:     port,
		RedisURL: redisURL,
	}, nil
}
