package cache

import (
	"context"
	"fmt"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Info("Successfully connected to Redis")

	return client, nil
}

// TokenRegistry reads the access-token allow list written by the identity
// service under access_token:<user_id>:<token_id>.
type TokenRegistry struct {
	client *redis.Client
}

func NewTokenRegistry(client *redis.Client) *TokenRegistry {
	return &TokenRegistry{client: client}
}

func (r *TokenRegistry) IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	key := fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
