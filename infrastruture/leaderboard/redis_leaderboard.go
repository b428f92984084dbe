// Package leaderboard tracks solve counts in a Redis sorted set.
package leaderboard

import (
	"context"

	"github.com/beka-birhanu/linetrace-api/service/i"
	"github.com/redis/go-redis/v9"
)

const defaultKey = "linetrace:leaderboard"

// RedisLeaderboard implements i.Leaderboard on a Redis sorted set
// keyed by player name with the solve count as score.
type RedisLeaderboard struct {
	client *redis.Client
	key    string
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided
// Redis client. An empty key falls back to the default.
func NewRedisLeaderboard(client *redis.Client, key string) (i.Leaderboard, error) {
	if key == "" {
		key = defaultKey
	}
	return &RedisLeaderboard{
		client: client,
		key:    key,
	}, nil
}

// RecordSolve increments the player's solve count.
func (rl *RedisLeaderboard) RecordSolve(ctx context.Context, player string) error {
	return rl.client.ZIncrBy(ctx, rl.key, 1, player).Err()
}

// Top returns up to n players ordered by solve count, best first.
func (rl *RedisLeaderboard) Top(ctx context.Context, n int64) ([]i.Score, error) {
	if n <= 0 {
		return nil, nil
	}

	members, err := rl.client.ZRevRangeWithScores(ctx, rl.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]i.Score, 0, len(members))
	for _, m := range members {
		player, ok := m.Member.(string)
		if !ok {
			continue
		}
		scores = append(scores, i.Score{Player: player, Solved: int64(m.Score)})
	}
	return scores, nil
}
