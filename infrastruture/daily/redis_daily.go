// Package daily stores the shared puzzle of the day in Redis, with a
// distributed lock so only one server instance generates it.
package daily

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/beka-birhanu/linetrace-api/puzzle"
	"github.com/beka-birhanu/linetrace-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	dailyKeyFmt = "linetrace:daily:%s"
	lockSuffix  = ":gen_lock"

	// Snapshots expire after two days; yesterday's puzzle stays
	// readable across midnight while a new one is generated.
	snapshotTTL = 48 * time.Hour
)

// RedisDailyStore implements i.DailyPuzzleStore. Snapshots are stored
// as JSON under a per-day key; creation runs under a redsync mutex.
type RedisDailyStore struct {
	client *redis.Client
	locker *redsync.Redsync
}

// NewRedisDailyStore initializes a RedisDailyStore with the provided
// Redis client.
func NewRedisDailyStore(client *redis.Client) (i.DailyPuzzleStore, error) {
	store := &RedisDailyStore{
		client: client,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

// GetOrCreate returns the stored snapshot for the day. When none
// exists, the creation callback runs inside a distributed lock and a
// second existence check, so concurrent instances agree on one puzzle.
func (rds *RedisDailyStore) GetOrCreate(ctx context.Context, day string, create func() (*puzzle.Snapshot, error)) (*puzzle.Snapshot, error) {
	key := fmt.Sprintf(dailyKeyFmt, day)

	if snapshot, err := rds.get(ctx, key); err != nil {
		return nil, err
	} else if snapshot != nil {
		return snapshot, nil
	}

	mutex := rds.locker.NewMutex(key + lockSuffix)
	if err := mutex.Lock(); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	// Another instance may have generated the puzzle while we waited.
	if snapshot, err := rds.get(ctx, key); err != nil {
		return nil, err
	} else if snapshot != nil {
		return snapshot, nil
	}

	snapshot, err := create()
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	if err := rds.client.Set(ctx, key, raw, snapshotTTL).Err(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// get reads and decodes the day's snapshot, returning nil when the key
// does not exist.
func (rds *RedisDailyStore) get(ctx context.Context, key string) (*puzzle.Snapshot, error) {
	raw, err := rds.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snapshot puzzle.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
