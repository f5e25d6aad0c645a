// Package redis provides webhook retry de-duplication backed by Redis.
// The provider redelivers webhooks aggressively on perceived failure, so a
// message id seen recently is dropped before dispatch.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// seenTTL bounds how long message ids are remembered. Provider redeliveries
// stop well within this window.
const seenTTL = 24 * time.Hour

type Client struct {
	rdb *redis.Client
	ctx context.Context
}

func NewClient(addr, password string, db int) Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	client := Client{
		rdb: rdb,
		ctx: context.Background(),
	}

	if err := client.Ping(); err != nil {
		log.Fatal().Err(err).
			Str("addr", addr).
			Int("db", db).
			Msg("Redis connection failed")
	} else {
		log.Info().
			Str("addr", addr).
			Int("db", db).
			Msg("Redis connected successfully")
	}

	return client
}

func (c *Client) Ping() error {
	return c.rdb.Ping(c.ctx).Err()
}

// MarkSeen records a message id and reports whether it had been seen
// before. The first caller for an id gets false; redeliveries get true.
func (c *Client) MarkSeen(messageID string) (bool, error) {
	key := fmt.Sprintf("seen_message:%s", messageID)

	created, err := c.rdb.SetNX(c.ctx, key, 1, seenTTL).Result()
	if err != nil {
		return false, err
	}

	return !created, nil
}
