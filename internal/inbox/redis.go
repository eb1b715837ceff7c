// Package inbox stores each printer's pending-order list. The redis
// implementation keeps one set per printer, so delivery and removal are
// idempotent by construction.
package inbox

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

const inboxKeyPrefix = "inbox:"

type RedisInbox struct {
	client *redis.Client
}

func NewRedisInbox(client *redis.Client) *RedisInbox {
	return &RedisInbox{client: client}
}

func inboxKey(printerID string) string {
	return inboxKeyPrefix + printerID
}

func (r *RedisInbox) Add(ctx context.Context, printerID, orderID string) error {
	if err := r.client.SAdd(ctx, inboxKey(printerID), orderID).Err(); err != nil {
		return fmt.Errorf("add order %s to inbox of %s: %w", orderID, printerID, err)
	}
	return nil
}

func (r *RedisInbox) Remove(ctx context.Context, printerID, orderID string) error {
	if err := r.client.SRem(ctx, inboxKey(printerID), orderID).Err(); err != nil {
		return fmt.Errorf("remove order %s from inbox of %s: %w", orderID, printerID, err)
	}
	return nil
}

func (r *RedisInbox) List(ctx context.Context, printerID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, inboxKey(printerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list inbox of %s: %w", printerID, err)
	}
	sort.Strings(ids)
	return ids, nil
}
