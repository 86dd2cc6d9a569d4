// Package cache holds a read-through Redis cache for project records.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/baharkarakas/sitecraft-backend/internal/models"
)

// Connect accepts either a redis:// URL or a bare host:port and pings the
// server before returning.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

type ProjectCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProjectCache(rdb *redis.Client, ttl time.Duration) *ProjectCache {
	return &ProjectCache{rdb: rdb, ttl: ttl}
}

func projectKey(id int32) string { return fmt.Sprintf("project:%d", id) }
func genKey(id int32) string     { return fmt.Sprintf("project:%d:gen", id) }

// genTTL outlives any queued fill; an expired generation reads as 0 and
// only makes older fills fail the comparison.
const genTTL = 24 * time.Hour

// Get reports a miss as (zero, false, nil).
func (c *ProjectCache) Get(ctx context.Context, id int32) (models.Project, bool, error) {
	raw, err := c.rdb.Get(ctx, projectKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Project{}, false, nil
	}
	if err != nil {
		return models.Project{}, false, err
	}
	var p models.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.Project{}, false, fmt.Errorf("decode cached project %d: %w", id, err)
	}
	return p, true, nil
}

// Version returns the invalidation generation of project id. Read it before
// loading the row and hand it to Fill.
func (c *ProjectCache) Version(ctx context.Context, id int32) (int64, error) {
	n, err := c.rdb.Get(ctx, genKey(id)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// Fill stores p only while the generation still equals version, so a fill
// that loses a race with Invalidate is dropped.
func (c *ProjectCache) Fill(ctx context.Context, p models.Project, version int64) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey(p.ID)).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, projectKey(p.ID), raw, c.ttl)
			return nil
		})
		return err
	}, genKey(p.ID))
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// Invalidate drops the entry and bumps the generation in one transaction.
func (c *ProjectCache) Invalidate(ctx context.Context, id int32) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, projectKey(id))
		pipe.Incr(ctx, genKey(id))
		pipe.Expire(ctx, genKey(id), genTTL)
		return nil
	})
	return err
}
