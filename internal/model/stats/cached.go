package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/utils"
)

type statsCache interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Generation(userID int64) (uint64, error)
	Bump(userID int64) error
}

type computer interface {
	Compute(ctx context.Context, userID int64, period Period, ref time.Time) (*Stats, error)
}

// Cached serves statistics from the cache when it can. The cache is an
// optimisation only: any cache failure falls through to the aggregator.
type Cached struct {
	next  computer
	cache statsCache
}

func NewCached(next computer, cache statsCache) *Cached {
	return &Cached{next: next, cache: cache}
}

// CacheKey identifies one result. The generation changes on every
// invalidation of the user, so stale entries are simply never read again.
func CacheKey(userID int64, gen uint64, period Period, refDay time.Time) string {
	return fmt.Sprintf("stats:%d:%d:%s:%s", userID, gen, period, utils.FormatDate(refDay))
}

func (c *Cached) Compute(ctx context.Context, userID int64, period Period, ref time.Time) (*Stats, error) {
	if !period.Valid() {
		return c.next.Compute(ctx, userID, period, ref)
	}

	gen, err := c.cache.Generation(userID)
	if err != nil {
		countCache("error")
		logger.Warn("cannot read cache generation", zap.Int64("userID", userID), zap.Error(err))
		return c.next.Compute(ctx, userID, period, ref)
	}
	key := CacheKey(userID, gen, period, utils.Day(ref))

	if raw, ok, err := c.cache.Get(key); err != nil {
		countCache("error")
		logger.Warn("cannot read cached stats", zap.String("key", key), zap.Error(err))
	} else if ok {
		var res Stats
		if err = json.Unmarshal(raw, &res); err == nil {
			countCache("hit")
			return &res, nil
		}
		countCache("error")
		logger.Warn("cannot decode cached stats", zap.String("key", key), zap.Error(err))
	} else {
		countCache("miss")
	}

	res, err := c.next.Compute(ctx, userID, period, ref)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(res)
	if err != nil {
		logger.Warn("cannot encode stats", zap.Error(err))
		return res, nil
	}
	if err = c.cache.Set(key, raw); err != nil {
		logger.Warn("cannot cache stats", zap.String("key", key), zap.Error(err))
	}
	return res, nil
}

// Invalidate drops every cached result of the user.
func (c *Cached) Invalidate(_ context.Context, userID int64) error {
	return c.cache.Bump(userID)
}

type generationBumper interface {
	Bump(userID int64) error
}

// Invalidator drops cached results for processes that never compute any.
type Invalidator struct {
	cache generationBumper
}

func NewInvalidator(cache generationBumper) *Invalidator {
	return &Invalidator{cache: cache}
}

func (i *Invalidator) Invalidate(_ context.Context, userID int64) error {
	return i.cache.Bump(userID)
}
