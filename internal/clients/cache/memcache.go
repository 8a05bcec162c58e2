package cache

import (
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/logger"
)

const defaultBase = 10

type config interface {
	Hosts() []string
	TTLSeconds() int32
}

// MemcacheClient stores computed statistics. Entries of a user are never
// deleted one by one: every key embeds the user's generation, and bumping the
// generation orphans all of them at once.
type MemcacheClient struct {
	client *memcache.Client
	ttl    int32
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	if err := mc.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping memcached")
	}
	return &MemcacheClient{client: mc, ttl: config.TTLSeconds()}, nil
}

func generationKey(userID int64) string {
	return "gen:" + strconv.FormatInt(userID, defaultBase)
}

func (mc *MemcacheClient) Get(key string) ([]byte, bool, error) {
	item, err := mc.client.Get(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "cache get")
	}
	return item.Value, true, nil
}

func (mc *MemcacheClient) Set(key string, value []byte) error {
	return errors.Wrap(mc.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: mc.ttl,
	}), "cache set")
}

// Generation returns the current generation of the user's entries, starting
// one if there is none yet.
func (mc *MemcacheClient) Generation(userID int64) (uint64, error) {
	key := generationKey(userID)
	item, err := mc.client.Get(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return mc.startGeneration(key)
	}
	if err != nil {
		return 0, errors.Wrap(err, "cache generation")
	}
	gen, err := strconv.ParseUint(string(item.Value), defaultBase, 64)
	return gen, errors.Wrap(err, "cache generation")
}

func (mc *MemcacheClient) startGeneration(key string) (uint64, error) {
	gen := uint64(time.Now().UnixNano())
	err := mc.client.Add(&memcache.Item{
		Key:   key,
		Value: []byte(strconv.FormatUint(gen, defaultBase)),
	})
	if errors.Is(err, memcache.ErrNotStored) {
		// someone else started it first
		item, getErr := mc.client.Get(key)
		if getErr != nil {
			return 0, errors.Wrap(getErr, "cache generation")
		}
		gen, err = strconv.ParseUint(string(item.Value), defaultBase, 64)
		return gen, errors.Wrap(err, "cache generation")
	}
	if err != nil {
		return 0, errors.Wrap(err, "cache generation")
	}
	return gen, nil
}

// Bump invalidates every cached entry of the user.
func (mc *MemcacheClient) Bump(userID int64) error {
	logger.Info("invalidate cache", zap.Int64("userID", userID))

	key := generationKey(userID)
	_, err := mc.client.Increment(key, 1)
	if errors.Is(err, memcache.ErrCacheMiss) {
		_, err = mc.startGeneration(key)
	}
	return errors.Wrap(err, "cache bump")
}
