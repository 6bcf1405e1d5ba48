package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"MediSure/config/logger"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var Rdb *goredis.Client

func Connect(ctx context.Context, addr string, password string, db int) error {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("redis ping: %w", err)
	}

	Rdb = client
	logger.Log.Info("Connected to redis", zap.String("addr", addr))
	return nil
}

func Close() {
	if Rdb == nil {
		return
	}
	if err := Rdb.Close(); err != nil {
		logger.Log.Warn("Error while closing redis", zap.Error(err))
	}
	Rdb = nil
}

// Cache is a JSON read-through cache on top of a redis client.
type Cache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewCache(client *goredis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) SetCache(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

/*
* Returns false with a nil error when the key is absent
 */
func (c *Cache) GetCache(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}
