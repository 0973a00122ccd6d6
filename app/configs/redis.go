package configs

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func OpenRedis(ctx context.Context, env ENV, log logrus.FieldLogger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: env.RedisAddr,
		DB:   env.RedisDB,
	})

	maxRetries := 10
	for i := 0; i < maxRetries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()

		if err == nil {
			log.WithField("addr", env.RedisAddr).Info("Connected to redis")
			return rdb, nil
		}

		if i == maxRetries-1 {
			_ = rdb.Close()
			return nil, errors.Wrapf(err, "failed to connect to redis after %d retries", maxRetries)
		}

		backoff := time.Duration(1<<i) * time.Second
		if backoff > 30*time.Second {
			backoff = 30 * time.Second
		}
		log.WithError(err).Warnf("redis not ready, retry in %v (%d/%d)", backoff, i+1, maxRetries)

		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return rdb, nil
}
