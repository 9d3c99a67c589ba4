package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/deopraglabs/prysme/pkg/retry"
)

const (
	keyPrefix           = "lock:"
	defaultPollInterval = 50 * time.Millisecond
	releaseTimeout      = 2 * time.Second
)

var errBusy = errors.New("lock busy")

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

// RedisLocker holds locks as Redis keys set with NX and a TTL, so a
// crashed holder cannot block a key for longer than the TTL.
type RedisLocker struct {
	client       *redis.Client
	ttl          time.Duration
	wait         time.Duration
	pollInterval time.Duration
	logger       *zap.SugaredLogger
}

// NewRedisLocker creates a RedisLocker. wait bounds how long Lock polls
// for a contended key.
func NewRedisLocker(client *redis.Client, ttl, wait time.Duration, logger *zap.SugaredLogger) *RedisLocker {
	return &RedisLocker{
		client:       client,
		ttl:          ttl,
		wait:         wait,
		pollInterval: defaultPollInterval,
		logger:       logger,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	cfg := retry.PollConfig(l.pollInterval, l.wait)
	cfg.RetryIf = func(err error) bool { return errors.Is(err, errBusy) }

	err := retry.Do(ctx, cfg, func() error {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return err
		}
		if !ok {
			return errBusy
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errBusy) {
			return nil, notAcquired(key, nil)
		}
		if ctx.Err() != nil {
			return nil, notAcquired(key, err)
		}
		l.logger.Errorw("Failed to acquire lock", "key", key, "error", err)
		return nil, err
	}

	l.logger.Debugw("Lock acquired", "key", key)

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
				l.logger.Warnw("Failed to release lock", "key", key, "error", err)
			}
		})
	}, nil
}
