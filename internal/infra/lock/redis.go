package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix  = "salon:staff-lock"
	defaultRetryDelay = 25 * time.Millisecond
)

// releaseScript удаляет ключ, только если он все еще принадлежит владельцу токена
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker блокировка мастера между инстансами сервиса: SET NX PX с токеном владельца
type RedisLocker struct {
	rdb     *redis.Client
	ttl     time.Duration
	wait    time.Duration
	prefix  string
	metrics Metrics
}

// NewRedisLocker ttl - время жизни ключа, wait - сколько ждать освобождения
func NewRedisLocker(rdb *redis.Client, ttl, wait time.Duration, m Metrics) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	if m == nil {
		m = nopMetrics{}
	}
	return &RedisLocker{
		rdb:     rdb,
		ttl:     ttl,
		wait:    wait,
		prefix:  defaultKeyPrefix,
		metrics: m,
	}
}

// WithStaffLock выполняет fn, удерживая блокировку мастера
func (l *RedisLocker) WithStaffLock(ctx context.Context, staffID string, fn func(ctx context.Context) error) error {
	key := l.prefix + ":" + staffID
	token := uuid.NewString()

	if err := l.acquire(ctx, key, token); err != nil {
		l.metrics.IncLockFailure("redis")
		return err
	}

	defer func() {
		// снимаем блокировку даже если запрос уже отменен
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.rdb, []string{key}, token).Err()
	}()

	return fn(ctx)
}

func (l *RedisLocker) acquire(ctx context.Context, key, token string) error {
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return fmt.Errorf("lock: redis SETNX %s: %w", key, err)
		}
		if ok {
			return nil
		}
		if !time.Now().Before(deadline) {
			return ErrLockNotAcquired
		}

		timer := time.NewTimer(defaultRetryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrLockNotAcquired
			}
			return ctx.Err()
		case <-timer.C:
		}
	}
}
