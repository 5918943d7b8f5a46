package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

type countingMetrics struct {
	failures atomic.Int32
}

func (m *countingMetrics) IncLockFailure(string) {
	m.failures.Add(1)
}

func TestRedisLocker_ReleasesAfterRun(t *testing.T) {
	mr, rdb := newRedis(t)
	locker := NewRedisLocker(rdb, 5*time.Second, 0, nil)

	err := locker.WithStaffLock(context.Background(), "anna", func(ctx context.Context) error {
		assert.True(t, mr.Exists(defaultKeyPrefix+":anna"))
		return nil
	})

	require.NoError(t, err)
	assert.False(t, mr.Exists(defaultKeyPrefix+":anna"))
}

func TestRedisLocker_HeldByOther(t *testing.T) {
	mr, rdb := newRedis(t)
	m := &countingMetrics{}
	locker := NewRedisLocker(rdb, 5*time.Second, 50*time.Millisecond, m)

	require.NoError(t, mr.Set(defaultKeyPrefix+":anna", "someone-else"))

	called := false
	err := locker.WithStaffLock(context.Background(), "anna", func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrLockNotAcquired)
	assert.False(t, called)
	assert.Equal(t, int32(1), m.failures.Load())

	// чужой ключ не удаляется
	got, err := mr.Get(defaultKeyPrefix + ":anna")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRedisLocker_DoesNotDeleteForeignToken(t *testing.T) {
	mr, rdb := newRedis(t)
	locker := NewRedisLocker(rdb, 5*time.Second, 0, nil)

	err := locker.WithStaffLock(context.Background(), "anna", func(ctx context.Context) error {
		// ключ истек и был захвачен другим владельцем
		mr.Del(defaultKeyPrefix + ":anna")
		return mr.Set(defaultKeyPrefix+":anna", "new-owner")
	})
	require.NoError(t, err)

	got, err := mr.Get(defaultKeyPrefix + ":anna")
	require.NoError(t, err)
	assert.Equal(t, "new-owner", got)
}

func TestRedisLocker_DifferentStaffDoNotBlock(t *testing.T) {
	_, rdb := newRedis(t)
	locker := NewRedisLocker(rdb, 5*time.Second, 0, nil)

	err := locker.WithStaffLock(context.Background(), "anna", func(ctx context.Context) error {
		return locker.WithStaffLock(ctx, "bob", func(ctx context.Context) error { return nil })
	})
	assert.NoError(t, err)
}

func TestRedisLocker_TTL(t *testing.T) {
	mr, rdb := newRedis(t)
	locker := NewRedisLocker(rdb, 2*time.Second, 0, nil)

	err := locker.WithStaffLock(context.Background(), "anna", func(ctx context.Context) error {
		assert.Equal(t, 2*time.Second, mr.TTL(defaultKeyPrefix+":anna"))
		return nil
	})
	require.NoError(t, err)
}

func TestLocalLocker_Serializes(t *testing.T) {
	locker := NewLocalLocker(0, nil)

	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = locker.WithStaffLock(context.Background(), "anna", func(ctx context.Context) error {
				n := inside.Add(1)
				for {
					cur := maxInside.Load()
					if n <= cur || maxInside.CompareAndSwap(cur, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				inside.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
	assert.Empty(t, locker.locks)
}

func TestLocalLocker_Timeout(t *testing.T) {
	locker := NewLocalLocker(20*time.Millisecond, nil)

	err := locker.WithStaffLock(context.Background(), "anna", func(ctx context.Context) error {
		return locker.WithStaffLock(ctx, "anna", func(ctx context.Context) error { return nil })
	})

	assert.ErrorIs(t, err, ErrLockNotAcquired)
}

func TestLocalLocker_ContextCancelled(t *testing.T) {
	locker := NewLocalLocker(0, nil)
	ctx, cancel := context.WithCancel(context.Background())

	err := locker.WithStaffLock(ctx, "anna", func(inner context.Context) error {
		cancel()
		return locker.WithStaffLock(inner, "anna", func(context.Context) error { return nil })
	})

	assert.ErrorIs(t, err, context.Canceled)
}
