package lock

import (
	"context"
	"sync"
	"time"
)

// LocalLocker блокировка мастера внутри одного процесса, когда Redis выключен
type LocalLocker struct {
	mu      sync.Mutex
	locks   map[string]*localLock
	wait    time.Duration
	metrics Metrics
}

type localLock struct {
	ch   chan struct{}
	refs int
}

// NewLocalLocker wait <= 0 - ждать до отмены контекста
func NewLocalLocker(wait time.Duration, m Metrics) *LocalLocker {
	if m == nil {
		m = nopMetrics{}
	}
	return &LocalLocker{
		locks:   make(map[string]*localLock),
		wait:    wait,
		metrics: m,
	}
}

// WithStaffLock выполняет fn, удерживая блокировку мастера
func (l *LocalLocker) WithStaffLock(ctx context.Context, staffID string, fn func(ctx context.Context) error) error {
	entry := l.ref(staffID)
	defer l.unref(staffID, entry)

	var timeout <-chan time.Time
	if l.wait > 0 {
		timer := time.NewTimer(l.wait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case entry.ch <- struct{}{}:
	case <-timeout:
		l.metrics.IncLockFailure("local")
		return ErrLockNotAcquired
	case <-ctx.Done():
		l.metrics.IncLockFailure("local")
		return ctx.Err()
	}
	defer func() { <-entry.ch }()

	return fn(ctx)
}

func (l *LocalLocker) ref(staffID string) *localLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.locks[staffID]
	if !ok {
		entry = &localLock{ch: make(chan struct{}, 1)}
		l.locks[staffID] = entry
	}
	entry.refs++
	return entry
}

func (l *LocalLocker) unref(staffID string, entry *localLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, staffID)
	}
}
