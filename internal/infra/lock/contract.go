package lock

import "errors"

// ErrLockNotAcquired возвращается, когда мастер занят другим запросом дольше времени ожидания
var ErrLockNotAcquired = errors.New("lock: staff lock is held by another request")

// Metrics счетчик неудачных захватов
type Metrics interface {
	IncLockFailure(backend string)
}

type nopMetrics struct{}

func (nopMetrics) IncLockFailure(string) {}
