package model

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

var ErrLockTimeout = errors.New("timed out waiting for redis lock")

const (
	lockRetryInterval = time.Second / 20
	unlockTimeout     = 3 * time.Second
	// seconds
	defaultLockExpire = 10
)

type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, LockName string) *RedisLock {
	l := &RedisLock{
		RedisLock: redis.NewRedisLock(rds, LockName),
	}
	l.SetExpire(defaultLockExpire)
	return l
}

// Do runs f while holding the lock. ctx only bounds the acquisition; the
// lock is released on its own deadline, even when f fails or outlives ctx.
func (l *RedisLock) Do(ctx context.Context, f func() error) (err error) {
	if err = l.Lock(ctx); err != nil {
		return err
	}

	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), unlockTimeout)
		defer cancel()

		if unlockErr := l.UnLock(unlockCtx); err == nil {
			err = unlockErr
		}
	}()

	return f()
}

func (l *RedisLock) Lock(ctx context.Context) error {
	for {
		acquire, err := l.AcquireCtx(ctx)
		if err != nil {
			return err
		}

		if acquire {
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.Join(ErrLockTimeout, ctx.Err())
		case <-time.After(lockRetryInterval):
		}
	}
}

// UnLock releases the lock. Releasing a lock that already expired is not an
// error.
func (l *RedisLock) UnLock(ctx context.Context) error {
	_, err := l.ReleaseCtx(ctx)
	return err
}
