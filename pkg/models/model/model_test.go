package model

import (
	"context"
	"errors"
	"flag"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
)

func TestConfig(t *testing.T) {
	assert.Equal(t, On, NewConfig("on"))
	assert.Equal(t, Off, NewConfig("whatever"))

	var c Config
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&c, "AIFirst", "")
	require.NoError(t, fs.Parse([]string{"-AIFirst", "ON"}))
	assert.Equal(t, On, c)
	assert.Equal(t, "On", c.String())

	assert.Error(t, c.Set("maybe"))
}

func TestLockDoReleasesOnError(t *testing.T) {
	rds := redistest.CreateRedis(t)
	l := NewLock(rds, "test-lock")

	failure := errors.New("failed")
	assert.ErrorIs(t, l.Do(context.Background(), func() error { return failure }), failure)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, NewLock(rds, "test-lock").Do(ctx, func() error { return nil }))
}

func TestLockDoOutlivesAcquireContext(t *testing.T) {
	rds := redistest.CreateRedis(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, NewLock(rds, "slow").Do(ctx, func() error {
		<-ctx.Done()
		return nil
	}))

	acquired, err := redis.NewRedisLock(rds, "slow").Acquire()
	require.NoError(t, err)
	assert.True(t, acquired, "lock released after the acquire deadline passed")
}

func TestLockExcludes(t *testing.T) {
	rds := redistest.CreateRedis(t)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err := NewLock(rds, "shared").Do(ctx, func() error {
				mu.Lock()
				inside++
				maxSeen = max(maxSeen, inside)
				mu.Unlock()

				time.Sleep(10 * time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
}

func TestLockTimeout(t *testing.T) {
	rds := redistest.CreateRedis(t)
	holder := NewLock(rds, "busy")
	require.NoError(t, holder.Lock(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err := NewLock(rds, "busy").Lock(ctx)
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, holder.UnLock(context.Background()))
}
