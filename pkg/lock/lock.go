// Package lock provides the deployment mutex that keeps two concurrent
// deploys from seeding the same database at once.
//
//	locker, closeFn, err := lock.New(cfg.Lock, cfg.Redis)
//	release, err := locker.Acquire(ctx)
//	if errors.Is(err, lock.ErrLocked) { ... another deploy is running ... }
//	defer release(context.Background())
package lock

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/rentaldeploy/config"
)

// ErrLocked is returned by Acquire when another holder owns the lock.
var ErrLocked = errors.New("lock: held by another deployment")

// Release gives a lock back. It is safe to call after the lock expired.
type Release func(ctx context.Context) error

// Locker hands out a single named lock.
type Locker interface {
	Acquire(ctx context.Context) (Release, error)
}

// NoopLocker always succeeds. It is used when LOCK_DRIVER=none.
type NoopLocker struct{}

func (NoopLocker) Acquire(context.Context) (Release, error) {
	return func(context.Context) error { return nil }, nil
}

// New builds the Locker selected by cfg.Driver. The returned func closes
// any connection the locker opened.
func New(cfg config.Lock, rc config.Redis) (Locker, func() error, error) {
	switch cfg.Driver {
	case "", "none":
		return NoopLocker{}, func() error { return nil }, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     rc.Addr,
			Password: rc.Password,
			DB:       rc.DB,
		})
		return NewRedisLocker(client, cfg.Key, cfg.TTL), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("lock: unsupported LOCK_DRIVER %q (supported: none, redis)", cfg.Driver)
	}
}
