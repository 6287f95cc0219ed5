package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrLockTimeout is returned when a lock could not be taken within the wait budget.
var ErrLockTimeout = errors.New("timed out waiting for lock")

// releaseLockScript deletes the lock key only while it still holds our token,
// so an expired lock taken over by another instance is never released by us.
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	RedisLockKeyPrefix = "availability:lock:"

	lockRetryInterval = 50 * time.Millisecond

	// Interval for cleaning up stale key locks
	lockCleanupInterval = 10 * time.Minute

	// How long a key lock must be unused before cleanup
	lockStaleThreshold = 10 * time.Minute
)

// SlotLockService serializes work on a key (a pattern, a slot) across
// goroutines and, when Redis is configured, across service instances.
//
// Lock ordering: the in-process lock is taken first, then the Redis lock.
// Waiters in the same process therefore never poll Redis against each other.
type SlotLockService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
	wait        time.Duration

	keyLocks sync.Map // map[string]*keyLock

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// keyLock is a mutex that supports waiting with a deadline.
type keyLock struct {
	sem      chan struct{}
	lastUsed atomic.Int64 // Unix timestamp
}

// NewSlotLockService starts the background cleanup goroutine; call Stop
// during shutdown. A nil redisClient restricts locking to this process.
func NewSlotLockService(redisClient *redis.Client, log *logrus.Logger, ttl, wait time.Duration) *SlotLockService {
	svc := &SlotLockService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
		wait:        wait,
		stopChan:    make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupLoop()

	return svc
}

// Stop is safe to call multiple times.
func (s *SlotLockService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("SlotLockService stopped")
	}
}

// Lock blocks until key is held or the wait budget runs out. The returned
// function releases the lock and must be called exactly once.
func (s *SlotLockService) Lock(ctx context.Context, key string) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, s.wait)
	defer cancel()

	kl, err := s.lockLocal(ctx, key)
	if err != nil {
		return nil, err
	}

	if s.redisClient == nil {
		return func() { kl.unlock() }, nil
	}

	token := uuid.NewString()
	redisKey := RedisLockKeyPrefix + key
	if err := s.acquireRedis(ctx, redisKey, token); err != nil {
		kl.unlock()
		return nil, err
	}

	return func() {
		// The caller's context may already be cancelled; release regardless.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseLockScript.Run(releaseCtx, s.redisClient, []string{redisKey}, token).Err(); err != nil {
			s.log.Warnf("Failed to release redis lock %s: %+v", redisKey, err)
		}
		kl.unlock()
	}, nil
}

func (s *SlotLockService) lockLocal(ctx context.Context, key string) (*keyLock, error) {
	for {
		kl := s.getKeyLock(key)
		select {
		case kl.sem <- struct{}{}:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, key)
		}

		// Cleanup may have dropped this lock from the map while we waited on it.
		if current, ok := s.keyLocks.Load(key); ok && current == kl {
			kl.lastUsed.Store(time.Now().Unix())
			return kl, nil
		}
		kl.unlock()
	}
}

func (s *SlotLockService) acquireRedis(ctx context.Context, key, token string) error {
	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := s.redisClient.SetNX(ctx, key, token, s.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("%w: %s", ErrLockTimeout, key)
			}
			s.log.Warnf("Failed to acquire redis lock %s: %+v", key, err)
			return fmt.Errorf("acquire redis lock %s: %w", key, err)
		}
		if ok {
			return nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return fmt.Errorf("%w: %s", ErrLockTimeout, key)
		}
	}
}

func (s *SlotLockService) getKeyLock(key string) *keyLock {
	kl, _ := s.keyLocks.LoadOrStore(key, &keyLock{sem: make(chan struct{}, 1)})
	result := kl.(*keyLock)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

func (kl *keyLock) unlock() {
	<-kl.sem
}

func (s *SlotLockService) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(lockCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Lock cleanup goroutine stopping")
			return
		case <-ticker.C:
			s.cleanupStaleLocks(time.Now().Add(-lockStaleThreshold))
		}
	}
}

// cleanupStaleLocks drops key locks unused since cutoff. A lock is only
// inspected while held so lastUsed cannot move underneath the check.
func (s *SlotLockService) cleanupStaleLocks(cutoff time.Time) int {
	var cleaned int

	s.keyLocks.Range(func(key, value any) bool {
		kl, ok := value.(*keyLock)
		if !ok {
			return true
		}

		select {
		case kl.sem <- struct{}{}:
			if kl.lastUsed.Load() < cutoff.Unix() {
				s.keyLocks.Delete(key)
				cleaned++
			}
			kl.unlock()
		default:
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d stale key locks", cleaned)
	}
	return cleaned
}
