package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/core"
)

const (
	// DefaultUserTTL is how long a cached user stays valid
	DefaultUserTTL = 5 * time.Minute
	// cleanupInterval is how often expired entries are swept
	cleanupInterval = 5 * time.Minute
)

type cacheEntry struct {
	user      *entity.User
	expiresAt time.Time
}

// UserCache is an in-memory TTL cache for authenticated users.
// It keeps the auth middleware from hitting the database on every request.
type UserCache struct {
	mu           sync.RWMutex
	entries      map[uuid.UUID]cacheEntry
	ttl          time.Duration
	timeProvider core.TimeProvider
	logger       core.Logger
	stop         chan struct{}
	stopOnce     sync.Once
}

// NewUserCache creates a user cache and starts its background cleanup loop
func NewUserCache(ttl time.Duration, timeProvider core.TimeProvider, logger core.Logger) *UserCache {
	if ttl <= 0 {
		ttl = DefaultUserTTL
	}
	c := &UserCache{
		entries:      make(map[uuid.UUID]cacheEntry),
		ttl:          ttl,
		timeProvider: timeProvider,
		logger:       logger,
		stop:         make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Set stores a user until its TTL elapses
func (c *UserCache) Set(user *entity.User) {
	if user == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[user.ID] = cacheEntry{
		user:      user,
		expiresAt: c.timeProvider.Now().Add(c.ttl),
	}
}

// Get returns the cached user, or nil when absent or expired
func (c *UserCache) Get(userID uuid.UUID) *entity.User {
	c.mu.RLock()
	entry, ok := c.entries[userID]
	c.mu.RUnlock()

	if !ok {
		return nil
	}
	if c.timeProvider.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, userID)
		c.mu.Unlock()
		return nil
	}
	return entry.user
}

// Delete removes a user, e.g. after a profile update
func (c *UserCache) Delete(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
}

// Clear removes all entries
func (c *UserCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uuid.UUID]cacheEntry)
}

// Size returns the number of entries, including not yet swept expired ones
func (c *UserCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stop terminates the background cleanup loop
func (c *UserCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

func (c *UserCache) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

func (c *UserCache) cleanup() {
	now := c.timeProvider.Now()

	c.mu.Lock()
	cleaned := 0
	for id, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, id)
			cleaned++
		}
	}
	c.mu.Unlock()

	if cleaned > 0 {
		c.logger.Debug("User cache cleanup completed", map[string]any{
			"cleanedEntries": cleaned,
		})
	}
}
