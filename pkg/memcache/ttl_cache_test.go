package memcache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestTTLCacheExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewTTLCache[string, int](time.Minute).WithClock(clock.Now)

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	clock.Advance(59 * time.Second)
	_, ok = c.Get("a")
	assert.True(t, ok)

	clock.Advance(2 * time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestTTLCachePurge(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := NewTTLCache[int, bool](time.Minute).WithClock(clock.Now)

	for i := range 5 {
		c.Set(i, true)
	}
	clock.Advance(30 * time.Second)
	c.Set(99, true)
	clock.Advance(45 * time.Second)

	assert.Equal(t, 5, c.Purge())
	assert.Equal(t, 1, c.Len())
}

func TestTTLCacheJanitorEvictsUnreadKeys(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := NewTTLCache[string, int](time.Minute).WithClock(clock.Now)

	for i := range 3 {
		c.Set(fmt.Sprintf("once-%d", i), i)
	}
	clock.Advance(2 * time.Minute)
	c.Set("fresh", 1)

	stop := c.StartJanitor(5 * time.Millisecond)
	defer stop()

	assert.Eventually(t, func() bool { return c.Len() == 1 }, time.Second, 5*time.Millisecond)
	v, ok := c.Get("fresh")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	stop()
	stop()
}

func TestTTLCacheConcurrentAccess(t *testing.T) {
	c := NewTTLCache[string, int](time.Minute)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k%d", j%10)
				c.Set(key, i)
				c.Get(key)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, c.Len())
}
