package otp

import (
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type storeFactory struct {
	name string
	new  func(t *testing.T, clk *fakeClock) Store
}

var storeFactories = []storeFactory{
	{
		name: "memory",
		new: func(t *testing.T, _ *fakeClock) Store {
			return NewMemoryStore()
		},
	},
	{
		name: "redis",
		new: func(t *testing.T, clk *fakeClock) Store {
			mr := miniredis.RunT(t)
			rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			t.Cleanup(func() { _ = rdb.Close() })
			return NewRedisStore(rdb, clk, time.Hour)
		},
	},
}

// newTestService returns a service whose generator hands out codes in order.
func newTestService(store Store, clk *fakeClock, codes ...string) *svc {
	var mu sync.Mutex
	return &svc{
		store:  store,
		clock:  clk,
		pepper: "test-pepper",
		genOTP: func() (string, error) {
			mu.Lock()
			defer mu.Unlock()
			code := codes[0]
			if len(codes) > 1 {
				codes = codes[1:]
			}
			return code, nil
		},
	}
}
