package otp

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	for _, f := range storeFactories {
		t.Run(f.name, func(t *testing.T) {
			ctx := context.Background()
			clk := newFakeClock()
			store := f.new(t, clk)

			ch := Challenge{
				ID:        "c-1",
				Identity:  "a@x.com",
				CodeHash:  "hash-1",
				IssuedAt:  clk.Now(),
				ExpiresAt: clk.Now().Add(ExpiryWindow),
			}

			t.Run("get missing", func(t *testing.T) {
				_, ok, err := store.Get(ctx, "nobody@x.com")
				require.NoError(t, err)
				assert.False(t, ok)
			})

			t.Run("set then get", func(t *testing.T) {
				require.NoError(t, store.Set(ctx, ch.Identity, ch))

				got, ok, err := store.Get(ctx, ch.Identity)
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, ch.ID, got.ID)
				assert.Equal(t, ch.CodeHash, got.CodeHash)
				assert.True(t, ch.ExpiresAt.Equal(got.ExpiresAt))
			})

			t.Run("set overwrites", func(t *testing.T) {
				replacement := ch
				replacement.ID = "c-2"
				replacement.Attempts = 0
				require.NoError(t, store.Set(ctx, ch.Identity, replacement))

				got, _, err := store.Get(ctx, ch.Identity)
				require.NoError(t, err)
				assert.Equal(t, "c-2", got.ID)
			})

			t.Run("update writes result", func(t *testing.T) {
				err := store.Update(ctx, ch.Identity, func(cur *Challenge) *Challenge {
					require.NotNil(t, cur)
					next := *cur
					next.Attempts = 3
					return &next
				})
				require.NoError(t, err)

				got, _, err := store.Get(ctx, ch.Identity)
				require.NoError(t, err)
				assert.Equal(t, 3, got.Attempts)
			})

			t.Run("update returning current keeps entry", func(t *testing.T) {
				err := store.Update(ctx, ch.Identity, func(cur *Challenge) *Challenge { return cur })
				require.NoError(t, err)

				got, ok, err := store.Get(ctx, ch.Identity)
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, 3, got.Attempts)
			})

			t.Run("update returning nil deletes", func(t *testing.T) {
				err := store.Update(ctx, ch.Identity, func(cur *Challenge) *Challenge { return nil })
				require.NoError(t, err)

				_, ok, err := store.Get(ctx, ch.Identity)
				require.NoError(t, err)
				assert.False(t, ok)
			})

			t.Run("update on missing sees nil", func(t *testing.T) {
				called := false
				err := store.Update(ctx, "ghost@x.com", func(cur *Challenge) *Challenge {
					called = true
					assert.Nil(t, cur)
					return nil
				})
				require.NoError(t, err)
				assert.True(t, called)
			})

			t.Run("delete is idempotent", func(t *testing.T) {
				require.NoError(t, store.Set(ctx, ch.Identity, ch))
				require.NoError(t, store.Delete(ctx, ch.Identity))
				require.NoError(t, store.Delete(ctx, ch.Identity))

				_, ok, err := store.Get(ctx, ch.Identity)
				require.NoError(t, err)
				assert.False(t, ok)
			})
		})
	}
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "old@x.com", Challenge{ExpiresAt: now.Add(-time.Second)}))
	require.NoError(t, store.Set(ctx, "edge@x.com", Challenge{ExpiresAt: now}))
	require.NoError(t, store.Set(ctx, "new@x.com", Challenge{ExpiresAt: now.Add(time.Minute)}))

	assert.Equal(t, 1, store.Sweep(now))
	assert.Equal(t, 2, store.Len())

	_, ok, _ := store.Get(ctx, "old@x.com")
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, "edge@x.com")
	assert.True(t, ok)
}

func TestMemoryStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "a@x.com", Challenge{}))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Update(ctx, "a@x.com", func(cur *Challenge) *Challenge {
				next := *cur
				next.Attempts++
				return &next
			})
		}()
	}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Set(ctx, fmt.Sprintf("other-%d@x.com", i), Challenge{})
		}(i)
	}
	wg.Wait()

	got, _, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Attempts)
	assert.Equal(t, 21, store.Len())
}
