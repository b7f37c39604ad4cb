package cache

import (
	"fmt"
	"sync"
	"testing"

	"subburst/internal/testutil"
)

func TestNewLRU(t *testing.T) {
	t.Run("creates set with specified capacity", func(t *testing.T) {
		c := NewLRU(100)
		testutil.AssertEqual(t, c.Capacity(), 100, "capacity should match")
		testutil.AssertEqual(t, c.Size(), 0, "new set should be empty")
	})

	t.Run("uses default capacity for invalid values", func(t *testing.T) {
		testutil.AssertEqual(t, NewLRU(0).Capacity(), DefaultCapacity, "zero")
		testutil.AssertEqual(t, NewLRU(-10).Capacity(), DefaultCapacity, "negative")
	})
}

func TestLRU_Add(t *testing.T) {
	c := NewLRU(10)

	testutil.AssertTrue(t, c.Add("www"), "first add is new")
	testutil.AssertFalse(t, c.Add("www"), "second add is a repeat")
	testutil.AssertTrue(t, c.Add("api"), "different key is new")
	testutil.AssertEqual(t, c.Size(), 2, "size")
	testutil.AssertTrue(t, c.Contains("www"), "contains")
	testutil.AssertFalse(t, c.Contains("mail"), "missing key")
}

func TestLRU_Eviction(t *testing.T) {
	t.Run("evicts least recently used", func(t *testing.T) {
		c := NewLRU(3)
		c.Add("a")
		c.Add("b")
		c.Add("c")
		c.Add("d")

		testutil.AssertFalse(t, c.Contains("a"), "oldest evicted")
		testutil.AssertEqual(t, c.Size(), 3, "size capped")
	})

	t.Run("repeat refreshes recency", func(t *testing.T) {
		c := NewLRU(3)
		c.Add("a")
		c.Add("b")
		c.Add("c")
		c.Add("a") // a pasa a ser el más reciente
		c.Add("d")

		testutil.AssertTrue(t, c.Contains("a"), "refreshed key kept")
		testutil.AssertFalse(t, c.Contains("b"), "b became the oldest")
	})

	t.Run("evicted key is accepted again", func(t *testing.T) {
		c := NewLRU(1)
		c.Add("a")
		c.Add("b")
		testutil.AssertTrue(t, c.Add("a"), "a was evicted")
	})
}

func TestLRU_Clear(t *testing.T) {
	c := NewLRU(10)
	c.Add("a")
	c.Add("b")
	c.Clear()

	testutil.AssertEqual(t, c.Size(), 0, "cleared")
	testutil.AssertTrue(t, c.Add("a"), "usable after clear")
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU(1000)
	var wg sync.WaitGroup
	var mu sync.Mutex
	newKeys := 0

	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if c.Add(fmt.Sprintf("key-%d", i)) {
					mu.Lock()
					newKeys++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, newKeys, 100, "each key reported new exactly once")
	testutil.AssertEqual(t, c.Size(), 100, "size")
}
