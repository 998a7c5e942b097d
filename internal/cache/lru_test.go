package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestLRUEvictsOldest(t *testing.T) {
	c := New[string, int](2)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Get("a") // a becomes MRU
	c.Add("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should have been evicted")
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("got %d,%v want 1,true", v, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
}

func TestLRUUpdateRemovePurge(t *testing.T) {
	c := New[string, string](3)
	c.Add("k", "v1")
	c.Add("k", "v2")
	if v, _ := c.Get("k"); v != "v2" {
		t.Fatalf("got %q, want %q", v, "v2")
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}

	c.Remove("k")
	c.Remove("missing")
	if _, ok := c.Get("k"); ok {
		t.Fatalf("k should be gone")
	}

	c.Add("x", "1")
	c.Add("y", "2")
	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("len after purge = %d", c.Len())
	}
	c.Add("z", "3")
	if v, ok := c.Get("z"); !ok || v != "3" {
		t.Fatalf("cache unusable after purge")
	}
}

func TestLRUConcurrent(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := fmt.Sprintf("%d-%d", g, i%20)
				c.Add(k, i)
				c.Get(k)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Fatalf("len = %d exceeds capacity", c.Len())
	}
}

func TestNewPanicsOnZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	New[int, int](0)
}
