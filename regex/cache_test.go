package regex

import (
	"context"
	"testing"

	"github.com/dshills/eventrex/store"
)

func TestCacheReusesCompiledPattern(t *testing.T) {
	st := store.NewMemStore()
	c := NewCache(st, 4)
	ctx := context.Background()

	re1, err := c.Compile(ctx, "[0-9]+")
	if err != nil {
		t.Fatal(err)
	}
	re2, err := c.Compile(ctx, "[0-9]+")
	if err != nil {
		t.Fatal(err)
	}
	if re1 != re2 {
		t.Fatalf("expected the same *Regex instance from cache, got distinct pointers")
	}

	if _, err := st.LoadCompiled(ctx, "[0-9]+"); err != nil {
		t.Fatalf("expected compile to be recorded in the store: %v", err)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	st := store.NewMemStore()
	c := NewCache(st, 2)
	ctx := context.Background()

	if _, err := c.Compile(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Compile(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	// Touch "a" so "b" becomes the least recently used entry.
	if _, err := c.Compile(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Compile(ctx, "c"); err != nil {
		t.Fatal(err)
	}

	c.mu.Lock()
	_, hasB := c.entries["b"]
	_, hasA := c.entries["a"]
	_, hasC := c.entries["c"]
	c.mu.Unlock()

	if hasB {
		t.Fatalf("expected 'b' to be evicted as least recently used")
	}
	if !hasA || !hasC {
		t.Fatalf("expected 'a' and 'c' to remain cached")
	}
}
