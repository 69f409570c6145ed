package store

import (
	"testing"
)

func TestStore_PutGet(t *testing.T) {
	s := New()
	key := "select * from employees"
	val := "Result for OptimizedPlan(select * from employees)"

	s.Put(key, val)

	got, found := s.Get(key)
	if !found {
		t.Fatalf("expected key %s to be found", key)
	}
	if got != val {
		t.Errorf("expected value %s, got %s", val, got)
	}
}

func TestStore_PutExistingKeepsValue(t *testing.T) {
	s := New()
	s.Put("key", "first")
	s.Put("key", "second")

	got, found := s.Get("key")
	if !found {
		t.Fatal("key should be found")
	}
	if got != "first" {
		t.Errorf("cached value must never be overwritten, got %s", got)
	}
}

func TestStore_Counters(t *testing.T) {
	s := New()
	s.Put("key", "val")

	s.Get("key")     // hit
	s.Get("key")     // hit
	s.Get("missing") // miss

	stats := s.Stats()
	if stats.Hits != 2 {
		t.Errorf("expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
	if stats.Size != 1 {
		t.Errorf("expected size 1, got %d", stats.Size)
	}
}

func TestStore_RepeatedGetKeepsValue(t *testing.T) {
	s := New()
	s.Put("key", "val")

	for i := 0; i < 10; i++ {
		got, found := s.Get("key")
		if !found || got != "val" {
			t.Fatalf("iteration %d: got (%q, %v)", i, got, found)
		}
	}

	if hits := s.Stats().Hits; hits != 10 {
		t.Errorf("expected 10 hits, got %d", hits)
	}
}
