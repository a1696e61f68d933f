package cache

import (
	"path/filepath"
	"testing"
)

func TestFSStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "blobs")
	store, err := NewFSStore(dir, ".json")
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}

	if _, ok, err := store.Get("abc123"); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	payload := []byte(`{"restaurant":"Blue Diner"}`)
	if err := store.Put("abc123", payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := store.Get("abc123")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if string(got) != string(payload) {
		t.Fatalf("round trip mangled payload: %s", got)
	}

	// Overwrite is last-writer-wins.
	if err := store.Put("abc123", []byte("v2")); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, _, _ = store.Get("abc123")
	if string(got) != "v2" {
		t.Fatalf("expected overwrite, got %s", got)
	}
}

func TestFSStoreExtensionNormalized(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), "bin")
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	if err := store.Put("ffff", []byte{1, 2, 3}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if got, ok, _ := store.Get("ffff"); !ok || len(got) != 3 {
		t.Fatalf("expected hit with 3 bytes, got ok=%v len=%d", ok, len(got))
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	val := []byte("original")
	if err := store.Put("k", val); err != nil {
		t.Fatalf("Put: %v", err)
	}
	val[0] = 'X'

	got, ok, _ := store.Get("k")
	if !ok || string(got) != "original" {
		t.Fatalf("store must copy values; got %q", got)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", store.Len())
	}
}
