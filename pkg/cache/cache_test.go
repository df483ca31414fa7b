package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	_, found, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("null cache must never report a hit")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "artifact:abc", []byte("<svg/>"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, found, err := c.Get(ctx, "artifact:abc")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("expected cache hit")
	}
	if string(data) != "<svg/>" {
		t.Errorf("got %q, want %q", data, "<svg/>")
	}
}

func TestFileCacheMiss(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	_, found, err := c.Get(ctx, "never-set")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("expected cache miss")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "short-lived", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, found, err := c.Get(ctx, "short-lived")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("expired entry must report a miss")
	}
}

func TestFileCacheDelete(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, found, _ := c.Get(ctx, "key")
	if found {
		t.Error("deleted entry must report a miss")
	}

	// Deleting an absent key is not an error.
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of absent key failed: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("test data"))
	h2 := Hash([]byte("test data"))
	h3 := Hash([]byte("different data"))

	if h1 != h2 {
		t.Error("same input must produce same hash")
	}
	if h1 == h3 {
		t.Error("different input must produce different hash")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64", len(h1))
	}
}

func TestArtifactKey(t *testing.T) {
	opts := ArtifactKeyOpts{Theme: "midnight", View: "radial", Format: "svg", Width: 1920, Height: 1080, Scale: 2.0}

	k1 := ArtifactKey("aaa", opts)
	k2 := ArtifactKey("aaa", opts)
	if k1 != k2 {
		t.Error("same inputs must produce same key")
	}
	if !strings.HasPrefix(k1, "artifact:") {
		t.Errorf("key %q missing artifact prefix", k1)
	}

	if ArtifactKey("bbb", opts) == k1 {
		t.Error("different outline hash must change the key")
	}

	other := opts
	other.Theme = "clean"
	if ArtifactKey("aaa", other) == k1 {
		t.Error("different theme must change the key")
	}
}
