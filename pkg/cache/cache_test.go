package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("Get(missing) = ok:%v err:%v, want miss", ok, err)
	}

	if err := c.Set(ctx, "key1", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, "key1")
	if err != nil || !ok {
		t.Fatalf("Get = ok:%v err:%v, want hit", ok, err)
	}
	if string(data) != "payload" {
		t.Errorf("Get = %q, want %q", data, "payload")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok, err := c.Get(ctx, "short"); ok || err != nil {
		t.Errorf("expired Get = ok:%v err:%v, want miss", ok, err)
	}
}

func TestFileCacheZeroTTLNeverExpires(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "forever"); !ok {
		t.Error("zero-TTL entry missing")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("x"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("deleted entry still present")
	}
	if err := c.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestFileCacheClear(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, key, []byte(key), time.Hour); err != nil {
			t.Fatalf("Set(%s): %v", key, err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear = %d, want 3", n)
	}
	for _, key := range []string{"a", "b", "c"} {
		if _, ok, _ := c.Get(ctx, key); ok {
			t.Errorf("entry %s survived Clear", key)
		}
	}
}

func TestFileCacheCorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("x"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := writeRaw(c, "key", []byte("not json")); err != nil {
		t.Fatalf("corrupting entry: %v", err)
	}
	if _, ok, err := c.Get(ctx, "key"); ok || err != nil {
		t.Errorf("corrupt Get = ok:%v err:%v, want silent miss", ok, err)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("x"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "key"); ok || err != nil {
		t.Errorf("NullCache Get = ok:%v err:%v, want permanent miss", ok, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestDefaultKeyerDeterministic(t *testing.T) {
	k := NewDefaultKeyer()
	opts := RecordsKeyOpts{ModuleCM: 150, HeightCM: 300, AreaTolerance: 0.05, MaxPasses: 3}

	a := k.RecordsKey("hash1", opts)
	b := k.RecordsKey("hash1", opts)
	if a != b {
		t.Errorf("same inputs produced different keys: %q vs %q", a, b)
	}

	if k.RecordsKey("hash2", opts) == a {
		t.Error("different program hash produced identical key")
	}

	changed := opts
	changed.ModuleCM = 100
	if k.RecordsKey("hash1", changed) == a {
		t.Error("different module produced identical key")
	}

	changed = opts
	changed.MaxPasses = 0
	if k.RecordsKey("hash1", changed) == a {
		t.Error("different pass count produced identical key")
	}
}

func TestDefaultKeyerStagesDisjoint(t *testing.T) {
	k := NewDefaultKeyer()
	if k.RecordsKey("same", RecordsKeyOpts{}) == k.ArtifactKey("same", ArtifactKeyOpts{}) {
		t.Error("records and artifact keys collide for identical input hash")
	}
}

func TestHashStable(t *testing.T) {
	a := Hash([]byte("room program"))
	b := Hash([]byte("room program"))
	if a != b {
		t.Errorf("Hash not deterministic: %q vs %q", a, b)
	}
	if a == Hash([]byte("other program")) {
		t.Error("distinct inputs share a hash")
	}
	if len(a) != 64 {
		t.Errorf("Hash length = %d, want 64 hex chars", len(a))
	}
}

// writeRaw overwrites the stored file for key with raw bytes.
func writeRaw(c *FileCache, key string, raw []byte) error {
	return os.WriteFile(c.path(key), raw, 0644)
}
