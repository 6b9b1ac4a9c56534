package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/exhibitboard/pkg/observability"
)

func TestNone(t *testing.T) {
	ctx := context.Background()
	defer None.Close()

	if err := None.Set(ctx, "artifact:abc", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if data, hit, err := None.Get(ctx, "artifact:abc"); err != nil || hit || data != nil {
		t.Errorf("Get() = %q, %v, %v, want a miss", data, hit, err)
	}
	if err := None.Delete(ctx, "artifact:abc"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}

	renders := 0
	for i := 0; i < 2; i++ {
		Fetch(ctx, None, "artifact:abc", KeyTypeArtifact, time.Hour, func() ([]byte, error) {
			renders++
			return []byte("<svg/>"), nil
		})
	}
	if renders != 2 {
		t.Errorf("render called %d times, want 2", renders)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	svg := k.ArtifactKey("doc123", ArtifactKeyOpts{Format: "svg"})
	png := k.ArtifactKey("doc123", ArtifactKeyOpts{Format: "png", Scale: 2})
	if svg == png {
		t.Error("different formats should produce different keys")
	}
	if !strings.HasPrefix(svg, KeyTypeArtifact+":") {
		t.Errorf("ArtifactKey = %q, want %s: prefix", svg, KeyTypeArtifact)
	}
	if k.ArtifactKey("doc123", ArtifactKeyOpts{Format: "svg"}) != svg {
		t.Error("ArtifactKey should be deterministic")
	}
	if k.ArtifactKey("doc456", ArtifactKeyOpts{Format: "svg"}) == svg {
		t.Error("different documents should produce different keys")
	}
	if !strings.HasPrefix(k.SummaryKey("doc123"), KeyTypeSummary+":") {
		t.Errorf("SummaryKey = %q", k.SummaryKey("doc123"))
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "board:q1:")

	opts := ArtifactKeyOpts{Format: "pdf"}
	if got, want := scoped.ArtifactKey("h", opts), "board:q1:"+inner.ArtifactKey("h", opts); got != want {
		t.Errorf("ArtifactKey = %q, want %q", got, want)
	}
	if got := scoped.SummaryKey("h"); !strings.HasPrefix(got, "board:q1:summary:") {
		t.Errorf("SummaryKey = %q", got)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	if got, want := scoped.SummaryKey("h"), "prefix:"+NewDefaultKeyer().SummaryKey("h"); got != want {
		t.Errorf("SummaryKey = %q, want %q", got, want)
	}
}

func TestHashJSON(t *testing.T) {
	a, err := HashJSON(map[string]int{"a": 1, "b": 2})
	if err != nil {
		t.Fatal(err)
	}
	b, _ := HashJSON(map[string]int{"b": 2, "a": 1})
	if a != b {
		t.Error("HashJSON should not depend on map insertion order")
	}
	if _, err := HashJSON(func() {}); err == nil {
		t.Error("HashJSON(func) should fail")
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "artifacts"))
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Errorf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "k", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Errorf("Get(k) = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	c.Set(ctx, "k", []byte("x"), time.Nanosecond)
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	c.Set(ctx, "k", []byte("x"), 0)
	if err := os.WriteFile(c.path("k"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry = hit %v, err %v; want clean miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		c.Set(ctx, k, []byte(k), 0)
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir still has %d entries", len(entries))
	}

	os.RemoveAll(c.Dir())
	if n, err := c.Clear(); n != 0 || err != nil {
		t.Errorf("Clear(missing dir) = %d, %v", n, err)
	}
}

type countingHooks struct {
	hits, misses, sets int
	lastSize           int
}

func (h *countingHooks) OnCacheHit(context.Context, string)  { h.hits++ }
func (h *countingHooks) OnCacheMiss(context.Context, string) { h.misses++ }
func (h *countingHooks) OnCacheSet(_ context.Context, _ string, size int) {
	h.sets++
	h.lastSize = size
}

func TestFetch(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	renders := 0
	render := func() ([]byte, error) {
		renders++
		return []byte("rendered"), nil
	}

	for i := 0; i < 2; i++ {
		data, err := Fetch(ctx, c, "k", KeyTypeArtifact, DefaultTTL, render)
		if err != nil || string(data) != "rendered" {
			t.Fatalf("Fetch() = %q, %v", data, err)
		}
	}
	if renders != 1 {
		t.Errorf("render called %d times, want 1", renders)
	}
	if hooks.hits != 1 || hooks.misses != 1 || hooks.sets != 1 || hooks.lastSize != len("rendered") {
		t.Errorf("hooks = %+v", hooks)
	}
}

func TestFetchRenderError(t *testing.T) {
	ctx := context.Background()
	c := None
	want := errors.New("boom")
	if _, err := Fetch(ctx, c, "k", KeyTypeArtifact, 0, func() ([]byte, error) { return nil, want }); err != want {
		t.Errorf("Fetch() error = %v, want %v", err, want)
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedisCache(ctx, RedisOptions{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond})
	if err == nil {
		t.Fatal("NewRedisCache() should fail for an unreachable server")
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	// Non-nil error is wrapped
	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}

	// Error message is preserved
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	// Non-wrapped errors are not retryable
	if IsRetryable(ErrNotFound) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrNotFound
	})
	if err != ErrNotFound {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
