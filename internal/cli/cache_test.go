package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCacheDirXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmp)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(tmp, "conveyor"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirHomeFallback(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}
	if !strings.HasSuffix(dir, "conveyor") {
		t.Errorf("cacheDir() = %q, should end with 'conveyor'", dir)
	}
	if !strings.Contains(dir, ".cache") {
		t.Errorf("cacheDir() = %q, should contain '.cache'", dir)
	}
}

func TestNewCacheDisabled(t *testing.T) {
	store, err := newCache(context.Background(), true)
	if err != nil {
		t.Fatalf("newCache(true) error: %v", err)
	}
	if store == nil {
		t.Fatal("newCache(true) returned nil")
	}
}

func TestNewCacheEnabled(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv(envRedisAddr, "")

	store, err := newCache(context.Background(), false)
	if err != nil {
		t.Fatalf("newCache(false) error: %v", err)
	}
	if store == nil {
		t.Fatal("newCache(false) returned nil")
	}
}

func TestNewCacheRedisEnv(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// With the address set, the Redis backend is selected; an unreachable
	// server must surface as an error instead of a silent file fallback.
	t.Setenv(envRedisAddr, "127.0.0.1:1")

	if _, err := newCache(ctx, false); err == nil {
		t.Error("newCache did not report the unreachable Redis backend")
	}
}

func TestNewCacheRedisEnvIgnoredWhenDisabled(t *testing.T) {
	t.Setenv(envRedisAddr, "127.0.0.1:1")

	store, err := newCache(context.Background(), true)
	if err != nil {
		t.Fatalf("newCache(true) error: %v", err)
	}
	if store == nil {
		t.Fatal("newCache(true) returned nil")
	}
}
