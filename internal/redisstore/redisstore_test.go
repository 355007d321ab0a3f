package redisstore

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/thenoetrevino/todos/internal/models"
	"github.com/thenoetrevino/todos/internal/storage"
)

func startRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestBackendGetSetDelete(t *testing.T) {
	mr, client := startRedis(t)
	ctx := context.Background()
	b := New(client, "test:")

	if _, err := b.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want storage.ErrNotFound", err)
	}

	if err := b.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, err := mr.Get("test:k"); err != nil || got != "v" {
		t.Fatalf("redis value = %q, %v; want prefixed key holding \"v\"", got, err)
	}

	got, err := b.Get(ctx, "k")
	if err != nil || got != "v" {
		t.Fatalf("Get(k) = %q, %v; want \"v\"", got, err)
	}

	if err := b.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if mr.Exists("test:k") {
		t.Fatal("expected key to be deleted")
	}
}

func TestLocalStorageOverRedis(t *testing.T) {
	_, client := startRedis(t)
	ctx := context.Background()
	store := storage.NewLocalStorage(New(client, DefaultPrefix), "")

	todo := models.NewTodo(1, models.WithTitle("From redis"))
	if err := store.Save(ctx, todo); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || *loaded[0] != *todo {
		t.Fatalf("Load = %+v, want [%+v]", loaded, todo)
	}
}

func TestBackendUnavailable(t *testing.T) {
	mr, client := startRedis(t)
	ctx := context.Background()
	b := New(client, "")
	mr.Close()

	if err := b.Set(ctx, "k", "v"); err == nil {
		t.Fatal("expected an error once redis is gone")
	}
}

func TestDialAndClose(t *testing.T) {
	mr, _ := startRedis(t)
	ctx := context.Background()

	b, err := Dial(ctx, Options{Addr: mr.Addr(), Prefix: "dial:"})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	if err := b.Set(ctx, "x", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !mr.Exists("dial:x") {
		t.Error("expected prefixed key to exist")
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestDialUnreachable(t *testing.T) {
	mr, _ := startRedis(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := Dial(context.Background(), Options{Addr: addr}); err == nil {
		t.Fatal("expected Dial to fail against a closed server")
	}
}
