package app

import (
	"context"
	"encoding/binary"
	"log/slog"
	"time"

	"github.com/coocood/freecache"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	freecachestore "github.com/eko/gocache/store/freecache/v4"

	"gomokud/app/gomoku"
)

const evalCacheBytes = 16 * 1024 * 1024

// MoveCache remembers the move chosen for a position hash so repeated
// positions across sessions skip the scoring pass. Entries are best effort:
// a cache failure is logged and the caller recomputes.
type MoveCache struct {
	store *cache.Cache[[]byte]
}

func MakeMoveCache(ttl time.Duration) MoveCache {
	freeCache := freecachestore.NewFreecache(freecache.NewCache(evalCacheBytes), store.WithExpiration(ttl))
	return MoveCache{store: cache.New[[]byte](freeCache)}
}

func (c MoveCache) Get(hash uint64) (gomoku.Tile, bool) {
	value, err := c.store.Get(context.Background(), hashKey(hash))
	if err != nil || len(value) != 2 {
		return gomoku.Tile{}, false
	}
	return gomoku.Tile{X: int(value[0]), Y: int(value[1])}, true
}

func (c MoveCache) Set(hash uint64, move gomoku.Tile) {
	value := []byte{byte(move.X), byte(move.Y)}
	if err := c.store.Set(context.Background(), hashKey(hash), value); err != nil {
		slog.Error("failed to set move in cache", "hash", hash, "error", err)
	}
}

func hashKey(hash uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], hash)
	return string(buf[:])
}
