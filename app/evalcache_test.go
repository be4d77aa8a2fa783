package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gomokud/app/gomoku"
)

func TestMoveCache_RoundTrip(t *testing.T) {
	cache := MakeMoveCache(time.Minute)

	_, ok := cache.Get(0xdeadbeef)
	assert.False(t, ok)

	cache.Set(0xdeadbeef, gomoku.Tile{X: 15, Y: 16})

	move, ok := cache.Get(0xdeadbeef)
	assert.True(t, ok)
	assert.Equal(t, gomoku.Tile{X: 15, Y: 16}, move)

	// a different hash still misses
	_, ok = cache.Get(0xdeadbef0)
	assert.False(t, ok)
}

func TestMoveCache_ServesEngine(t *testing.T) {
	cache := MakeMoveCache(time.Minute)
	engine := gomoku.NewEngine(gomoku.Options{Cache: cache})

	_, err := engine.Start()
	assert.Nil(t, err)
	move, err := engine.Respond(gomoku.Tile{X: 15, Y: 16})
	assert.Nil(t, err)

	// a second engine at the same position takes the cached reply
	other := gomoku.NewEngine(gomoku.Options{Cache: cache})
	_, err = other.Start()
	assert.Nil(t, err)
	otherMove, err := other.Respond(gomoku.Tile{X: 15, Y: 16})
	assert.Nil(t, err)

	assert.Equal(t, move, otherMove)
}
