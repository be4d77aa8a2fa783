package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"gomokud/app/gomoku"
)

const DefaultSessionID = "default"
const SessionTtl = time.Hour * 12

// Session owns one match. The mutex serializes every request that touches
// the engine; the engine itself has no locking.
type Session struct {
	ID     string
	Engine *gomoku.Engine

	mu        sync.Mutex
	startedAt time.Time
}

// WithLock runs fn with exclusive access to the session's engine.
func (s *Session) WithLock(fn func(e *gomoku.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.Engine)
}

type SessionStore struct {
	cache *ttlcache.Cache[string, *Session]

	// engine construction inputs, shared by every session
	renju     bool
	book      *gomoku.Book
	moveCache gomoku.MoveCache
}

type SessionOptions struct {
	Renju     bool
	Book      *gomoku.Book
	MoveCache gomoku.MoveCache
	Ttl       time.Duration
}

func MakeSessionStore(opts SessionOptions) *SessionStore {
	ttl := opts.Ttl
	if ttl <= 0 {
		ttl = SessionTtl
	}
	cache := ttlcache.New[string, *Session](
		ttlcache.WithTTL[string, *Session](ttl),
	)
	cache.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *Session]) {
		slog.Info("evicted idle session", "session", item.Key(), "reason", int(reason))
	})
	go cache.Start()

	return &SessionStore{
		cache:     cache,
		renju:     opts.Renju,
		book:      opts.Book,
		moveCache: opts.MoveCache,
	}
}

// Get returns the session for id, creating it on first use. The empty id
// maps to the shared default session, which keeps single-match clients that
// never send a session field working.
func (ss *SessionStore) Get(id string) *Session {
	if id == "" {
		id = DefaultSessionID
	}

	if item := ss.cache.Get(id); item != nil {
		return item.Value()
	}

	session := &Session{
		ID: id,
		Engine: gomoku.NewEngine(gomoku.Options{
			Renju: ss.renju,
			Book:  ss.book,
			Cache: ss.moveCache,
		}),
		startedAt: time.Now(),
	}
	// GetOrSet keeps concurrent first requests for one id on the same session
	item, _ := ss.cache.GetOrSet(id, session, ttlcache.WithTTL[string, *Session](ttlcache.DefaultTTL))
	return item.Value()
}

func (ss *SessionStore) Keys() []string {
	return ss.cache.Keys()
}

func (ss *SessionStore) Len() int {
	return ss.cache.Len()
}

func (ss *SessionStore) Stop() {
	ss.cache.Stop()
}
