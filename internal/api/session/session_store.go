package session

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-yatra/app/observability/metrics"
	"github.com/FACorreiaa/go-yatra/internal/types"
)

// Store keeps trip sessions in memory with an idle expiry. Sessions are gone after a restart.
type Store struct {
	mu    sync.Mutex
	cache *cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewStore(ttl, cleanupInterval time.Duration) *Store {
	c := cache.New(ttl, cleanupInterval)
	c.OnEvicted(func(string, interface{}) {
		metrics.Get().ActiveSessions.Add(context.Background(), -1)
	})
	return &Store{
		cache: c,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *Store) Create() types.TripSession {
	now := s.now().UTC()
	sess := types.TripSession{
		ID:          uuid.New(),
		Preferences: []types.PreferenceType{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.cache.Set(sess.ID.String(), sess, s.ttl)
	s.mu.Unlock()

	metrics.Get().ActiveSessions.Add(context.Background(), 1)
	return clone(sess)
}

func (s *Store) Get(id uuid.UUID) (types.TripSession, bool) {
	v, ok := s.cache.Get(id.String())
	if !ok {
		return types.TripSession{}, false
	}
	return clone(v.(types.TripSession)), true
}

// Update applies fn to the stored session atomically and refreshes its expiry.
// When fn returns an error nothing is written.
func (s *Store) Update(id uuid.UUID, fn func(*types.TripSession) error) (types.TripSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Get(id.String())
	if !ok {
		return types.TripSession{}, ErrSessionNotFound
	}
	sess := clone(v.(types.TripSession))
	if err := fn(&sess); err != nil {
		return types.TripSession{}, err
	}
	sess.UpdatedAt = s.now().UTC()
	s.cache.Set(id.String(), sess, s.ttl)
	return clone(sess), nil
}

func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cache.Get(id.String()); !ok {
		return false
	}
	s.cache.Delete(id.String())
	return true
}

func clone(sess types.TripSession) types.TripSession {
	sess.Preferences = slices.Clone(sess.Preferences)
	if sess.Preferences == nil {
		sess.Preferences = []types.PreferenceType{}
	}
	return sess
}
