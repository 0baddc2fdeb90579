package memory

import (
	"time"

	"riskiq-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps assessment sessions in memory only. A session that
// is neither completed nor retried within the TTL simply evaporates; there is
// nothing durable to clean up.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionId string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}
