package session

import (
	"RepairDesk/internal/lib/sl"
	"RepairDesk/workflow"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultTTL     = 30 * time.Minute
	defaultCleanup = 5 * time.Minute
)

// Manager keeps live workflow sessions in memory. Every read extends the
// session's lifetime; idle sessions are dropped after the TTL.
type Manager struct {
	sessions *cache.Cache
	ttl      time.Duration
	log      *slog.Logger
}

func NewSessionManager(ttl, cleanup time.Duration, log *slog.Logger) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if cleanup <= 0 {
		cleanup = defaultCleanup
	}
	m := &Manager{
		sessions: cache.New(ttl, cleanup),
		ttl:      ttl,
		log:      log.With(sl.Module("session")),
	}
	m.sessions.OnEvicted(func(id string, _ interface{}) {
		m.log.With(slog.String("session", id)).Debug("session discarded")
	})
	return m
}

func (m *Manager) Save(s *workflow.Session) {
	m.sessions.Set(s.ID, s, m.ttl)
}

func (m *Manager) Load(id string) (*workflow.Session, bool) {
	v, ok := m.sessions.Get(id)
	if !ok {
		return nil, false
	}
	s := v.(*workflow.Session)
	m.sessions.Set(id, s, m.ttl)
	return s, true
}

func (m *Manager) Delete(id string) {
	m.sessions.Delete(id)
}

// Count returns the number of live sessions, including expired ones not yet cleaned up.
func (m *Manager) Count() int {
	return m.sessions.ItemCount()
}
