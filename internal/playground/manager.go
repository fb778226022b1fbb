package playground

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/vango-dev/elements/internal/errors"
	"github.com/vango-dev/elements/internal/stories"
	"github.com/vango-dev/elements/internal/telemetry"
)

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	// MaxSessions caps concurrent sessions. Zero means unlimited.
	MaxSessions int

	// IdleTimeout closes sessions without actions for this long.
	IdleTimeout time.Duration

	// CleanupInterval is how often idle sessions are collected
	// (default: 30s).
	CleanupInterval time.Duration

	// Animate leaves transitions running until a finish action.
	Animate bool

	Metrics *telemetry.Metrics
	Logger  *slog.Logger
}

// Manager owns the playground sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	config ManagerConfig
	logger *slog.Logger

	done        chan struct{}
	cleanupDone chan struct{}
	stopOnce    sync.Once
}

// NewManager creates a Manager and starts its cleanup loop. Call Shutdown to
// stop it.
func NewManager(config ManagerConfig) *Manager {
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 30 * time.Second
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		sessions:    make(map[string]*Session),
		config:      config,
		logger:      logger.With("component", "playground"),
		done:        make(chan struct{}),
		cleanupDone: make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

// Create mounts st in a new session. It fails with E062 at the session
// limit.
func (m *Manager) Create(st stories.Story) (*Session, error) {
	m.mu.Lock()
	if m.config.MaxSessions > 0 && len(m.sessions) >= m.config.MaxSessions {
		m.mu.Unlock()
		m.config.Metrics.SessionRejected()
		return nil, errors.New("E062").
			WithDetail(strconv.Itoa(m.config.MaxSessions) + " sessions are open").
			WithSuggestion("Close another playground tab or raise playground.maxSessions")
	}
	s, err := NewSession(st, m.config.Animate, m.config.Metrics, m.logger)
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	m.sessions[s.ID] = s
	count := len(m.sessions)
	m.mu.Unlock()

	m.config.Metrics.SessionStarted()
	m.logger.Info("session created",
		"session_id", s.ID,
		"story", st.Name,
		"active_sessions", count)
	return s, nil
}

// Get returns the session with id, or nil.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Close closes and forgets the session with id.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return
	}
	s.Close()
	m.config.Metrics.SessionEnded()
	m.logger.Info("session closed", "session_id", id)
}

// Count returns the number of open sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) cleanupLoop() {
	defer close(m.cleanupDone)
	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.CloseIdle(time.Now())
		case <-m.done:
			return
		}
	}
}

// CloseIdle closes every session idle since before now minus the idle
// timeout and returns how many were closed.
func (m *Manager) CloseIdle(now time.Time) int {
	if m.config.IdleTimeout <= 0 {
		return 0
	}
	m.mu.RLock()
	var expired []string
	for id, s := range m.sessions {
		if now.Sub(s.LastActive()) > m.config.IdleTimeout {
			expired = append(expired, id)
		}
	}
	m.mu.RUnlock()

	for _, id := range expired {
		m.Close(id)
	}
	if len(expired) > 0 {
		m.logger.Info("closed idle sessions",
			"count", len(expired),
			"remaining", m.Count())
	}
	return len(expired)
}

// Shutdown stops the cleanup loop and closes every session.
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() {
		close(m.done)
		<-m.cleanupDone
	})

	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
		m.config.Metrics.SessionEnded()
	}
	m.logger.Info("playground shutdown", "closed_sessions", len(sessions))
}
