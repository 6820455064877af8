package bot

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
)

type SessionCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
	Pop(key string) ([]byte, bool)
	SetIfAbsent(key string, value []byte) bool
}

// SessionStore keeps one session per user. Sessions are stored encoded, so
// callers always get their own copy. Entries expire after the cache TTL,
// which every Save renews.
type SessionStore struct {
	logger *slog.Logger
	cache  SessionCache
}

func NewSessionStore(logger *slog.Logger, cache SessionCache) *SessionStore {
	return &SessionStore{
		logger: logger.With(slog.String("component", "sessions")),
		cache:  cache,
	}
}

func (s *SessionStore) Get(userID int64) (entities.Session, bool) {
	data, ok := s.cache.Get(sessionKey(userID))
	if !ok {
		return entities.Session{}, false
	}
	return s.decode(userID, data)
}

func (s *SessionStore) Save(session entities.Session) error {
	data, err := session.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	s.cache.Set(sessionKey(session.UserID), data)
	return nil
}

// Restore puts back a session taken with Take unless the user started
// another one meanwhile. It reports whether the session was put back.
func (s *SessionStore) Restore(session entities.Session) (bool, error) {
	data, err := session.Marshal()
	if err != nil {
		return false, fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.cache.SetIfAbsent(sessionKey(session.UserID), data), nil
}

func (s *SessionStore) Delete(userID int64) {
	s.cache.Delete(sessionKey(userID))
}

// Take removes the session and returns it. Of two concurrent calls for the
// same user at most one gets the session.
func (s *SessionStore) Take(userID int64) (entities.Session, bool) {
	data, ok := s.cache.Pop(sessionKey(userID))
	if !ok {
		return entities.Session{}, false
	}
	return s.decode(userID, data)
}

func (s *SessionStore) decode(userID int64, data []byte) (entities.Session, bool) {
	var session entities.Session
	if err := session.Unmarshal(data); err != nil {
		s.logger.Error("failed to unmarshal session", slog.Int64("user_id", userID), slog.Any("error", err))
		s.Delete(userID)
		return entities.Session{}, false
	}
	return session, true
}

func sessionKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
