// Package state keeps the APOD display language of each dashboard session.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"space/explorer/internal/domain"

	"github.com/redis/go-redis/v9"
)

type LanguageStore interface {
	Get(ctx context.Context, session string) (domain.Language, error)
	Set(ctx context.Context, session string, lang domain.Language) error
	Toggle(ctx context.Context, session string) (domain.Language, error)
}

type memoryLanguageStore struct {
	mu       sync.Mutex
	fallback domain.Language
	langs    map[string]domain.Language
}

// NewMemoryLanguageStore keeps languages in process memory. Sessions without
// a stored value report fallback.
func NewMemoryLanguageStore(fallback domain.Language) LanguageStore {
	return &memoryLanguageStore{
		fallback: fallback,
		langs:    make(map[string]domain.Language),
	}
}

func (s *memoryLanguageStore) Get(_ context.Context, session string) (domain.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(session), nil
}

func (s *memoryLanguageStore) get(session string) domain.Language {
	if lang, ok := s.langs[session]; ok {
		return lang
	}
	return s.fallback
}

func (s *memoryLanguageStore) Set(_ context.Context, session string, lang domain.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.langs[session] = lang
	return nil
}

func (s *memoryLanguageStore) Toggle(_ context.Context, session string) (domain.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.get(session).Toggle()
	s.langs[session] = next
	return next, nil
}

type redisLanguageStore struct {
	redisClient *redis.Client
	keyPrefix   string
	fallback    domain.Language
	ttl         time.Duration
}

// NewRedisLanguageStore persists languages under explorer:apod:language:<session>.
// A zero ttl keeps keys forever.
func NewRedisLanguageStore(redisClient *redis.Client, fallback domain.Language, ttl time.Duration) LanguageStore {
	return &redisLanguageStore{
		redisClient: redisClient,
		keyPrefix:   "explorer:apod:language:",
		fallback:    fallback,
		ttl:         ttl,
	}
}

func (s *redisLanguageStore) Get(ctx context.Context, session string) (domain.Language, error) {
	val, err := s.redisClient.Get(ctx, s.keyPrefix+session).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return s.fallback, nil // nothing stored yet
		}
		return "", fmt.Errorf("failed to get language for session %s: %w", session, err)
	}

	lang, err := domain.ParseLanguage(val)
	if err != nil {
		return "", fmt.Errorf("failed to parse language for session %s: %w", session, err)
	}
	return lang, nil
}

func (s *redisLanguageStore) Set(ctx context.Context, session string, lang domain.Language) error {
	if err := s.redisClient.Set(ctx, s.keyPrefix+session, lang.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set language for session %s: %w", session, err)
	}
	return nil
}

// Toggle is a read-modify-write. Two concurrent toggles on one session can
// both read the same value; the last write wins.
func (s *redisLanguageStore) Toggle(ctx context.Context, session string) (domain.Language, error) {
	current, err := s.Get(ctx, session)
	if err != nil {
		return "", err
	}

	next := current.Toggle()
	if err := s.Set(ctx, session, next); err != nil {
		return "", err
	}
	return next, nil
}
