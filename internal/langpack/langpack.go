/*
Package langpack serves the UI string bundles (Spanish, English, French).

The packs are compiled into the binary; Redis fronts them with a TTL so
every instance serves the same bytes without re-reading the embedded JSON
per request. A cache outage degrades to the embedded copy, never to an
error.
*/
package langpack

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anavarrete/frameteca/internal/platform/constants"
)

//go:embed packs/*.json
var packsFS embed.FS

// SupportedLanguages lists the language codes shipped with the binary.
var SupportedLanguages = []string{"es", "en", "fr"}

// ErrUnknownLanguage is returned for language codes outside the shipped set.
var ErrUnknownLanguage = errors.New("unknown language")

// ErrCacheMiss signals that a key is absent from the cache.
var ErrCacheMiss = errors.New("langpack: cache miss")

// Cache is the minimal key-value surface the service needs. Get returns
// [ErrCacheMiss] on an absent key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache adapts a Redis client to the [Cache] interface.
type RedisCache struct {
	Client *redis.Client
}

func (c RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return raw, err
}

func (c RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

// Service hands out language packs, cache-first.
type Service struct {
	cache  Cache
	logger *slog.Logger
	packs  map[string]json.RawMessage
}

// NewService loads and validates every embedded pack. A malformed or
// missing pack is a build defect, so it fails startup rather than a request.
func NewService(cache Cache, logger *slog.Logger) (*Service, error) {
	packs := make(map[string]json.RawMessage, len(SupportedLanguages))

	for _, lang := range SupportedLanguages {
		raw, err := packsFS.ReadFile("packs/" + lang + ".json")
		if err != nil {
			return nil, fmt.Errorf("langpack: missing embedded pack %q: %w", lang, err)
		}
		if !json.Valid(raw) {
			return nil, fmt.Errorf("langpack: embedded pack %q is not valid JSON", lang)
		}
		packs[lang] = json.RawMessage(raw)
	}

	return &Service{cache: cache, logger: logger, packs: packs}, nil
}

// IsSupported reports whether lang is a shipped language code.
func IsSupported(lang string) bool {
	for _, supported := range SupportedLanguages {
		if lang == supported {
			return true
		}
	}
	return false
}

// Get returns the pack for lang, serving from Redis when warm and
// repopulating the cache on a miss. Cache errors are logged and ignored.
func (s *Service) Get(ctx context.Context, lang string) (json.RawMessage, error) {
	pack, ok := s.packs[lang]
	if !ok {
		return nil, ErrUnknownLanguage
	}

	key := constants.RedisPrefixLangPack + lang

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		s.logger.Warn("langpack_cache_read_failed",
			slog.String("lang", lang), slog.String("error", err.Error()))
	}

	if err := s.cache.Set(ctx, key, []byte(pack), constants.LangPackTTL); err != nil {
		s.logger.Warn("langpack_cache_write_failed",
			slog.String("lang", lang), slog.String("error", err.Error()))
	}

	return pack, nil
}
