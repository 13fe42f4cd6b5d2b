// Package session is the explicit, injected session context: identity comes
// from the access token, the per-scope permission sets live in a cache so
// permission checks elsewhere in a running session observe rights edits
// without a re-login.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type Store struct {
	cache  CacheRepository
	logger *zap.Logger
	ttl    time.Duration
}

func NewStore(cache CacheRepository, logger *zap.Logger, ttl time.Duration) *Store {
	return &Store{cache: cache, logger: logger, ttl: ttl}
}

func rightsKey(userID int, scopeID string) string {
	return fmt.Sprintf("session:rights:%d:%s", userID, scopeID)
}

// Rights returns the cached permission codes for one (user, scope) pair.
// A cache miss yields an empty set, not an error.
func (s *Store) Rights(ctx context.Context, userID int, scopeID string) ([]string, error) {
	raw, err := s.cache.Get(ctx, rightsKey(userID, scopeID))
	if err != nil {
		return []string{}, nil
	}
	var rights []string
	if err := json.Unmarshal([]byte(raw), &rights); err != nil {
		s.logger.Warn("session: corrupt cached rights entry, dropping it",
			zap.Int("userID", userID),
			zap.String("scope", scopeID),
		)
		_ = s.cache.Del(ctx, rightsKey(userID, scopeID))
		return []string{}, nil
	}
	return rights, nil
}

// ReplaceScope overwrites the cached rights for one scope. This is the
// mirror target used after a successful rights save on the signed-in user.
func (s *Store) ReplaceScope(ctx context.Context, userID int, scopeID string, rightsList []string) error {
	raw, err := json.Marshal(rightsList)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, rightsKey(userID, scopeID), string(raw), s.ttl)
}

// HasPermission checks one code against a scope's cached set.
func (s *Store) HasPermission(ctx context.Context, userID int, scopeID, code string) bool {
	rights, _ := s.Rights(ctx, userID, scopeID)
	for _, r := range rights {
		if r == code {
			return true
		}
	}
	return false
}

// Invalidate drops a user's cached global scope, forcing a refetch.
func (s *Store) Invalidate(ctx context.Context, userID int, scopeIDs ...string) error {
	keys := make([]string, 0, len(scopeIDs))
	for _, scope := range scopeIDs {
		keys = append(keys, rightsKey(userID, scope))
	}
	if len(keys) == 0 {
		return nil
	}
	return s.cache.Del(ctx, keys...)
}
