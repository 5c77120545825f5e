package preference

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	apperrors "github.com/johnquangdev/meeting-docgen/errors"
	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
	"github.com/johnquangdev/meeting-docgen/internal/infrastructure/cache"
)

// preferenceKey is the KV key for the remembered AI provider choice
const preferenceKey = "preferences:ai"

// Service persists the user's AI provider preference in the key-value
// store so it survives across sessions. The preference is a plain value
// object; no package-level state is kept.
type Service interface {
	Save(ctx context.Context, pref entities.AIPreference) error
	Load(ctx context.Context) (entities.AIPreference, error)
	Clear(ctx context.Context) error
}

type preferenceService struct {
	store cache.Store
	ttl   time.Duration
}

// NewService creates a preference service over the given store
func NewService(store cache.Store, ttl time.Duration) Service {
	return &preferenceService{store: store, ttl: ttl}
}

// Save validates and stores the preference
func (s *preferenceService) Save(ctx context.Context, pref entities.AIPreference) error {
	if !pref.Configured() {
		return apperrors.ErrInvalidArgument("provider must be gemini or openai and api key must be set")
	}

	b, err := json.Marshal(pref)
	if err != nil {
		return apperrors.ErrInternal(err)
	}
	if err := s.store.Set(ctx, preferenceKey, string(b), s.ttl); err != nil {
		return apperrors.ErrCacheFailed("save preference", err)
	}
	return nil
}

// Load returns the stored preference. A missing key is not an error; the
// zero preference is returned and Configured() reports false.
func (s *preferenceService) Load(ctx context.Context) (entities.AIPreference, error) {
	raw, err := s.store.Get(ctx, preferenceKey)
	if errors.Is(err, cache.ErrKeyNotFound) {
		return entities.AIPreference{}, nil
	}
	if err != nil {
		return entities.AIPreference{}, apperrors.ErrCacheFailed("load preference", err)
	}

	var pref entities.AIPreference
	if err := json.Unmarshal([]byte(raw), &pref); err != nil {
		return entities.AIPreference{}, apperrors.ErrCacheFailed("decode preference", err)
	}
	return pref, nil
}

// Clear removes the stored preference
func (s *preferenceService) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, preferenceKey); err != nil {
		return apperrors.ErrCacheFailed("clear preference", err)
	}
	return nil
}
