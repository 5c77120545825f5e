package preference

import (
	"context"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
	"github.com/johnquangdev/meeting-docgen/internal/infrastructure/cache"
)

func newTestService() Service {
	return NewService(cache.NewMemoryStore(), time.Hour)
}

func TestSaveAndLoad(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	pref := entities.AIPreference{
		Provider: entities.AIProviderGemini,
		APIKey:   "test-key",
		Model:    "gemini-pro",
	}
	if err := svc.Save(ctx, pref); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != pref {
		t.Fatalf("loaded %+v, want %+v", loaded, pref)
	}
}

func TestLoad_MissingIsNotAnError(t *testing.T) {
	svc := newTestService()

	loaded, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load of missing preference failed: %v", err)
	}
	if loaded.Configured() {
		t.Fatalf("zero preference reported configured: %+v", loaded)
	}
}

func TestSave_RejectsUnconfigured(t *testing.T) {
	svc := newTestService()

	err := svc.Save(context.Background(), entities.AIPreference{Provider: "grok"})
	if err == nil {
		t.Fatalf("expected error for unknown provider without key")
	}
}

func TestClear(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	pref := entities.AIPreference{Provider: entities.AIProviderOpenAI, APIKey: "k"}
	if err := svc.Save(ctx, pref); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	loaded, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	if loaded.Configured() {
		t.Fatalf("preference survived Clear: %+v", loaded)
	}
}
