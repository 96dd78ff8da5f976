package i18n

import (
	"testing"

	"msgmerge/internal/domain/entities"
)

func testStore() entities.Store {
	return entities.Store{
		"en": {
			"refactor-step-prompt": "Step {num}",
			"english-only":         "Only in English",
		},
		"ja": {
			"refactor-step-prompt": "ステップ {num}",
		},
	}
}

func TestRenderLocalizedMessage(t *testing.T) {
	renderer, err := NewRenderer(testStore(), "en")
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	got, err := renderer.Render("ja", "refactor-step-prompt", map[string]any{"num": 3})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ステップ 3" {
		t.Fatalf("render = %q, want %q", got, "ステップ 3")
	}
}

func TestRenderFallsBackToBaseLocale(t *testing.T) {
	renderer, err := NewRenderer(testStore(), "en")
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	got, err := renderer.Render("ja", "english-only", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Only in English" {
		t.Fatalf("render = %q, want fallback text", got)
	}
}

func TestRenderFallbackExpandsPlaceholders(t *testing.T) {
	store := entities.Store{
		"en": {"step": "Step {num}"},
		"ja": {},
	}
	renderer, err := NewRenderer(store, "en")
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	got, err := renderer.Render("ja", "step", map[string]any{"num": 7})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Step 7" {
		t.Fatalf("render = %q, want %q", got, "Step 7")
	}
}

func TestRenderUnknownKeyFails(t *testing.T) {
	renderer, err := NewRenderer(testStore(), "en")
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if _, err := renderer.Render("ja", "no-such-key", nil); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestRenderEmptyKeyFails(t *testing.T) {
	renderer, err := NewRenderer(testStore(), "en")
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if _, err := renderer.Render("en", "", nil); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestNewRendererRejectsInvalidLocale(t *testing.T) {
	store := entities.Store{"not a tag!": {}}
	if _, err := NewRenderer(store, "en"); err == nil {
		t.Fatal("expected error for invalid locale code")
	}
}
