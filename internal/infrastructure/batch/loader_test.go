package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"msgmerge/internal/domain"
)

func TestLoadAdditionsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "additions.json")
	mustWriteFile(t, path, `{
  "locale": "en",
  "messages": {
    "refactor-step-prompt": "Step {num}",
    "feature-problem-prompt": "❓ Problem Statement"
  }
}`)

	batch, err := NewFileLoader().LoadAdditions(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if batch.Locale != "en" {
		t.Fatalf("locale = %q, want en", batch.Locale)
	}
	if got := batch.Messages["refactor-step-prompt"]; got != "Step {num}" {
		t.Fatalf("message = %q", got)
	}
	if len(batch.Messages) != 2 {
		t.Fatalf("len = %d, want 2", len(batch.Messages))
	}
}

func TestLoadAdditionsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "additions.toml")
	mustWriteFile(t, path, `locale = "ja"

[messages]
"refactor-step-prompt" = "ステップ {num}"
`)

	batch, err := NewFileLoader().LoadAdditions(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if batch.Locale != "ja" {
		t.Fatalf("locale = %q, want ja", batch.Locale)
	}
	if got := batch.Messages["refactor-step-prompt"]; got != "ステップ {num}" {
		t.Fatalf("message = %q", got)
	}
}

func TestLoadAdditionsRejectsBadInput(t *testing.T) {
	for name, tc := range map[string]struct {
		file    string
		content string
	}{
		"missing locale": {"a.json", `{"messages": {"a": "x"}}`},
		"invalid locale": {"a.json", `{"locale": "not a tag!", "messages": {"a": "x"}}`},
		"empty messages": {"a.json", `{"locale": "en", "messages": {}}`},
		"blank key":      {"a.json", `{"locale": "en", "messages": {" ": "x"}}`},
		"bad extension":  {"a.yaml", `locale: en`},
		"malformed json": {"a.json", `{`},
		"malformed toml": {"a.toml", `locale = `},
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			mustWriteFile(t, path, tc.content)
			if _, err := NewFileLoader().LoadAdditions(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadAdditionsEmptyBatchError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.json")
	mustWriteFile(t, path, `{"locale": "en", "messages": {}}`)

	_, err := NewFileLoader().LoadAdditions(path)
	if !errors.Is(err, domain.ErrEmptyBatch) {
		t.Fatalf("err = %v, want ErrEmptyBatch", err)
	}
}

func TestLoadTranslationsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translations.json")
	mustWriteFile(t, path, `{
  "translations": {
    "refactor-goal-dry": {
      "ja": "コード重複の削減（DRY原則）",
      "zh": "减少代码重复（DRY原则）",
      "zh-TW": "減少程式碼重複（DRY原則）"
    },
    "refactor-goal-performance": {
      "ja": "パフォーマンス改善"
    }
  }
}`)

	batch, err := NewFileLoader().LoadTranslations(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(batch.Translations) != 2 {
		t.Fatalf("len = %d, want 2", len(batch.Translations))
	}
	if got := batch.Translations["refactor-goal-dry"]["zh-TW"]; got != "減少程式碼重複（DRY原則）" {
		t.Fatalf("zh-TW = %q", got)
	}
	// Partial coverage is a valid batch.
	if got := len(batch.Translations["refactor-goal-performance"]); got != 1 {
		t.Fatalf("partial key has %d locales, want 1", got)
	}
}

func TestLoadTranslationsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translations.toml")
	mustWriteFile(t, path, `[translations."refactor-goal-dry"]
ja = "コード重複の削減"
"zh-TW" = "減少程式碼重複"
`)

	batch, err := NewFileLoader().LoadTranslations(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := batch.Translations["refactor-goal-dry"]["ja"]; got != "コード重複の削減" {
		t.Fatalf("ja = %q", got)
	}
}

func TestLoadTranslationsRejectsBadInput(t *testing.T) {
	for name, content := range map[string]string{
		"empty":          `{"translations": {}}`,
		"blank key":      `{"translations": {"": {"ja": "x"}}}`,
		"no locales":     `{"translations": {"a": {}}}`,
		"invalid locale": `{"translations": {"a": {"??": "x"}}}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "t.json")
			mustWriteFile(t, path, content)
			if _, err := NewFileLoader().LoadTranslations(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
