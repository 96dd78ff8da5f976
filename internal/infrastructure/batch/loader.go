package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"msgmerge/internal/domain"
	"msgmerge/internal/domain/entities"
	"msgmerge/internal/ports/output"
)

// Ensure FileLoader implements the output.BatchSource port.
var _ output.BatchSource = (*FileLoader)(nil)

// FileLoader reads additions and translations batch files. JSON and TOML
// are accepted, chosen by file extension.
type FileLoader struct{}

func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

type additionsFile struct {
	Locale   string               `json:"locale" toml:"locale"`
	Messages entities.StringTable `json:"messages" toml:"messages"`
}

type translationsFile struct {
	Translations map[string]entities.StringTable `json:"translations" toml:"translations"`
}

// LoadAdditions reads a single-locale batch: one target locale and its new
// key → text pairs.
func (l *FileLoader) LoadAdditions(path string) (*output.AdditionsBatch, error) {
	var file additionsFile
	if err := decode(path, &file); err != nil {
		return nil, err
	}

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return nil, fmt.Errorf("batch %s: locale is required", path)
	}
	if err := validateLocale(locale); err != nil {
		return nil, fmt.Errorf("batch %s: %w", path, err)
	}
	if len(file.Messages) == 0 {
		return nil, fmt.Errorf("batch %s: %w", path, domain.ErrEmptyBatch)
	}
	if err := validateKeys(file.Messages); err != nil {
		return nil, fmt.Errorf("batch %s: %w", path, err)
	}

	return &output.AdditionsBatch{Locale: locale, Messages: file.Messages}, nil
}

// LoadTranslations reads a multi-locale batch: per message key, the text for
// each locale the batch covers. A key may cover only some locales.
func (l *FileLoader) LoadTranslations(path string) (*output.TranslationsBatch, error) {
	var file translationsFile
	if err := decode(path, &file); err != nil {
		return nil, err
	}

	if len(file.Translations) == 0 {
		return nil, fmt.Errorf("batch %s: %w", path, domain.ErrEmptyBatch)
	}
	for key, perLocale := range file.Translations {
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("batch %s: message key cannot be blank", path)
		}
		if len(perLocale) == 0 {
			return nil, fmt.Errorf("batch %s: key %q has no translations", path, key)
		}
		for locale := range perLocale {
			if err := validateLocale(locale); err != nil {
				return nil, fmt.Errorf("batch %s: key %q: %w", path, key, err)
			}
		}
	}

	return &output.TranslationsBatch{Translations: file.Translations}, nil
}

func decode(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read batch %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parse batch %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parse batch %s: %w", path, err)
		}
	default:
		return fmt.Errorf("batch %s: unsupported extension %q (want .json or .toml)", path, ext)
	}
	return nil
}

func validateLocale(locale string) error {
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("invalid locale code %q: %w", locale, err)
	}
	return nil
}

func validateKeys(messages entities.StringTable) error {
	for key := range messages {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("message key cannot be blank")
		}
	}
	return nil
}
