package i18n

import (
	"errors"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"msgmerge/internal/domain/entities"
	"msgmerge/internal/ports/output"
	"msgmerge/pkg/placeholder"
)

// Ensure Renderer implements the output.Renderer port.
var _ output.Renderer = (*Renderer)(nil)

// Renderer is a thin wrapper around go-i18n's Bundle/Localizer, fed from a
// loaded store instead of embedded message files. It exists so a merged key
// can be spot-checked exactly as the consuming application would resolve it.
type Renderer struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewRenderer builds a Renderer over store using the given default locale
// (e.g. "en") as the fallback language.
func NewRenderer(store entities.Store, defaultLocale string) (*Renderer, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)

	for _, locale := range store.Locales() {
		localeTag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		table := store[locale]
		messages := make([]*i18n.Message, 0, len(table))
		for _, key := range table.Keys() {
			messages = append(messages, &i18n.Message{ID: key, Other: table[key]})
		}
		if err := bundle.AddMessages(localeTag, messages...); err != nil {
			return nil, fmt.Errorf("register locale %q: %w", locale, err)
		}
	}

	return &Renderer{
		bundle:          bundle,
		defaultLanguage: tag,
	}, nil
}

// Render resolves the message identified by key for the given locale,
// falling back to the default locale when the key is untranslated, then
// expands {name} placeholders from data. An unknown key is an error rather
// than a silent echo: the command exists to verify merges landed.
func (r *Renderer) Render(locale, key string, data map[string]any) (string, error) {
	if key == "" {
		return "", fmt.Errorf("message key is required")
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, r.defaultLanguage.String())

	localizer := i18n.NewLocalizer(r.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: key,
	})
	if err != nil {
		// go-i18n reports a miss in the requested locale even when it
		// resolved the default-language text; that text is the fallback.
		var notFound *i18n.MessageNotFoundErr
		if !errors.As(err, &notFound) || msg == "" {
			return "", fmt.Errorf("localize %q (locales=%v): %w", key, languages, err)
		}
	}
	return placeholder.Expand(msg, data), nil
}
