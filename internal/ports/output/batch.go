package output

import "msgmerge/internal/domain/entities"

// AdditionsBatch is a single-locale batch: new keys and their texts for one
// existing locale, typically the base locale.
type AdditionsBatch struct {
	Locale   string
	Messages entities.StringTable
}

// TranslationsBatch is a multi-locale batch: per message key, the localized
// text for each locale the batch covers. Partial coverage is allowed.
type TranslationsBatch struct {
	Translations map[string]entities.StringTable
}

// BatchSource loads caller-supplied batch files. Batches live outside the
// binary so one-time migration data never gets compiled in.
type BatchSource interface {
	LoadAdditions(path string) (*AdditionsBatch, error)
	LoadTranslations(path string) (*TranslationsBatch, error)
}
