package application

import (
	"fmt"
	"math"

	"msgmerge/internal/domain"
	"msgmerge/internal/ports/input"
	"msgmerge/internal/ports/output"
	"msgmerge/pkg/placeholder"
)

// Ensure StatusService implements the input.StatusUseCase port.
var _ input.StatusUseCase = (*StatusService)(nil)

// StatusService reports cross-locale key parity against a base locale.
// Parity is never enforced by the merge path; the report makes silent
// partial coverage and silent overwrites visible after the fact.
type StatusService struct {
	storeRepo output.StoreRepository
	storePath string
}

func NewStatusService(storeRepo output.StoreRepository, storePath string) *StatusService {
	return &StatusService{
		storeRepo: storeRepo,
		storePath: storePath,
	}
}

// Report compares every locale's key set and placeholders against
// baseLocale.
func (s *StatusService) Report(baseLocale string) (*input.StoreStatus, error) {
	store, err := s.storeRepo.Load(s.storePath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if !store.HasLocale(baseLocale) {
		return nil, fmt.Errorf("report: %w", &domain.MissingLocaleError{Locale: baseLocale})
	}

	base := store[baseLocale]
	baseKeys := base.Keys()

	status := &input.StoreStatus{
		BaseLocale: baseLocale,
		BaseKeys:   len(base),
	}

	for _, locale := range store.Locales() {
		table := store[locale]
		ls := input.LocaleStatus{
			Locale: locale,
			Keys:   len(table),
		}

		for _, key := range baseKeys {
			text, ok := table[key]
			if !ok {
				ls.MissingKeys = append(ls.MissingKeys, key)
				continue
			}
			if !placeholder.Equal(base[key], text) {
				ls.PlaceholderMismatches = append(ls.PlaceholderMismatches, key)
			}
		}
		for _, key := range table.Keys() {
			if _, ok := base[key]; !ok {
				ls.ExtraKeys = append(ls.ExtraKeys, key)
			}
		}

		ls.Missing = len(ls.MissingKeys)
		ls.Extra = len(ls.ExtraKeys)
		ls.Completion = completion(len(base), len(base)-ls.Missing)

		status.Locales = append(status.Locales, ls)
	}

	return status, nil
}

func completion(baseKeys, translated int) float64 {
	if baseKeys == 0 {
		return 100
	}
	return math.Round(float64(translated)/float64(baseKeys)*1000) / 10
}
