package entities

import (
	"sort"

	"msgmerge/internal/domain"
)

// StringTable holds the localized messages for one locale, keyed by stable
// message key. Lookup is by key; key order is a serialization concern, not a
// property of the table.
type StringTable map[string]string

// Store maps a locale code (e.g. "en", "ja", "zh-TW") to its StringTable.
// The store enumerates its own locales; nothing in the merge path assumes a
// fixed locale set.
type Store map[string]StringTable

// MergeStats accounts for a single merge pass.
type MergeStats struct {
	Added       int
	Overwritten int
}

// Keys returns the table's message keys in ascending code-point order.
func (t StringTable) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Locales returns all locale codes in the store, sorted.
func (s Store) Locales() []string {
	locales := make([]string, 0, len(s))
	for locale := range s {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// HasLocale reports whether the locale exists in the store.
func (s Store) HasLocale(locale string) bool {
	_, ok := s[locale]
	return ok
}

// MergeLocale sets every (key, text) pair from additions on the given
// locale's table, silently overwriting existing values. The locale must
// already exist in the store. Applying the same additions twice yields the
// same final state.
func (s Store) MergeLocale(locale string, additions StringTable) (MergeStats, error) {
	table, ok := s[locale]
	if !ok {
		return MergeStats{}, &domain.MissingLocaleError{Locale: locale}
	}

	var stats MergeStats
	for key, text := range additions {
		if _, exists := table[key]; exists {
			stats.Overwritten++
		} else {
			stats.Added++
		}
		table[key] = text
	}
	return stats, nil
}

// MergeKeys applies a multi-locale batch: for each message key, each locale
// present in that key's sub-table receives its text. Locales a key does not
// cover are left untouched for that key, so partial coverage is
// representable. Any locale a batch references must already exist in the
// store.
func (s Store) MergeKeys(byKey map[string]StringTable) (MergeStats, error) {
	// Validate locale existence up front so a failing batch never applies
	// half of its entries.
	for _, perLocale := range byKey {
		for locale := range perLocale {
			if !s.HasLocale(locale) {
				return MergeStats{}, &domain.MissingLocaleError{Locale: locale}
			}
		}
	}

	var stats MergeStats
	for key, perLocale := range byKey {
		for locale, text := range perLocale {
			if _, exists := s[locale][key]; exists {
				stats.Overwritten++
			} else {
				stats.Added++
			}
			s[locale][key] = text
		}
	}
	return stats, nil
}

// Normalized returns a deep copy of the store. Maps carry no key order, so
// canonical ordering lives in the storage codec; Normalized guarantees the
// copy shares no tables with the original and is idempotent.
func (s Store) Normalized() Store {
	out := make(Store, len(s))
	for locale, table := range s {
		copied := make(StringTable, len(table))
		for key, text := range table {
			copied[key] = text
		}
		out[locale] = copied
	}
	return out
}

// TotalKeys returns the key count per locale, for run summaries.
func (s Store) TotalKeys() map[string]int {
	totals := make(map[string]int, len(s))
	for locale, table := range s {
		totals[locale] = len(table)
	}
	return totals
}
