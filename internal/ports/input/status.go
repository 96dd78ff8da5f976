package input

// LocaleStatus describes one locale's coverage against the base locale.
type LocaleStatus struct {
	Locale                string   `json:"locale"`
	Keys                  int      `json:"keys"`
	Missing               int      `json:"missing"`
	Extra                 int      `json:"extra"`
	Completion            float64  `json:"completion"`
	MissingKeys           []string `json:"missing_keys,omitempty"`
	ExtraKeys             []string `json:"extra_keys,omitempty"`
	PlaceholderMismatches []string `json:"placeholder_mismatches,omitempty"`
}

// StoreStatus is the full coverage report.
type StoreStatus struct {
	BaseLocale string         `json:"base_locale"`
	BaseKeys   int            `json:"base_keys"`
	Locales    []LocaleStatus `json:"locales"`
}

// StatusUseCase reports cross-locale key parity. The merge path never
// enforces parity; this report is the non-fatal diagnostic surface.
type StatusUseCase interface {
	Report(baseLocale string) (*StoreStatus, error)
}
