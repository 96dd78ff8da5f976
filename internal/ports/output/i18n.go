package output

// Renderer exposes a minimal i18n contract for spot-checking merged
// messages. Implementations provide message lookup + templating for a given
// locale, falling back to the base locale when a key is untranslated.
type Renderer interface {
	// Render resolves the message identified by key for the given locale.
	// data is an optional map used for placeholder expansion (may be nil).
	Render(locale, key string, data map[string]any) (string, error)
}
