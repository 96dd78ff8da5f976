package placeholder

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Message texts carry positional placeholders written as {name}, e.g.
// "Step {num}". The same token set is expected in every locale's rendition
// of a key.
var tokenPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Names returns the sorted, de-duplicated placeholder names in text.
func Names(text string) []string {
	matches := tokenPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	sort.Strings(names)
	return names
}

// Expand substitutes {name} tokens with values from data. Tokens without a
// matching entry are left verbatim so an incomplete data map is visible in
// the output rather than silently blanked.
func Expand(text string, data map[string]any) string {
	if len(data) == 0 {
		return text
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(token string) string {
		name := strings.Trim(token, "{}")
		value, ok := data[name]
		if !ok {
			return token
		}
		return fmt.Sprint(value)
	})
}

// Equal reports whether two texts use the same placeholder set.
func Equal(a, b string) bool {
	an, bn := Names(a), Names(b)
	if len(an) != len(bn) {
		return false
	}
	for i := range an {
		if an[i] != bn[i] {
			return false
		}
	}
	return true
}
