package announce

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Render substitutes $name and ${name} placeholders. A placeholder with no
// value is an error so a half-filled announcement is never spoken.
func Render(tpl string, vars map[string]string) (string, error) {
	var missing []string
	out := os.Expand(tpl, func(key string) string {
		if key == "$" {
			return "$"
		}
		v, ok := vars[key]
		if !ok {
			missing = append(missing, key)
		}
		return v
	})
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", fmt.Errorf("template %q: unknown placeholder %s", tpl, strings.Join(missing, ", "))
	}
	return out, nil
}
