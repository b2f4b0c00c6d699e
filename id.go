package headless

import (
	"strings"

	"github.com/google/uuid"
)

// newID returns "<kind>-xxxxxxxx" with eight random hex characters.
func newID(kind string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	if kind == "" {
		return raw[:8]
	}
	return kind + "-" + raw[:8]
}
