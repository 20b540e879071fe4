package cli

import (
	"fmt"
	"strings"
)

// parseFieldPairs turns repeated "Label=Value" flags into a map.
// The value may be empty; the label may not.
func parseFieldPairs(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		label, value, ok := strings.Cut(pair, "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, fmt.Errorf("invalid field %q (expected Label=Value)", pair)
		}
		fields[label] = value
	}
	return fields, nil
}
