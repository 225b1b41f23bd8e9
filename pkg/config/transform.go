package config

import (
	"fmt"
	"strings"

	"github.com/mnmehta/benchmark-wrapper/pkg/errors"
)

// ParseLabels parses a comma-separated list of key=value pairs into a map.
// Surrounding whitespace of the whole input is trimmed before splitting.
// Each pair must contain exactly one "="; the last occurrence of a duplicate
// key wins.
func ParseLabels(raw string) (interface{}, error) {
	labels := make(map[string]string)
	for _, pair := range strings.Split(strings.TrimSpace(raw), ",") {
		parts := strings.Split(pair, "=")
		if len(parts) != 2 {
			return nil, errors.NewParse(fmt.Sprintf(
				"invalid label format, expected key=value,key=value,...: %q", raw))
		}
		labels[parts[0]] = parts[1]
	}
	return labels, nil
}
