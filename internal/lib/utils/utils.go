// Package utils contains small helpers used across the project.
package utils

import (
	"encoding/json"
	"fmt"
)

// MaxLoggedJSON caps the size of JSON embedded in log lines.
const MaxLoggedJSON = 4096

// JSONForLog serializes v for a log line, truncating long output.
func JSONForLog(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<unserializable %T: %v>", v, err)
	}
	if len(b) > MaxLoggedJSON {
		return string(b[:MaxLoggedJSON]) + "...(truncated)"
	}
	return string(b)
}
