package build

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal error classes. Per-track problems (missing metadata, unsupported
// formats) are recovered during loading and never reach these; a failing
// external tool or broken configuration aborts the run, since downstream
// artifacts would be inconsistent. No class is retried: external failures
// are treated as deterministic.
var (
	ErrExternalTool  = errors.New("external tool error")
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes pipeline context while tagging
// it with the provided marker for exit-status classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, phase, message string, err error) error {
	detail := buildDetail(phase, message)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(phase, message string) string {
	parts := make([]string, 0, 2)
	if phase = strings.TrimSpace(phase); phase != "" {
		parts = append(parts, phase)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "build failure"
	}
	return strings.Join(parts, ": ")
}
