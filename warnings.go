package pacourt

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered while processing a
// document. The pipeline keeps going past these; callers decide whether
// the result is still trustworthy.
type Warning struct {
	// Stage names the pipeline stage that raised the warning: "read",
	// "extract", or "parse".
	Stage string

	// Page is the 1-based page number the warning concerns, or 0 when
	// it applies to the whole document.
	Page int

	// Message is a human-readable description.
	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("%s (page %d): %s", w.Stage, w.Page, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

// FormatWarnings renders warnings one per line for display or logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
