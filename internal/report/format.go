package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for a report format name that is not supported.
var ErrUnknownFormat = errors.New("unknown report format")

// Format selects how a report is rendered.
type Format int

const (
	// Text is the localized plain text report (default)
	Text Format = iota
	// Markdown renders one table per category
	Markdown
	// JSON is the locale-independent machine view
	JSON
	// YAML is the same machine view as JSON
	YAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case Markdown:
		return "markdown"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat converts a name such as "text", "md" or "yaml" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return Text, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Text, fmt.Errorf("%w: %q (want text, markdown, json or yaml)", ErrUnknownFormat, name)
	}
}
