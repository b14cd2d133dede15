package utils

import (
	"fmt"
	"strings"
)

// ButtonSpec is one broadcast inline button parsed from a "label | url" line.
type ButtonSpec struct {
	Label string
	URL   string
}

// ButtonSpecError reports a malformed button line back to the admin.
type ButtonSpecError struct {
	Line    string
	Message string
}

func (e *ButtonSpecError) Error() string {
	return fmt.Sprintf("%s: %q", e.Message, e.Line)
}

// ParseButtonLines parses newline-separated "label | url" pairs. Blank lines
// are skipped. The terminating "done" token is handled by the caller, not here.
func ParseButtonLines(text string) ([]ButtonSpec, error) {
	var specs []ButtonSpec
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		spec, err := parseButtonLine(line)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseButtonLine(line string) (ButtonSpec, error) {
	parts := strings.SplitN(line, "|", 2)
	if len(parts) != 2 {
		return ButtonSpec{}, &ButtonSpecError{Line: line, Message: "expected \"label | url\""}
	}
	label := strings.TrimSpace(parts[0])
	url := strings.TrimSpace(parts[1])
	if label == "" || url == "" {
		return ButtonSpec{}, &ButtonSpecError{Line: line, Message: "label and url must be non-empty"}
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return ButtonSpec{}, &ButtonSpecError{Line: line, Message: "url must start with http:// or https://"}
	}
	return ButtonSpec{Label: label, URL: url}, nil
}
