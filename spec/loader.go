package spec

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Load reads the spec file at path and validates it. Read failures are
// returned as-is; anything wrong with the document itself is an *Error.
func Load(path string) (*SiteSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Parse validates a spec document. source is only used in error messages.
// Validation stops at the first problem found.
func Parse(data []byte, source string) (*SiteSpec, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Msg: fmt.Sprintf("invalid JSON in %s: %v", source, err), Err: err}
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &Error{Msg: "spec must be a JSON object"}
	}

	title, err := requireString(obj, "title", 0)
	if err != nil {
		return nil, err
	}
	tagline, err := requireString(obj, "tagline", 0)
	if err != nil {
		return nil, err
	}

	sections := []Section{}
	if value, present := obj["sections"]; present {
		if sections, err = parseSections(value); err != nil {
			return nil, err
		}
	}

	return &SiteSpec{Title: title, Tagline: tagline, Sections: sections}, nil
}

func parseSections(value any) ([]Section, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, &Error{Field: "sections", Msg: "'sections' must be a list"}
	}

	sections := make([]Section, 0, len(items))
	for i, item := range items {
		idx := i + 1
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, &Error{
				Field: fmt.Sprintf("sections[%d]", idx),
				Index: idx,
				Msg:   fmt.Sprintf("Section %d must be an object", idx),
			}
		}
		heading, err := requireString(fields, "heading", idx)
		if err != nil {
			return nil, err
		}
		content, err := requireString(fields, "content", idx)
		if err != nil {
			return nil, err
		}
		sections = append(sections, Section{Heading: heading, Content: content})
	}
	return sections, nil
}

// requireString extracts key as a trimmed, non-empty string. A non-zero index
// scopes the error to that section.
func requireString(obj map[string]any, key string, index int) (string, error) {
	str, ok := obj[key].(string)
	value := ""
	if ok {
		value = cleanText(str)
	}
	if value != "" {
		return value, nil
	}

	if index == 0 {
		return "", &Error{Field: key, Msg: fmt.Sprintf("'%s' must be a non-empty string", key)}
	}
	return "", &Error{
		Field: fmt.Sprintf("sections[%d].%s", index, key),
		Index: index,
		Msg:   fmt.Sprintf("Section %d '%s' must be a non-empty string", index, key),
	}
}

func cleanText(s string) string {
	return strings.TrimSpace(s)
}
