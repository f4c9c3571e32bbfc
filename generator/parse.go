package generator

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github_readme_generator/readme"
)

// Models sometimes wrap the JSON object in a ```json fence despite the
// instructions; strip it before decoding.
var fenceRe = regexp.MustCompile("(?s)^```(?:[a-zA-Z0-9]*)?\\s*\n?(.*?)\n?\\s*```$")

// StripCodeFence removes one surrounding code fence, if present.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// rawSections defers field decoding so a single malformed field becomes a
// SchemaError naming it instead of a generic JSON error.
type rawSections struct {
	Overview      json.RawMessage `json:"overview"`
	Features      json.RawMessage `json:"features"`
	Installation  json.RawMessage `json:"installation"`
	Technologies  json.RawMessage `json:"technologies"`
	Prerequisites json.RawMessage `json:"prerequisites"`
}

// ParseDraftSections decodes a model reply into DraftSections. Absent
// fields stay nil so they never overwrite existing record values.
func ParseDraftSections(reply string) (readme.DraftSections, error) {
	var out readme.DraftSections

	text := StripCodeFence(reply)
	if text == "" {
		return out, &ParseError{Err: errors.New("empty response")}
	}

	var raw rawSections
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return out, &ParseError{Err: err}
	}

	if err := decodeString(raw.Overview, "overview", &out.Overview); err != nil {
		return readme.DraftSections{}, err
	}
	if err := decodeStrings(raw.Features, "features", &out.Features); err != nil {
		return readme.DraftSections{}, err
	}
	if err := decodeString(raw.Installation, "installation", &out.Installation); err != nil {
		return readme.DraftSections{}, err
	}
	if err := decodeStrings(raw.Technologies, "technologies", &out.Technologies); err != nil {
		return readme.DraftSections{}, err
	}
	if err := decodeString(raw.Prerequisites, "prerequisites", &out.Prerequisites); err != nil {
		return readme.DraftSections{}, err
	}
	return out, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func decodeString(raw json.RawMessage, field string, dst **string) error {
	if !present(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return &SchemaError{Field: field}
	}
	*dst = &s
	return nil
}

func decodeStrings(raw json.RawMessage, field string, dst *[]string) error {
	if !present(raw) {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return &SchemaError{Field: field}
	}
	*dst = list
	return nil
}
