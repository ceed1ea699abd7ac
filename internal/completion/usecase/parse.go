package usecase

import (
	"encoding/json"
	"regexp"
)

var (
	fencedJSONRe = regexp.MustCompile("```json\\s*(\\{[\\s\\S]*?\\})\\s*```")
	bareJSONRe   = regexp.MustCompile(`\{[\s\S]*?\}`)
)

// ParseJSON finds the parameter object in a model reply: a fenced json block
// first, then the first brace-delimited span. ok is false when neither parses.
func ParseJSON(content string) (map[string]any, bool) {
	var candidate string
	if m := fencedJSONRe.FindStringSubmatch(content); m != nil {
		candidate = m[1]
	} else if m := bareJSONRe.FindString(content); m != "" {
		candidate = m
	} else {
		return nil, false
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(candidate), &out); err != nil {
		return nil, false
	}
	return out, true
}
