package tool

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrMalformedCompletion is returned when a completion cannot be read as a tool call.
var ErrMalformedCompletion = errors.New("malformed completion")

// ToolCallRequest is a model's request to invoke a tool.
type ToolCallRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ParseToolCall reads a completion as a JSON object with a string `name` and
// an object `arguments`. The object may be wrapped in a Markdown code fence or
// surrounded by prose. A missing `arguments` key reads as no arguments.
func ParseToolCall(completion string) (ToolCallRequest, error) {
	raw := extractObject(completion)
	if raw == "" || !gjson.Valid(raw) {
		return ToolCallRequest{}, fmt.Errorf("%w: no JSON object found", ErrMalformedCompletion)
	}

	obj := gjson.Parse(raw)
	if !obj.IsObject() {
		return ToolCallRequest{}, fmt.Errorf("%w: expected a JSON object", ErrMalformedCompletion)
	}

	name := obj.Get("name")
	if name.Type != gjson.String {
		return ToolCallRequest{}, fmt.Errorf("%w: missing string field \"name\"", ErrMalformedCompletion)
	}

	req := ToolCallRequest{Name: name.String(), Arguments: map[string]any{}}

	args := obj.Get("arguments")
	switch {
	case !args.Exists() || args.Type == gjson.Null:
	case args.IsObject():
		if err := json.Unmarshal([]byte(args.Raw), &req.Arguments); err != nil {
			return ToolCallRequest{}, fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
		}
	default:
		return ToolCallRequest{}, fmt.Errorf("%w: field \"arguments\" must be an object", ErrMalformedCompletion)
	}

	return req, nil
}

// extractObject strips a surrounding code fence and narrows s to the span
// between its first '{' and last '}'.
func extractObject(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:] // drop the info string (```json)
		}
		if end := strings.LastIndex(s, "```"); end >= 0 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}
