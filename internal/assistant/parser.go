package assistant

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedReply wraps every reason a model reply could not be decoded.
var ErrMalformedReply = errors.New("assistant: malformed model reply")

// StripFences removes a leading ``` or ```json fence (any case, spaces
// allowed before the tag) and a
// trailing ``` fence, then trims whitespace.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimLeft(s[3:], " \t")
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = s[4:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseReply decodes raw model output into a typed reply. The payload of a
// known action type is decoded into its draft; a reply without text or
// with a payload that does not fit its declared type is rejected as a
// whole, so callers never see a partially populated action.
func ParseReply(raw string) (ChatReply, error) {
	body := StripFences(raw)
	if body == "" {
		return ChatReply{}, fmt.Errorf("%w: empty output", ErrMalformedReply)
	}

	var reply ChatReply
	if err := json.Unmarshal([]byte(body), &reply); err != nil {
		return ChatReply{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	reply.Reply = strings.TrimSpace(reply.Reply)
	if reply.Reply == "" {
		return ChatReply{}, fmt.Errorf("%w: missing reply text", ErrMalformedReply)
	}
	if reply.Action == nil {
		reply.Action = &Action{Type: ActionNone}
	}
	return reply, nil
}
