package ui

import (
	"strconv"
	"strings"
)

const (
	CallbackPrefix = "ats:"
	ActionPage     = "page"
	ActionSelect   = "select"
	ActionNoop     = "noop"
)

// CallbackData is a parsed "ats:action:value" string.
type CallbackData struct {
	Action string
	Value  string
}

// ParseCallback returns nil for data without the bot prefix.
func ParseCallback(data string) *CallbackData {
	if !IsCallback(data) {
		return nil
	}

	action, value, _ := strings.Cut(strings.TrimPrefix(data, CallbackPrefix), ":")
	return &CallbackData{Action: action, Value: value}
}

func IsCallback(data string) bool {
	return strings.HasPrefix(data, CallbackPrefix)
}

func BuildCallback(action string, value ...string) string {
	if len(value) > 0 && value[0] != "" {
		return CallbackPrefix + action + ":" + value[0]
	}
	return CallbackPrefix + action
}

// PageNumber is 0 for anything that is not a valid page callback.
func (c *CallbackData) PageNumber() int {
	if c.Action != ActionPage {
		return 0
	}
	n, err := strconv.Atoi(c.Value)
	if err != nil {
		return 0
	}
	return n
}

func (c *CallbackData) SelectedID() string {
	if c.Action != ActionSelect {
		return ""
	}
	return c.Value
}
