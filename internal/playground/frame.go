package playground

import (
	"encoding/json"

	"github.com/vango-dev/elements/internal/config"
	"github.com/vango-dev/elements/internal/errors"
)

// Action types accepted from clients.
const (
	ActionClick      = "click"
	ActionPress      = "press"
	ActionInput      = "input"
	ActionFocus      = "focus"
	ActionSetAttr    = "set-attr"
	ActionRemoveAttr = "remove-attr"
	ActionRestart    = "restart"
	ActionFinish     = "finish"
)

// Action is a client request to interact with the story.
//
//	{"type": "press", "target": "account-tab", "key": "ArrowRight"}
type Action struct {
	Type   string `json:"type" validate:"required,oneof=click press input focus set-attr remove-attr restart finish"`
	Target string `json:"target,omitempty" validate:"required_unless=Type restart Type finish"`
	Key    string `json:"key,omitempty" validate:"required_if=Type press"`
	Name   string `json:"name,omitempty"`
	Value  string `json:"value,omitempty"`
}

// Frame types sent to clients.
const (
	FrameState = "state"
	FrameError = "error"
)

// Frame is a server message: the rendered story after an action, or an
// error.
type Frame struct {
	Type    string                `json:"type"`
	Session string                `json:"session,omitempty"`
	Story   string                `json:"story,omitempty"`
	HTML    string                `json:"html,omitempty"`
	Focused string                `json:"focused,omitempty"`
	Events  []Event               `json:"events,omitempty"`
	Error   *errors.ElementsError `json:"error,omitempty"`
}

// Event is a component event observed while applying an action.
type Event struct {
	Type   string `json:"type"`
	Target string `json:"target,omitempty"`
	Detail any    `json:"detail,omitempty"`
}

// DecodeAction parses and validates a client frame.
func DecodeAction(data []byte) (Action, error) {
	var a Action
	if err := json.Unmarshal(data, &a); err != nil {
		return Action{}, errors.New("E061").Wrap(err)
	}
	if err := config.Validator().Struct(a); err != nil {
		return Action{}, errors.New("E061").Wrap(err).
			WithSuggestion(`Send {"type": "click", "target": "<element id>"}`)
	}
	if (a.Type == ActionSetAttr || a.Type == ActionRemoveAttr) && a.Name == "" {
		return Action{}, errors.New("E061").WithDetail(a.Type + " needs an attribute name")
	}
	return a, nil
}

// ErrorFrame wraps err for a client. Uncoded errors are reported as E061.
func ErrorFrame(err error) Frame {
	return Frame{Type: FrameError, Error: errors.FromError(err, "E061")}
}
