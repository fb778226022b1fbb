package toggle

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
)

// Define registers ui-toggle with doc.
func Define(doc *dom.Document) error {
	return doc.Define(Tag, newToggle)
}

// Info describes the component.
var Info = element.Info{
	Name:        "toggle",
	Description: "A two-state button that can be either on or off.",
	Tags:        []string{Tag},
	Attributes:  []string{"pressed", "default-pressed", "disabled", "name", "value", "variant", "size"},
	Events:      []string{EventPressedChange},
	DependsOn:   []string{"element", "state"},
	Files:       []string{"toggle.go"},
	Define:      Define,
}
