package input

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
)

// Define registers ui-input with doc.
func Define(doc *dom.Document) error {
	return doc.Define(Tag, newInput)
}

// Info describes the component.
var Info = element.Info{
	Name:        "input",
	Description: "Displays a form input field.",
	Tags:        []string{Tag},
	Attributes:  []string{"value", "default-value", "name", "placeholder", "type", "disabled", "readonly"},
	Events:      []string{EventValueChange},
	DependsOn:   []string{"element", "state"},
	Files:       []string{"input.go"},
	Define:      Define,
}
