package button

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
)

// Define registers ui-button with doc.
func Define(doc *dom.Document) error {
	return doc.Define(Tag, newButton)
}

// Info describes the component.
var Info = element.Info{
	Name:        "button",
	Description: "Displays a button or a component that looks like a button.",
	Tags:        []string{Tag},
	Attributes:  []string{"variant", "size", "type", "name", "value", "disabled", "loading"},
	DependsOn:   []string{"element"},
	Files:       []string{"button.go"},
	Define:      Define,
}
