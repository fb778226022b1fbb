package checkbox

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
)

// Define registers ui-checkbox with doc.
func Define(doc *dom.Document) error {
	return doc.Define(Tag, newCheckbox)
}

// Info describes the component.
var Info = element.Info{
	Name:        "checkbox",
	Description: "A control that allows the user to toggle between checked and not checked.",
	Tags:        []string{Tag},
	Attributes:  []string{"checked", "default-checked", "indeterminate", "disabled", "required", "name", "value"},
	Events:      []string{EventCheckedChange},
	DependsOn:   []string{"element", "state", "owner"},
	Files:       []string{"checkbox.go"},
	Define:      Define,
}
