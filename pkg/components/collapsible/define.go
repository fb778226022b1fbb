package collapsible

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
)

// Define registers the collapsible elements with doc.
func Define(doc *dom.Document) error {
	for tag, ctor := range map[string]dom.Constructor{
		TagRoot:    newCollapsible,
		TagTrigger: newTrigger,
		TagContent: newContent,
	} {
		if err := doc.Define(tag, ctor); err != nil {
			return err
		}
	}
	return nil
}

// Info describes the component.
var Info = element.Info{
	Name:        "collapsible",
	Description: "An interactive component which expands and collapses a panel.",
	Tags:        []string{TagRoot, TagTrigger, TagContent},
	Attributes:  []string{"open", "default-open", "disabled", "force-mount"},
	Events:      []string{EventOpenChange},
	DependsOn:   []string{"element", "state", "owner", "disclosure"},
	Files:       []string{"collapsible.go", "trigger.go", "content.go"},
	Define:      Define,
}
