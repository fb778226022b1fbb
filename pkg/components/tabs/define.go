package tabs

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
)

// Define registers the tabs elements with doc.
func Define(doc *dom.Document) error {
	for tag, ctor := range map[string]dom.Constructor{
		TagRoot:    newTabs,
		TagList:    newList,
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
	Name:        "tabs",
	Description: "A set of layered sections of content, displayed one at a time.",
	Tags:        []string{TagRoot, TagList, TagTrigger, TagContent},
	Attributes:  []string{"value", "default-value", "orientation", "dir", "loop", "disabled", "force-mount"},
	Events:      []string{EventValueChange},
	DependsOn:   []string{"element", "owner", "selection", "roving"},
	Files:       []string{"tabs.go", "list.go", "trigger.go", "content.go"},
	Define:      Define,
}
