// Package components registers the full element catalog.
//
//	doc := dom.NewDocument()
//	if err := components.Define(doc); err != nil {
//		return err
//	}
package components

import (
	"github.com/vango-dev/elements/pkg/components/button"
	"github.com/vango-dev/elements/pkg/components/checkbox"
	"github.com/vango-dev/elements/pkg/components/collapsible"
	"github.com/vango-dev/elements/pkg/components/input"
	"github.com/vango-dev/elements/pkg/components/tabs"
	"github.com/vango-dev/elements/pkg/components/toggle"
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
)

// Catalog returns the metadata of every component, sorted by name.
func Catalog() []element.Info {
	return []element.Info{
		button.Info,
		checkbox.Info,
		collapsible.Info,
		input.Info,
		tabs.Info,
		toggle.Info,
	}
}

// Lookup returns the component named name.
func Lookup(name string) (element.Info, bool) {
	for _, info := range Catalog() {
		if info.Name == name {
			return info, true
		}
	}
	return element.Info{}, false
}

// Define registers every component with doc.
func Define(doc *dom.Document) error {
	for _, info := range Catalog() {
		if err := info.Define(doc); err != nil {
			return err
		}
	}
	return nil
}
