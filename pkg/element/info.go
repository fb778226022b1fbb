package element

import "github.com/vango-dev/elements/pkg/dom"

// Info describes a component for the catalog and the registry.
type Info struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Tags        []string   `json:"tags" yaml:"tags"`
	Attributes  []string   `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Events      []string   `json:"events,omitempty" yaml:"events,omitempty"`
	DependsOn   []string   `json:"dependsOn,omitempty" yaml:"dependsOn,omitempty"`
	Files       []string   `json:"files,omitempty" yaml:"files,omitempty"`
	Define      DefineFunc `json:"-" yaml:"-"`
}

// DefineFunc registers a component's tags with a document.
type DefineFunc func(doc *dom.Document) error
