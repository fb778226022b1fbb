// Package vdom provides the virtual node tree used to serialise element trees
// and documentation pages to HTML.
//
// Nodes are plain values built with element helpers:
//
//	page := Div(Class("docs"),
//	    H1(Text("Collapsible")),
//	    P(Text("A disclosure with an animated content region.")),
//	)
//
// Element helpers accept any mix of attributes ([Attr], []Attr), children
// (*VNode, []*VNode), strings (text shorthand) and nil (ignored, which allows
// conditional children). The tree is consumed by pkg/render.
package vdom
