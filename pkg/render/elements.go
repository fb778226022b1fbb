package render

// Tags kept on the parent's line when pretty printing. Labels stay inline so
// a checkbox and its caption read as one row.
var inlineTags = map[string]bool{
	"a": true, "b": true, "br": true, "code": true, "em": true, "i": true,
	"kbd": true, "label": true, "small": true, "span": true, "strong": true,
	"sub": true, "sup": true,
}

func isInlineElement(tag string) bool {
	return inlineTags[tag]
}

// Presence attributes: a bool value renders as the bare name or not at all.
// Any other bool renders as "true"/"false", which is what aria-* needs.
var presenceAttrs = map[string]bool{
	// HTML
	"autofocus": true,
	"checked":   true,
	"disabled":  true,
	"hidden":    true,
	"open":      true,
	"readonly":  true,
	"required":  true,
	"selected":  true,

	// ui-* elements
	"default-checked": true,
	"default-open":    true,
	"default-pressed": true,
	"force-mount":     true,
	"indeterminate":   true,
	"loading":         true,
	"pressed":         true,
}

func isBooleanAttr(name string) bool {
	return presenceAttrs[name]
}
