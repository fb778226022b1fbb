// Package errors provides structured, actionable error messages for the
// elements tooling.
//
// Every error carries a code (e.g. "E120") registered with a category, a
// short message and a documentation link. Callers add a location, a detail
// and a suggestion, and wrap the underlying cause:
//
//	err := errors.New("E120").
//	    WithLocation("stories.yaml", 14, 5).
//	    WithDetail("unknown field \"childs\"").
//	    WithSuggestion("Use \"children\" for nested elements")
//
//	errors.PrintError(err)
//	// ERROR E120: Invalid story file
//	//
//	//   stories.yaml:14:5
//	//
//	//   unknown field "childs"
//	//
//	//   Hint: Use "children" for nested elements
//	//
//	//   Learn more: https://elements.vango.dev/docs/errors/E120
//
// # Categories
//
//   - config: elements.json and theme.toml problems
//   - story: story definition problems
//   - registry: manifest building, validation and publishing
//   - session: playground websocket sessions
//   - cli: command-line usage
//
// Widget behavior never produces these errors: invalid interactions are
// silently ignored by the components themselves.
package errors
