package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	DocURL   string
}

const docBase = "https://elements.vango.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Session errors (E060-E079)
	"E060": {Category: CategorySession, Message: "WebSocket upgrade failed", DocURL: docBase + "E060"},
	"E061": {Category: CategorySession, Message: "Invalid playground frame", DocURL: docBase + "E061"},
	"E062": {Category: CategorySession, Message: "Session limit reached", DocURL: docBase + "E062"},
	"E063": {Category: CategorySession, Message: "Unknown element in playground action", DocURL: docBase + "E063"},

	// Config errors (E100-E119)
	"E100": {Category: CategoryConfig, Message: "Config file not found", DocURL: docBase + "E100"},
	"E101": {Category: CategoryConfig, Message: "Invalid config file", DocURL: docBase + "E101"},
	"E102": {Category: CategoryConfig, Message: "Config validation failed", DocURL: docBase + "E102"},
	"E103": {Category: CategoryConfig, Message: "Invalid theme file", DocURL: docBase + "E103"},

	// Story errors (E120-E139)
	"E120": {Category: CategoryStory, Message: "Invalid story file", DocURL: docBase + "E120"},
	"E121": {Category: CategoryStory, Message: "Story not found", DocURL: docBase + "E121"},
	"E122": {Category: CategoryStory, Message: "Story uses an undefined element", DocURL: docBase + "E122"},

	// Registry errors (E140-E159)
	"E140": {Category: CategoryRegistry, Message: "Invalid registry manifest", DocURL: docBase + "E140"},
	"E141": {Category: CategoryRegistry, Message: "Component not found", DocURL: docBase + "E141"},
	"E142": {Category: CategoryRegistry, Message: "Dependency cycle", DocURL: docBase + "E142"},
	"E143": {Category: CategoryRegistry, Message: "Invalid registry version", DocURL: docBase + "E143"},
	"E144": {Category: CategoryRegistry, Message: "Registry publish failed", DocURL: docBase + "E144"},

	// CLI errors (E160-E179)
	"E160": {Category: CategoryCLI, Message: "Terminal required", DocURL: docBase + "E160"},
	"E161": {Category: CategoryCLI, Message: "Server failed", DocURL: docBase + "E161"},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
