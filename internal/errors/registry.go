package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Runtime (E100-E139)

	"E101": {
		Category: CategoryRuntime,
		Message:  "SetState called before mount",
		Detail:   "The component has no previous output to reconcile against. Components only re-render after they have been mounted through Render or as part of a mounted parent.",
	},
	"E102": {
		Category: CategoryRuntime,
		Message:  "Unknown node kind",
		Detail:   "Build accepts a tag name (string) or a component factory (func() vdom.Component).",
	},
	"E103": {
		Category: CategoryRuntime,
		Message:  "Render depth exceeded",
		Detail:   "A component kept rendering other components without ever producing an element or text node.",
	},
	"E104": {
		Category: CategoryRuntime,
		Message:  "Component rendered nil",
		Detail:   "Render must return an element, a text node or another component.",
	},
	"E105": {
		Category: CategoryRuntime,
		Message:  "Component factory returned nil",
		Detail:   "The factory passed to Build must return a non-nil component.",
	},
	"E106": {
		Category: CategoryRuntime,
		Message:  "Unsupported child value",
		Detail:   "Children must be nodes, components, strings, numbers, fmt.Stringer values or slices of those.",
	},

	// Config (E200-E219)

	"E201": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No vrange.json was found in the given directory.",
	},
	"E202": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "vrange.json could not be parsed as JSON.",
	},
	"E203": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration value is out of range.",
	},

	// CLI (E300-E319)

	"E301": {
		Category: CategoryCLI,
		Message:  "Unknown demo",
		Detail:   "The requested demo component does not exist.",
	},
	"E302": {
		Category: CategoryCLI,
		Message:  "Host element not found",
		Detail:   "The host document has no element with the requested id.",
	},
	"E303": {
		Category: CategoryCLI,
		Message:  "Event target not found",
		Detail:   "No element matches the requested event target.",
	},

	// Storage (E400-E419)

	"E401": {
		Category: CategoryStorage,
		Message:  "Snapshot write failed",
		Detail:   "The rendered snapshot could not be persisted.",
	},
	"E402": {
		Category: CategoryStorage,
		Message:  "Invalid snapshot destination",
		Detail:   "Snapshot keys are relative names without '..' segments.",
	},
	"E403": {
		Category: CategoryStorage,
		Message:  "Snapshot read failed",
		Detail:   "The stored snapshot could not be read.",
	},
}

// GetAllCodes returns all registered error codes in order.
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
