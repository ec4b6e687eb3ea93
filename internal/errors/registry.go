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
	// Config errors (E100-E199)

	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No logsviewer.json or logsviewer.toml was found.",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Configuration file could not be parsed",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "Port must be between 0 and 65535.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid duration",
		Detail:   "Durations use Go syntax, e.g. \"50ms\" or \"30s\".",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Invalid duplicate path policy",
		Detail:   "Policy must be \"reject\" or \"first-match\".",
	},
	"E105": {
		Category: CategoryConfig,
		Message:  "Unsupported configuration format",
		Detail:   "Configuration files must end in .json or .toml.",
	},
	"E106": {
		Category: CategoryConfig,
		Message:  "Invalid log settings",
		Detail:   "Level must be debug, info, warn or error; format must be text or json.",
	},
	"E107": {
		Category: CategoryConfig,
		Message:  "Configuration file could not be written",
	},

	// Routing errors (E200-E299)

	"E200": {
		Category: CategoryRouting,
		Message:  "Duplicate route path",
		Detail:   "Two route entries declare the same path; only the first could ever match.",
	},
	"E201": {
		Category: CategoryRouting,
		Message:  "Invalid route path",
		Detail:   "Route paths must be non-empty and start with \"/\".",
	},
	"E202": {
		Category: CategoryRouting,
		Message:  "Route group without label",
		Detail:   "Every route group needs a label for the navigation menu.",
	},
	"E203": {
		Category: CategoryRouting,
		Message:  "Route entry without view",
		Detail:   "Every route entry must reference a view to render.",
	},

	// Navigation errors (E300-E399)

	"E300": {
		Category: CategoryNavigation,
		Message:  "Invalid navigation path",
		Detail:   "Navigation targets must be app-relative paths starting with \"/\".",
	},
	"E301": {
		Category: CategoryNavigation,
		Message:  "Session closed",
		Detail:   "The navigation context has been torn down.",
	},

	// Protocol errors (E400-E499)

	"E400": {
		Category: CategoryProtocol,
		Message:  "WebSocket upgrade failed",
	},
	"E401": {
		Category: CategoryProtocol,
		Message:  "Malformed frame",
		Detail:   "Frames are JSON objects with a \"type\" field.",
	},
	"E402": {
		Category: CategoryProtocol,
		Message:  "Session limit reached",
	},

	// CLI errors (E500-E599)

	"E500": {
		Category: CategoryCLI,
		Message:  "Server failed",
	},
}

// GetAllCodes returns all registered error codes in ascending order.
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
