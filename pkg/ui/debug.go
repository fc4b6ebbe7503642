package ui

// DebugMode controls defensive contract checks during layout and phase
// dispatch. When true, constraint violations and phase re-entrancy are
// logged; the checks never turn into panics.
var DebugMode = true

// SetDebugMode enables or disables debug checks for the framework.
func SetDebugMode(debug bool) {
	DebugMode = debug
}
