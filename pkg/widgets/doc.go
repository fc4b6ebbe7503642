// Package widgets provides the built-in widget set: text labels, buttons,
// padding, and linear containers. Widgets are declared per pass with Build,
// which keys the underlying render object to the application call site.
package widgets
