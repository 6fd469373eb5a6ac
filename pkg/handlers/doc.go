// Package handlers provides application object variants for a registry.
//
// Each variant is a model.Behavior selected by object type through
// Factory:
//
//	43000 Relay       forwards every default value update to its output links
//	43001 Counter     answers input pulls with an incrementing CurrentValue
//	43002 Ticker      pulls its input link and pushes its output links on each interval
//	43003 Expression  computes OutputValue from an expression resource
//
// Hook failures cannot be returned to the caller that triggered them, so
// variants report them through the registry's logger at Warn level.
package handlers
