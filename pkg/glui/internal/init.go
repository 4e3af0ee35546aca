// Package internal contains the SDL side of glui: window and renderer
// setup, fonts and text measurement, icon and text textures, and the mapping
// of SDL events to virtual buttons and pointer input.
// Types and functions in this package are not part of the public API.
package internal
