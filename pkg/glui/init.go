// Package glui draws a touch friendly material design menu on SDL.
//
// The geometry, scrolling and hit testing live in the layout package and the
// per-frame state machine in the menu package; this package owns the SDL
// window, turns SDL events into menu input and draws each frame.
package glui

import (
	"log/slog"

	"github.com/BrandonKowalski/glui/pkg/glui/config"
	"github.com/BrandonKowalski/glui/pkg/glui/internal"
)

// Options configures the glui initialization.
type Options struct {
	WindowTitle     string                 // Window title displayed in windowed mode
	WindowOptions   internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	Config          *config.Config         // Window size, DPI override, wallpaper and logging
	LogPath         string                 // Full path for log file including filename (creates parent directories)
	FlipFaceButtons bool                   // Use the bottom face button to confirm instead of the right one
}

// Init initializes the SDL subsystems, the window and input handling.
// Must be called before any other glui functions.
func Init(options Options) error {
	cfg := options.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logPath := options.LogPath
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if logPath != "" {
		internal.SetLogPath(logPath)
	}
	internal.SetRawLogLevel(cfg.LogLevel)
	internal.SetInternalLogLevel(internal.ParseLevel(cfg.LogLevel))

	internal.SetFlipFaceButtons(options.FlipFaceButtons)

	if err := internal.Init(options.WindowTitle, cfg.WindowWidth, cfg.WindowHeight, options.WindowOptions); err != nil {
		return NewInfrastructureError("init", err)
	}

	window := internal.GetWindow()
	window.SetDPIOverride(cfg.DPIOverride)
	if cfg.Wallpaper != "" {
		if err := window.LoadWallpaper(cfg.Wallpaper); err != nil {
			internal.GetInternalLogger().Warn("Unable to load wallpaper", "path", cfg.Wallpaper, "error", err)
		}
	}

	w, h := window.Size()
	internal.GetInternalLogger().Info("Window ready", "width", w, "height", h, "dpi", window.DPI())
	return nil
}

// Close releases all SDL resources and shuts down glui.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// GetInternalLogger returns the logger glui itself writes to.
func GetInternalLogger() *slog.Logger {
	return internal.GetInternalLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetFlipFaceButtons enables or disables confirming with the bottom face
// button. Call before Init() to take effect.
func SetFlipFaceButtons(flip bool) {
	internal.SetFlipFaceButtons(flip)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// DPI returns the scale the menu metrics derive from.
func DPI() float32 {
	return internal.GetWindow().DPI()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
