// Package constants defines shared constants, types, and configuration values
// used throughout the glui menu.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by glui.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	DPIEnvVar          = "GLUI_DPI"
	ConfigPathEnvVar   = "GLUI_CONFIG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// FileType tags a menu entry with the kind of thing it points at.
// Only used to pick an icon.
type FileType int

const (
	FileTypeNone FileType = iota
	FileTypePlain
	FileTypeInArchive
	FileTypeDirectory
	FileTypeParentDirectory
	FileTypePlaylistCollection
	FileTypeRDB
	FileTypeRDBEntry
	FileTypeMusic
	FileTypeMovie
	FileTypeImage
	FileTypeSetting
)

// Tab identifies one of the tabs in the bottom bar.
type Tab int

const (
	TabMain Tab = iota
	TabPlaylists
	TabSettings
)

// TabCount is the number of tabs in the bottom bar.
const TabCount = int(TabSettings) + 1

func (t Tab) String() string {
	switch t {
	case TabMain:
		return "main"
	case TabPlaylists:
		return "playlists"
	case TabSettings:
		return "settings"
	default:
		return ""
	}
}

// Scroll and animation tuning.
const (
	// PointerAccelDamping is applied to the drag acceleration once per frame.
	PointerAccelDamping float32 = 0.96

	// IdealFrameTime is the frame time tweens are advanced by when the
	// measured delta is unusable.
	IdealFrameTime = time.Second / 60

	// MaxFrameTime caps a single tween step so a stalled frame does not
	// make animations jump to their end.
	MaxFrameTime = 4 * IdealFrameTime

	// NavigationAnimationDuration is the scroll-to-selection tween length.
	NavigationAnimationDuration = 10 * IdealFrameTime

	// MessageLineSpacing is the message box line height relative to font size.
	MessageLineSpacing float32 = 1.2
)

// Default timing constants.
const (
	DefaultInputDelay     = 20 * time.Millisecond
	DefaultRepeatDelay    = 300 * time.Millisecond
	DefaultRepeatInterval = 50 * time.Millisecond
)
