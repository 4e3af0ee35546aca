package constants

// IconID identifies one of the menu icon textures.
type IconID int

const (
	IconPointer IconID = iota
	IconBack
	IconSwitchOn
	IconSwitchOff
	IconTabMain
	IconTabPlaylists
	IconTabSettings
	IconKey
	IconKeyHover
	IconFolder
	IconParentDirectory
	IconImage
	IconArchive
	IconVideo
	IconMusic
	IconQuit
	IconHelp
	IconUpdate
	IconHistory
	IconInfo
	IconAdd
	IconSettings
	IconFile
	IconPlaylist
	IconUpdater
	IconQuickMenu
	IconNetplay
	IconCores
	IconShaders
	IconControls
	IconClose
	IconCoreOptions
	IconCoreCheatOptions
	IconResume
	IconRestart
	IconAddToFavorites
	IconRun
	IconRename
	IconDatabase
	IconAddToMixer
	IconScan
	IconRemove
	IconStartCore
	IconLoadState
	IconSaveState
	IconUndoLoadState
	IconUndoSaveState
	IconStateSlot
	IconTakeScreenshot
	IconConfigurations
	IconLoadContent

	IconCount
)

// iconNames are the base file names (without extension) of each icon.
var iconNames = [IconCount]string{
	IconPointer:          "pointer",
	IconBack:             "back",
	IconSwitchOn:         "on",
	IconSwitchOff:        "off",
	IconTabMain:          "main_tab_passive",
	IconTabPlaylists:     "playlists_tab_passive",
	IconTabSettings:      "settings_tab_passive",
	IconKey:              "key",
	IconKeyHover:         "key-hover",
	IconFolder:           "folder",
	IconParentDirectory:  "parent_directory",
	IconImage:            "image",
	IconArchive:          "archive",
	IconVideo:            "video",
	IconMusic:            "music",
	IconQuit:             "quit",
	IconHelp:             "help",
	IconUpdate:           "update",
	IconHistory:          "history",
	IconInfo:             "information",
	IconAdd:              "add",
	IconSettings:         "settings",
	IconFile:             "file",
	IconPlaylist:         "playlist",
	IconUpdater:          "update",
	IconQuickMenu:        "quickmenu",
	IconNetplay:          "netplay",
	IconCores:            "cores",
	IconShaders:          "shaders",
	IconControls:         "controls",
	IconClose:            "close",
	IconCoreOptions:      "core_options",
	IconCoreCheatOptions: "core_cheat_options",
	IconResume:           "resume",
	IconRestart:          "restart",
	IconAddToFavorites:   "add_to_favorites",
	IconRun:              "run",
	IconRename:           "rename",
	IconDatabase:         "database",
	IconAddToMixer:       "add_to_mixer",
	IconScan:             "scan",
	IconRemove:           "remove",
	IconStartCore:        "start_core",
	IconLoadState:        "load_state",
	IconSaveState:        "save_state",
	IconUndoLoadState:    "undo_load_state",
	IconUndoSaveState:    "undo_save_state",
	IconStateSlot:        "state_slot",
	IconTakeScreenshot:   "take_screenshot",
	IconConfigurations:   "configurations",
	IconLoadContent:      "load_content",
}

// Name returns the base file name of the icon, or "" for an unknown id.
func (id IconID) Name() string {
	if id < 0 || id >= IconCount {
		return ""
	}
	return iconNames[id]
}

// Valid reports whether id names a known icon.
func (id IconID) Valid() bool {
	return id >= 0 && id < IconCount
}

// TabIcon returns the icon drawn for a tab in the bottom bar.
func TabIcon(t Tab) IconID {
	switch t {
	case TabPlaylists:
		return IconTabPlaylists
	case TabSettings:
		return IconTabSettings
	default:
		return IconTabMain
	}
}
