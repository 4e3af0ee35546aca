// Package labels enumerates the well-known menu labels and maps them to icons
// and to localised display strings.
//
// Labels are identified by ID rather than by their display text, so deciding
// which icon an entry gets is a single table lookup made when the label set
// is defined.
package labels

// ID identifies a well-known menu label.
type ID int

const (
	None ID = iota

	// Lists
	MainMenu
	PlaylistsTab
	SettingsTab
	Favorites
	DownloadedFileDetectCoreList

	// Information
	InformationList
	NoCoreInformationAvailable
	NoItems
	NoCoreOptionsAvailable
	NoSettingsFound
	HelpList

	// Content
	LoadContentList
	LoadContentHistory
	ScanThisDirectory
	ScanDirectory
	ScanFile
	RestartContent
	ResumeContent
	CloseContent
	Run
	RunMusic
	StartCore
	AddToFavorites
	AddToMixer
	AddToMixerAndCollection
	PlaylistEntryRename
	DeleteEntry
	ContentSettings

	// Core
	CoreList
	CoreOptions
	CoreCheatOptions
	CoreInputRemappingOptions
	ShaderOptions

	// States
	LoadState
	SaveState
	UndoLoadState
	UndoSaveState
	StateSlot
	SaveCurrentConfigOverrideCore
	SaveCurrentConfigOverrideGame
	TakeScreenshot

	// Configuration
	ConfigurationsList
	Netplay

	// Updater
	OnlineUpdater
	UpdateCoreInfoFiles
	UpdateAutoconfigProfiles
	UpdateAssets
	UpdateCheats
	UpdateDatabases
	UpdateOverlays
	UpdateShaders

	QuitApplication

	// Settings categories
	DriverSettings
	VideoSettings
	AudioSettings
	InputSettings
	InputHotkeyBinds
	CoreSettings
	ConfigurationSettings
	SavingSettings
	LoggingSettings
	FrameThrottleSettings
	RecordingSettings
	OnscreenDisplaySettings
	UserInterfaceSettings
	AchievementsSettings
	WifiSettings
	NetworkSettings
	PlaylistSettings
	UserSettings
	DirectorySettings
	PrivacySettings
	MenuSettings
	MenuViewsSettings
	FileBrowserSettings
	RewindSettings
	AccountsList
	CoreUpdaterList

	// Setting values
	ValueOn
	ValueOff
	Enabled
	Disabled

	count
)

// messageIDs are the catalogue keys of each label.
var messageIDs = [count]string{
	None:                          "",
	MainMenu:                      "MainMenu",
	PlaylistsTab:                  "PlaylistsTab",
	SettingsTab:                   "SettingsTab",
	Favorites:                     "Favorites",
	DownloadedFileDetectCoreList:  "DownloadedFileDetectCoreList",
	InformationList:               "InformationList",
	NoCoreInformationAvailable:    "NoCoreInformationAvailable",
	NoItems:                       "NoItems",
	NoCoreOptionsAvailable:        "NoCoreOptionsAvailable",
	NoSettingsFound:               "NoSettingsFound",
	HelpList:                      "HelpList",
	LoadContentList:               "LoadContentList",
	LoadContentHistory:            "LoadContentHistory",
	ScanThisDirectory:             "ScanThisDirectory",
	ScanDirectory:                 "ScanDirectory",
	ScanFile:                      "ScanFile",
	RestartContent:                "RestartContent",
	ResumeContent:                 "ResumeContent",
	CloseContent:                  "CloseContent",
	Run:                           "Run",
	RunMusic:                      "RunMusic",
	StartCore:                     "StartCore",
	AddToFavorites:                "AddToFavorites",
	AddToMixer:                    "AddToMixer",
	AddToMixerAndCollection:       "AddToMixerAndCollection",
	PlaylistEntryRename:           "PlaylistEntryRename",
	DeleteEntry:                   "DeleteEntry",
	ContentSettings:               "ContentSettings",
	CoreList:                      "CoreList",
	CoreOptions:                   "CoreOptions",
	CoreCheatOptions:              "CoreCheatOptions",
	CoreInputRemappingOptions:     "CoreInputRemappingOptions",
	ShaderOptions:                 "ShaderOptions",
	LoadState:                     "LoadState",
	SaveState:                     "SaveState",
	UndoLoadState:                 "UndoLoadState",
	UndoSaveState:                 "UndoSaveState",
	StateSlot:                     "StateSlot",
	SaveCurrentConfigOverrideCore: "SaveCurrentConfigOverrideCore",
	SaveCurrentConfigOverrideGame: "SaveCurrentConfigOverrideGame",
	TakeScreenshot:                "TakeScreenshot",
	ConfigurationsList:            "ConfigurationsList",
	Netplay:                       "Netplay",
	OnlineUpdater:                 "OnlineUpdater",
	UpdateCoreInfoFiles:           "UpdateCoreInfoFiles",
	UpdateAutoconfigProfiles:      "UpdateAutoconfigProfiles",
	UpdateAssets:                  "UpdateAssets",
	UpdateCheats:                  "UpdateCheats",
	UpdateDatabases:               "UpdateDatabases",
	UpdateOverlays:                "UpdateOverlays",
	UpdateShaders:                 "UpdateShaders",
	QuitApplication:               "QuitApplication",
	DriverSettings:                "DriverSettings",
	VideoSettings:                 "VideoSettings",
	AudioSettings:                 "AudioSettings",
	InputSettings:                 "InputSettings",
	InputHotkeyBinds:              "InputHotkeyBinds",
	CoreSettings:                  "CoreSettings",
	ConfigurationSettings:         "ConfigurationSettings",
	SavingSettings:                "SavingSettings",
	LoggingSettings:               "LoggingSettings",
	FrameThrottleSettings:         "FrameThrottleSettings",
	RecordingSettings:             "RecordingSettings",
	OnscreenDisplaySettings:       "OnscreenDisplaySettings",
	UserInterfaceSettings:         "UserInterfaceSettings",
	AchievementsSettings:          "AchievementsSettings",
	WifiSettings:                  "WifiSettings",
	NetworkSettings:               "NetworkSettings",
	PlaylistSettings:              "PlaylistSettings",
	UserSettings:                  "UserSettings",
	DirectorySettings:             "DirectorySettings",
	PrivacySettings:               "PrivacySettings",
	MenuSettings:                  "MenuSettings",
	MenuViewsSettings:             "MenuViewsSettings",
	FileBrowserSettings:           "FileBrowserSettings",
	RewindSettings:                "RewindSettings",
	AccountsList:                  "AccountsList",
	CoreUpdaterList:               "CoreUpdaterList",
	ValueOn:                       "ValueOn",
	ValueOff:                      "ValueOff",
	Enabled:                       "Enabled",
	Disabled:                      "Disabled",
}

// MessageID returns the catalogue key of the label, or "" for None and
// unknown ids.
func (id ID) MessageID() string {
	if id <= None || id >= count {
		return ""
	}
	return messageIDs[id]
}

func (id ID) String() string {
	if s := id.MessageID(); s != "" {
		return s
	}
	return "None"
}

// All returns every label id except None, in declaration order.
func All() []ID {
	ids := make([]ID, 0, count-1)
	for id := None + 1; id < count; id++ {
		ids = append(ids, id)
	}
	return ids
}
