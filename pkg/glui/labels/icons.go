package labels

import "github.com/BrandonKowalski/glui/pkg/glui/constants"

// fileTypeIcons decides the icon of entries that point at files or lists.
var fileTypeIcons = map[constants.FileType]constants.IconID{
	constants.FileTypeParentDirectory:    constants.IconParentDirectory,
	constants.FileTypePlaylistCollection: constants.IconPlaylist,
	constants.FileTypeRDB:                constants.IconDatabase,
	constants.FileTypeRDBEntry:           constants.IconSettings,
	constants.FileTypeInArchive:          constants.IconFile,
	constants.FileTypePlain:              constants.IconFile,
	constants.FileTypeMusic:              constants.IconMusic,
	constants.FileTypeMovie:              constants.IconVideo,
	constants.FileTypeImage:              constants.IconImage,
	constants.FileTypeDirectory:          constants.IconFolder,
}

// labelIcons decides the icon of well-known entries by their label id.
var labelIcons = map[ID]constants.IconID{
	InformationList:            constants.IconInfo,
	NoCoreInformationAvailable: constants.IconInfo,
	NoItems:                    constants.IconInfo,
	NoCoreOptionsAvailable:     constants.IconInfo,
	NoSettingsFound:            constants.IconInfo,

	ScanThisDirectory:  constants.IconScan,
	LoadContentHistory: constants.IconHistory,
	HelpList:           constants.IconHelp,
	RestartContent:     constants.IconRestart,
	ResumeContent:      constants.IconResume,
	CloseContent:       constants.IconClose,

	CoreOptions:               constants.IconCoreOptions,
	CoreCheatOptions:          constants.IconCoreCheatOptions,
	CoreInputRemappingOptions: constants.IconControls,
	ShaderOptions:             constants.IconShaders,
	CoreList:                  constants.IconCores,

	Run:                     constants.IconRun,
	AddToFavorites:          constants.IconAddToFavorites,
	PlaylistEntryRename:     constants.IconRename,
	AddToMixer:              constants.IconAddToMixer,
	AddToMixerAndCollection: constants.IconAddToMixer,
	StartCore:               constants.IconStartCore,
	RunMusic:                constants.IconStartCore,

	LoadState:                     constants.IconLoadState,
	SaveState:                     constants.IconSaveState,
	SaveCurrentConfigOverrideCore: constants.IconSaveState,
	SaveCurrentConfigOverrideGame: constants.IconSaveState,
	UndoLoadState:                 constants.IconUndoLoadState,
	UndoSaveState:                 constants.IconUndoSaveState,
	StateSlot:                     constants.IconStateSlot,
	TakeScreenshot:                constants.IconTakeScreenshot,
	ConfigurationsList:            constants.IconConfigurations,
	LoadContentList:               constants.IconLoadContent,
	DeleteEntry:                   constants.IconRemove,
	Netplay:                       constants.IconNetplay,
	ContentSettings:               constants.IconQuickMenu,

	OnlineUpdater:            constants.IconUpdater,
	UpdateCoreInfoFiles:      constants.IconUpdater,
	UpdateAutoconfigProfiles: constants.IconUpdater,
	UpdateAssets:             constants.IconUpdater,
	UpdateCheats:             constants.IconUpdater,
	UpdateDatabases:          constants.IconUpdater,
	UpdateOverlays:           constants.IconUpdater,
	UpdateShaders:            constants.IconUpdater,

	ScanDirectory: constants.IconAdd,
	ScanFile:      constants.IconAdd,

	QuitApplication: constants.IconQuit,

	FileBrowserSettings:     constants.IconSettings,
	DriverSettings:          constants.IconSettings,
	VideoSettings:           constants.IconSettings,
	AudioSettings:           constants.IconSettings,
	InputSettings:           constants.IconSettings,
	InputHotkeyBinds:        constants.IconSettings,
	CoreSettings:            constants.IconSettings,
	ConfigurationSettings:   constants.IconSettings,
	SavingSettings:          constants.IconSettings,
	LoggingSettings:         constants.IconSettings,
	FrameThrottleSettings:   constants.IconSettings,
	RecordingSettings:       constants.IconSettings,
	OnscreenDisplaySettings: constants.IconSettings,
	UserInterfaceSettings:   constants.IconSettings,
	AchievementsSettings:    constants.IconSettings,
	WifiSettings:            constants.IconSettings,
	NetworkSettings:         constants.IconSettings,
	PlaylistSettings:        constants.IconSettings,
	UserSettings:            constants.IconSettings,
	DirectorySettings:       constants.IconSettings,
	PrivacySettings:         constants.IconSettings,
	MenuViewsSettings:       constants.IconSettings,
	MenuSettings:            constants.IconSettings,
	RewindSettings:          constants.IconSettings,
	AccountsList:            constants.IconSettings,
	CoreUpdaterList:         constants.IconSettings,

	Favorites:                    constants.IconFolder,
	DownloadedFileDetectCoreList: constants.IconFolder,
}

// IconFor returns the icon of an entry. The file type wins over the label
// id; entries with neither get no icon.
func IconFor(fileType constants.FileType, id ID) (constants.IconID, bool) {
	if icon, ok := fileTypeIcons[fileType]; ok {
		return icon, true
	}
	if icon, ok := labelIcons[id]; ok {
		return icon, true
	}
	return 0, false
}

// SwitchIcon returns the switch icon drawn in place of an on/off value. The
// value is compared with the translations of ValueOn, ValueOff, Enabled and
// Disabled; any other value is drawn as text.
func (l *Localizer) SwitchIcon(value string) (constants.IconID, bool) {
	if value == "" {
		return 0, false
	}
	switch value {
	case l.Label(Disabled), l.Label(ValueOff):
		return constants.IconSwitchOff, true
	case l.Label(Enabled), l.Label(ValueOn):
		return constants.IconSwitchOn, true
	}
	return 0, false
}
