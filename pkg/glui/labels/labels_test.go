package labels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/BurntSushi/toml"
)

func TestEveryLabelHasMessageID(t *testing.T) {
	seen := map[string]ID{}
	for _, id := range All() {
		key := id.MessageID()
		if key == "" {
			t.Errorf("label %d has no message id", id)
			continue
		}
		if prev, dup := seen[key]; dup {
			t.Errorf("labels %d and %d share message id %q", prev, id, key)
		}
		seen[key] = id
	}

	if None.MessageID() != "" || ID(-4).MessageID() != "" || count.MessageID() != "" {
		t.Error("out of range ids should have no message id")
	}
}

func TestIconFor(t *testing.T) {
	tests := []struct {
		name     string
		fileType constants.FileType
		id       ID
		want     constants.IconID
		ok       bool
	}{
		{"directory", constants.FileTypeDirectory, None, constants.IconFolder, true},
		{"parent directory", constants.FileTypeParentDirectory, None, constants.IconParentDirectory, true},
		{"playlist", constants.FileTypePlaylistCollection, None, constants.IconPlaylist, true},
		{"music", constants.FileTypeMusic, None, constants.IconMusic, true},
		{"movie", constants.FileTypeMovie, None, constants.IconVideo, true},
		{"archive member", constants.FileTypeInArchive, None, constants.IconFile, true},
		{"quit label", constants.FileTypeNone, QuitApplication, constants.IconQuit, true},
		{"settings label", constants.FileTypeSetting, VideoSettings, constants.IconSettings, true},
		{"updater label", constants.FileTypeNone, UpdateShaders, constants.IconUpdater, true},
		{"file type wins", constants.FileTypeImage, QuitApplication, constants.IconImage, true},
		{"no icon", constants.FileTypeNone, None, 0, false},
		{"label without icon", constants.FileTypeNone, MainMenu, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := IconFor(tc.fileType, tc.id)
			if ok != tc.ok || (ok && got != tc.want) {
				t.Errorf("IconFor(%v, %v) = %v, %v, want %v, %v", tc.fileType, tc.id, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestIconTablesReferenceKnownIcons(t *testing.T) {
	for id, icon := range labelIcons {
		if !icon.Valid() {
			t.Errorf("label %v maps to invalid icon %d", id, icon)
		}
	}
	for ft, icon := range fileTypeIcons {
		if !icon.Valid() {
			t.Errorf("file type %d maps to invalid icon %d", ft, icon)
		}
	}
}

func TestEnglishCatalogueCoversAllLabels(t *testing.T) {
	data, err := catalogues.ReadFile("locales/active.en.toml")
	if err != nil {
		t.Fatal(err)
	}

	var messages map[string]string
	if _, err := toml.Decode(string(data), &messages); err != nil {
		t.Fatalf("decoding English catalogue: %v", err)
	}

	for _, id := range All() {
		if messages[id.MessageID()] == "" {
			t.Errorf("English catalogue has no %q", id.MessageID())
		}
	}
}

func TestLocalizer(t *testing.T) {
	tests := []struct {
		name string
		lang string
		id   ID
		want string
	}{
		{"default language", "", QuitApplication, "Quit"},
		{"english", "en", MainMenu, "Main Menu"},
		{"german", "de", MainMenu, "Hauptmenü"},
		{"regional german", "de-AT", SettingsTab, "Einstellungen"},
		{"german falls back to english", "de", UpdateCheats, "Update Cheats"},
		{"unsupported language", "ja", HelpList, "Help"},
		{"none", "de", None, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := NewLocalizer(tc.lang, nil)
			if err != nil {
				t.Fatalf("NewLocalizer(%q) error = %v", tc.lang, err)
			}
			if got := l.Label(tc.id); got != tc.want {
				t.Errorf("Label(%v) = %q, want %q", tc.id, got, tc.want)
			}
		})
	}
}

func TestSwitchIcon(t *testing.T) {
	tests := []struct {
		lang   string
		value  string
		want   constants.IconID
		wantOK bool
	}{
		{"en", "ON", constants.IconSwitchOn, true},
		{"en", "Enabled", constants.IconSwitchOn, true},
		{"en", "OFF", constants.IconSwitchOff, true},
		{"en", "Disabled", constants.IconSwitchOff, true},
		{"en", "on", 0, false},
		{"en", "4:3", 0, false},
		{"en", "", 0, false},
		{"de", "AUS", constants.IconSwitchOff, true},
		{"de", "Aktiviert", constants.IconSwitchOn, true},
		{"de", "OFF", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.lang+" "+tc.value, func(t *testing.T) {
			l, err := NewLocalizer(tc.lang, nil)
			if err != nil {
				t.Fatal(err)
			}
			got, ok := l.SwitchIcon(tc.value)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("SwitchIcon(%q) = %v, %v, want %v, %v", tc.value, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestLocalizerRejectsBadLanguage(t *testing.T) {
	_, err := NewLocalizer("not a language!", nil)
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("NewLocalizer() error = %v, want ErrUnknownLanguage", err)
	}
}

func TestLocalizerLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "active.fr.toml")
	if err := os.WriteFile(file, []byte(`QuitApplication = "Quitter"`+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	l, err := NewLocalizer("fr", nil)
	if err != nil {
		t.Fatalf("NewLocalizer() error = %v", err)
	}
	if err := l.LoadFile(file); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if got := l.Label(QuitApplication); got != "Quitter" {
		t.Errorf("Label(QuitApplication) = %q, want Quitter", got)
	}
	if got := l.Label(HelpList); got != "Help" {
		t.Errorf("Label(HelpList) = %q, want Help", got)
	}

	if err := l.LoadFile(filepath.Join(dir, "missing.fr.toml")); err == nil {
		t.Error("LoadFile() of a missing file succeeded")
	}
}
