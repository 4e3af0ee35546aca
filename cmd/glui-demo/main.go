// Command glui-demo shows the menu with a few demonstration lists.
//
//	glui-demo -config glui.toml
//
// The Main tab browses the working directory, Playlists lists the .lpl files
// found there and Settings changes the colour theme and language, saving the
// configuration when a value changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/BrandonKowalski/glui/pkg/glui"
	"github.com/BrandonKowalski/glui/pkg/glui/config"
	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/BrandonKowalski/glui/pkg/glui/icons"
	"github.com/BrandonKowalski/glui/pkg/glui/labels"
	"github.com/BrandonKowalski/glui/pkg/glui/layout"
	"github.com/BrandonKowalski/glui/pkg/glui/menu"
	"github.com/BrandonKowalski/glui/pkg/glui/pointer"
	"github.com/BrandonKowalski/glui/pkg/glui/router"
	"github.com/BrandonKowalski/glui/pkg/glui/theme"
)

const (
	listMain router.List = iota
	listFiles
	listPlaylists
	listSettings
	listInterface
	listUser
	listHelp
)

type demo struct {
	cfg     *config.Config
	cfgPath string
	loc     *labels.Localizer
	rend    *glui.Renderer
	dir     string
	nick    string
	logger  *slog.Logger
}

func main() {
	configPath := flag.String("config", config.Path("glui.toml"), "path to the configuration file")
	flag.Parse()

	err := run(*configPath)
	switch {
	case err == nil, glui.IsCancelled(err):
	case glui.IsInfrastructureError(err):
		fmt.Fprintln(os.Stderr, "glui-demo: display unavailable:", err)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "glui-demo:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	if err := glui.Init(glui.Options{WindowTitle: "glui", Config: cfg}); err != nil {
		return err
	}
	defer glui.Close()

	logger := glui.GetLogger()

	loc, err := labels.NewLocalizer(cfg.Language, logger)
	if err != nil {
		return err
	}

	t, err := cfg.Theme()
	if err != nil {
		return err
	}

	metrics := layout.NewMetrics(glui.DPI())
	rend, err := glui.NewRenderer(t, loc, cfg.FontPath, metrics)
	if err != nil {
		return err
	}
	defer rend.Close()

	rend.LoadIcons(icons.NewLoader(cfg.IconDir, int(metrics.IconSize), logger).LoadAll())

	dir, _ := os.Getwd()
	d := &demo{cfg: cfg, cfgPath: configPath, loc: loc, rend: rend, dir: dir, logger: logger}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var tracker *pointer.Tracker
	opts := []menu.Option{
		menu.WithLogger(logger),
		menu.WithEngineOptions(layout.WithDPI(glui.DPI), layout.WithMeasurer(rend)),
	}
	if cfg.PointerEnable {
		tracker = pointer.NewTracker()
		opts = append(opts, menu.WithPointer(tracker))

		if cfg.TouchDevice != "" {
			w, h := glui.GetWindow().Size()
			reader := pointer.NewTouchReader(cfg.TouchDevice, tracker, w, h, logger)
			if err := reader.Start(ctx); err != nil {
				logger.Warn("Touchscreen unavailable", "device", cfg.TouchDevice, "error", err)
			} else {
				defer reader.Close()
			}
		}
	}

	ctrl := menu.New(d.router(), metrics, opts...)
	if err := ctrl.Start(constants.TabMain); err != nil {
		return err
	}

	return glui.Run(ctx, glui.App{
		Controller: ctrl,
		Renderer:   rend,
		Handler:    d.handle,
		Pointer:    tracker,
		Mouse:      cfg.MouseEnable,
		// The evdev reader owns the touchscreen when one is configured.
		Touch: cfg.TouchDevice == "",
	})
}

func (d *demo) router() *router.Router {
	r := router.New(d.logger)

	r.Register(listMain, labels.MainMenu, d.mainList).
		Register(listFiles, labels.LoadContentList, d.fileList).
		Register(listPlaylists, labels.PlaylistsTab, d.playlistList).
		Register(listSettings, labels.SettingsTab, d.settingsList).
		Register(listInterface, labels.UserInterfaceSettings, d.interfaceList).
		Register(listUser, labels.UserSettings, d.userList).
		Register(listHelp, labels.HelpList, d.helpList)

	r.Link(labels.LoadContentList, listFiles).
		Link(labels.UserInterfaceSettings, listInterface).
		Link(labels.UserSettings, listUser).
		Link(labels.HelpList, listHelp)

	r.Tab(constants.TabMain, listMain).
		Tab(constants.TabPlaylists, listPlaylists).
		Tab(constants.TabSettings, listSettings)

	return r
}

func (d *demo) mainList() (layout.EntryList, error) {
	return layout.EntryList{
		glui.WithSublabel(glui.LabelItem(d.loc, labels.LoadContentList, ""), d.dir),
		glui.LabelItem(d.loc, labels.HelpList, ""),
		glui.LabelItem(d.loc, labels.InformationList, ""),
		glui.LabelItem(d.loc, labels.QuitApplication, ""),
	}, nil
}

func (d *demo) fileList() (layout.EntryList, error) {
	files, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, err
	}

	list := layout.EntryList{glui.FileItem("..", constants.FileTypeParentDirectory)}
	for _, f := range files {
		if strings.HasPrefix(f.Name(), ".") {
			continue
		}
		ft := constants.FileTypePlain
		if f.IsDir() {
			ft = constants.FileTypeDirectory
		}
		list = append(list, glui.FileItem(f.Name(), ft))
	}
	return list, nil
}

func (d *demo) playlistList() (layout.EntryList, error) {
	matches, err := filepath.Glob(filepath.Join(d.dir, "*.lpl"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return layout.EntryList{glui.LabelItem(d.loc, labels.NoItems, "")}, nil
	}

	var list layout.EntryList
	for _, m := range matches {
		name := strings.TrimSuffix(filepath.Base(m), ".lpl")
		list = append(list, glui.FileItem(name, constants.FileTypePlaylistCollection))
	}
	return list, nil
}

func (d *demo) settingsList() (layout.EntryList, error) {
	return layout.EntryList{
		glui.LabelItem(d.loc, labels.UserInterfaceSettings, ""),
		glui.LabelItem(d.loc, labels.UserSettings, ""),
		glui.LabelItem(d.loc, labels.VideoSettings, ""),
		glui.LabelItem(d.loc, labels.AudioSettings, ""),
		glui.LabelItem(d.loc, labels.InputSettings, ""),
	}, nil
}

func (d *demo) interfaceList() (layout.EntryList, error) {
	return layout.EntryList{
		glui.WithSublabel(glui.Item("Color theme", d.cfg.ColorTheme), "Left and right cycle through the themes."),
		glui.Item("Language", d.cfg.Language),
		glui.WithSublabel(glui.Item("Mouse", d.switchValue(d.cfg.MouseEnable)), "Takes effect on the next start."),
	}, nil
}

func (d *demo) userList() (layout.EntryList, error) {
	return layout.EntryList{glui.Item("Nickname", d.nick)}, nil
}

func (d *demo) helpList() (layout.EntryList, error) {
	return layout.EntryList{
		glui.WithSublabel(glui.Item("Navigation", ""), "Up and down move the selection, L and R move a page. Left and right switch tabs on a tab root."),
		glui.WithSublabel(glui.Item("Touch", ""), "Drag to scroll, tap an entry to open it. Tap the title to go back."),
	}, nil
}

func (d *demo) handle(ctrl *menu.Controller, action menu.Action) error {
	switch action.Kind {
	case menu.ActionCancel:
		return glui.ErrCancelled

	case menu.ActionActivate:
		switch action.Entry.LabelID {
		case labels.QuitApplication:
			return glui.ErrQuit
		case labels.InformationList:
			ctrl.ShowMessage(fmt.Sprintf("glui\nDPI %.0f", glui.DPI()))
			return nil
		}
		if action.List == listUser {
			ctrl.ShowKeyboard(action.Entry.Label)
			return nil
		}
		if action.List == listFiles {
			return d.openFile(ctrl, action.Entry)
		}
		ctrl.ShowMessage(action.Entry.Label)

	case menu.ActionLeft, menu.ActionRight:
		if action.List != listInterface {
			return nil
		}
		step := 1
		if action.Kind == menu.ActionLeft {
			step = -1
		}
		switch action.Index {
		case 0:
			d.cycleTheme(step)
		case 1:
			d.cycleLanguage(step)
		default:
			d.cfg.MouseEnable = !d.cfg.MouseEnable
		}
		d.save()
		return ctrl.Refresh()

	case menu.ActionInput:
		d.nick = action.Text
		return ctrl.Refresh()
	}
	return nil
}

func (d *demo) openFile(ctrl *menu.Controller, entry layout.Entry) error {
	switch entry.Type {
	case constants.FileTypeParentDirectory:
		d.dir = filepath.Dir(d.dir)
	case constants.FileTypeDirectory:
		d.dir = filepath.Join(d.dir, entry.Label)
	default:
		ctrl.ShowMessage(filepath.Join(d.dir, entry.Label))
		return nil
	}

	if err := ctrl.Refresh(); err != nil {
		ctrl.ShowMessage(err.Error())
	}
	return nil
}

func (d *demo) switchValue(on bool) string {
	if on {
		return d.loc.Label(labels.ValueOn)
	}
	return d.loc.Label(labels.ValueOff)
}

func (d *demo) cycleTheme(step int) {
	names := theme.Names()
	i := slices.Index(names, d.cfg.ColorTheme)
	d.cfg.ColorTheme = names[(i+step+len(names))%len(names)]

	t, err := d.cfg.Theme()
	if err != nil {
		d.logger.Error("Unable to load theme", "theme", d.cfg.ColorTheme, "error", err)
		return
	}
	d.rend.SetTheme(t)
}

func (d *demo) cycleLanguage(step int) {
	var tags []string
	for _, tag := range d.loc.Languages() {
		tags = append(tags, tag.String())
	}
	if len(tags) == 0 {
		return
	}
	i := slices.Index(tags, d.cfg.Language)
	d.cfg.Language = tags[(i+step+len(tags))%len(tags)]

	loc, err := labels.NewLocalizer(d.cfg.Language, d.logger)
	if err != nil {
		d.logger.Error("Unable to switch language", "language", d.cfg.Language, "error", err)
		return
	}
	*d.loc = *loc
}

func (d *demo) save() {
	if err := config.Save(d.cfgPath, d.cfg); err != nil && !errors.Is(err, os.ErrPermission) {
		d.logger.Error("Unable to save config", "path", d.cfgPath, "error", err)
	}
}
