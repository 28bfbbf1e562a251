package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/akyairhashvil/persimmon/internal/config"
	"github.com/akyairhashvil/persimmon/internal/durations"
	"github.com/akyairhashvil/persimmon/internal/scene"
	"github.com/akyairhashvil/persimmon/internal/tui"
	"github.com/akyairhashvil/persimmon/internal/util"
	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const description = "A persimmon that opens and slowly closes while your pomodoro runs."

// CLI is the command line. Empty flags fall back to settings.json, then to
// built-in defaults.
type CLI struct {
	Version    kong.VersionFlag `help:"Show version information"`
	Durations  string           `help:"Comma-separated minutes for the duration buttons (e.g. '5, 15, 30')" short:"D"`
	Task       string           `help:"Initial task label" short:"t"`
	Model      string           `help:"Path to a .gltf or .glb model whose first two scene nodes are the top and bottom" type:"path" short:"m"`
	Theme      string           `help:"Color theme (default, dracula, mono)"`
	FPS        int              `help:"Animation frames per second" name:"fps"`
	TitleLabel string           `help:"Label shown after the countdown in the window title"`
	Debug      bool             `help:"Enable debug logging to file" short:"d"`
	LogFile    string           `help:"Custom path for the debug log file" type:"path"`
}

// Validate rejects flag values before any terminal state is touched.
func (c *CLI) Validate() error {
	if c.Theme != "" && !slices.Contains(tui.ThemeNames, c.Theme) {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, tui.ThemeNames)
	}
	if c.FPS < 0 || c.FPS > config.MaxFPS {
		return fmt.Errorf("fps must be between 1 and %d", config.MaxFPS)
	}
	if c.Model != "" && !scene.IsAssetPath(c.Model) {
		return fmt.Errorf("model %q is not a .gltf or .glb file", c.Model)
	}
	return nil
}

// applySettings fills flags left empty from the settings file.
func (c *CLI) applySettings(s *config.Settings) {
	if s == nil {
		return
	}
	if c.Durations == "" {
		c.Durations = string(s.Durations)
	}
	if c.Task == "" {
		c.Task = s.Task
	}
	if c.Model == "" {
		c.Model = s.ModelPath
	}
	if c.Theme == "" {
		c.Theme = s.Theme
	}
	if c.FPS == 0 {
		c.FPS = s.FPSOr(0)
	}
	if c.TitleLabel == "" {
		c.TitleLabel = s.TitleLabel
	}
	if !c.Debug {
		c.Debug = s.DebugEnabled()
	}
	if c.LogFile == "" {
		c.LogFile = s.LogFile
	}
}

// options builds the model options. Durations that parse to nothing are an
// error here rather than a silent fallback.
func (c *CLI) options() (tui.Options, error) {
	store := durations.NewStore()
	if c.Durations != "" && !store.Apply(c.Durations) {
		return tui.Options{}, fmt.Errorf("no valid durations in %q", c.Durations)
	}
	return tui.Options{
		Durations:  store,
		Task:       c.Task,
		ModelPath:  c.Model,
		Theme:      c.Theme,
		TitleLabel: c.TitleLabel,
		FPS:        c.FPS,
	}, nil
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name(config.AppName),
		kong.Description(description),
		kong.Vars{"version": tui.VersionLabel()},
		kong.UsageOnError(),
	)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	util.MustSucceed("build command line", err)
	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	settingsPath := filepath.Join(util.ConfigDir(config.AppName), config.SettingsFileName)
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}
	cli.applySettings(settings)
	parser.FatalIfErrorf(cli.Validate())

	closer, err := util.InitLogging(config.AppName, cli.Debug, cli.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	opts, err := cli.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: persimmon needs an interactive terminal")
		os.Exit(1)
	}

	util.Logger.Info("starting", "version", tui.VersionLabel(), "durations", opts.Durations.Options(), "model", opts.ModelPath)
	p := tea.NewProgram(tui.NewMainModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		util.LogError("program exited", err)
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
