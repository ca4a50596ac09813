package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/encore/internal/finder"
	"github.com/desertthunder/encore/internal/formatter"
	"github.com/desertthunder/encore/internal/repositories"
	"github.com/desertthunder/encore/internal/shared"
	"github.com/desertthunder/encore/internal/tasks"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	clock      shared.Clock
	store      repositories.KVStore
	ownsStore  bool
	tracker    *tasks.Tracker
	jsonOut    bool
	seed       int64
}

// RunnerOpts contains configuration options for creating a Runner.
//
// Store overrides the configured database; the runner never closes a store it was given.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
	Clock      shared.Clock
	Store      repositories.KVStore
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Clock == nil {
		opts.Clock = shared.SystemClock{}
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		clock:      opts.Clock,
		store:      opts.Store,
		seed:       opts.Config.Finder.Seed,
	}
}

// SetLogger replaces the runner's logger, e.g. with a file logger while a TUI owns the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, catalogCommand, finderCommand, repertoireCommand, practiceCommand,
		auditionCommand, favoritesCommand, settingsCommand, calendarCommand, backupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// app builds the root command.
func (r *Runner) app() *cli.Command {
	return &cli.Command{
		Name:    "encore",
		Usage:   "Track your musical theatre repertoire, practice and auditions",
		Version: "0.1.0",
		Writer:  r.output,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.BoolFlag{
				Name:  "memory",
				Usage: "Use a throwaway in-memory store",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Song Finder shuffle seed (0 reshuffles every run)",
			},
		},
		Before:   r.before,
		After:    r.after,
		Commands: r.register(),
	}
}

// before loads the config file and applies the global flags.
func (r *Runner) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if path := cmd.String("config"); path != "" {
		r.configPath = path
		if _, err := os.Stat(path); err == nil {
			config, err := shared.LoadConfig(path)
			if err != nil {
				return ctx, err
			}
			r.config = config
			r.seed = config.Finder.Seed
		}
	}

	if cmd.Bool("memory") {
		r.config.Database.Driver = shared.DriverMemory
	}
	if cmd.IsSet("seed") {
		r.seed = cmd.Int64("seed")
	}
	r.jsonOut = cmd.Bool("json")

	level, err := shared.ParseLogLevel(r.config.Log.Level)
	if err != nil {
		return ctx, err
	}
	if cmd.Bool("verbose") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)

	return ctx, nil
}

// after closes the store opened for this invocation.
func (r *Runner) after(ctx context.Context, cmd *cli.Command) error {
	r.tracker = nil
	if !r.ownsStore || r.store == nil {
		return nil
	}
	err := r.store.Close()
	r.store, r.ownsStore = nil, false
	return err
}

// openTracker opens the configured store and loads the tracker on first use.
func (r *Runner) openTracker(ctx context.Context) (*tasks.Tracker, error) {
	if r.tracker != nil {
		return r.tracker, nil
	}

	if r.store == nil {
		store, err := repositories.NewStore(r.config.Database, r.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s store: %w", r.config.Database.Driver, err)
		}
		r.store, r.ownsStore = store, true
	}

	tracker, err := tasks.NewTracker(ctx, tasks.TrackerOpts{
		Store:            r.store,
		Clock:            r.clock,
		Jitter:           finder.NewJitter(r.seed),
		Logger:           r.logger,
		MinSessionLength: time.Duration(r.config.Practice.MinSeconds) * time.Second,
	})
	if err != nil {
		return nil, err
	}
	r.tracker = tracker
	return tracker, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := formatter.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	out := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	out := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// colorize reports whether output is a terminal.
func (r *Runner) colorize() bool {
	file, ok := r.output.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// paint wraps s in colors when writing to a terminal.
func (r *Runner) paint(s string, colors ...text.Color) string {
	if !r.colorize() || len(colors) == 0 {
		return s
	}
	return text.Colors(colors).Sprint(s)
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// writeTable renders rows as a rounded table.
func (r *Runner) writeTable(headers []string, rows [][]string, aligns []columnAlignment) error {
	columns := len(headers)
	if columns == 0 {
		return nil
	}

	tw := table.NewWriter()
	style := table.StyleRounded
	if r.colorize() {
		style.Color.Header = text.Colors{text.Bold, text.FgHiYellow}
	}
	tw.SetStyle(style)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		tr := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				tr[i] = row[i]
			} else {
				tr[i] = ""
			}
		}
		tw.AppendRow(tr)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return r.writePlain("%s\n", tw.Render())
}
