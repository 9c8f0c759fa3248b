package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/vitrine/internal/adapter"
	"github.com/mmcdole/vitrine/internal/adapter/source"
	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/service"
	"github.com/mmcdole/vitrine/internal/tui"
	"github.com/mmcdole/vitrine/internal/view"
)

// Version is set at build time via -ldflags
var Version = "dev"

var errNotTerminal = errors.New("stdout is not a terminal; use the list, gallery, categories or show commands instead")

func main() {
	if err := run(&app{}, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run executes the command line and releases the log file however the
// command ends; cobra skips post-run hooks when RunE fails.
func run(a *app, args []string) error {
	defer a.close()
	root := newRootCmd(a)
	root.SetArgs(args)
	return root.Execute()
}

// app carries what every command needs once configuration is loaded
type app struct {
	configPath string

	cfg    *adapter.Config
	logger *slog.Logger
	closer io.Closer

	collection *service.CollectionService
	viewer     *service.ViewerService
}

func newRootCmd(a *app) *cobra.Command {
	var openPath string

	root := &cobra.Command{
		Use:   "vitrine",
		Short: "Browse the Art Institute of Chicago collection from the terminal",
		Long: "vitrine lists, filters and sorts artworks from the Art Institute of Chicago.\n" +
			"Run without arguments for the interactive browser, or use the sub-commands for plain output.",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(openPath)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default "+defaultConfigPath()+")")
	root.Flags().StringVar(&openPath, "open", "", "start at a route: /gallery, /list or /artwork/{id}")

	root.AddCommand(
		newListCmd(a),
		newGalleryCmd(a),
		newCategoriesCmd(a),
		newShowCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads configuration, opens the log and wires the services
func (a *app) setup() error {
	cfg, err := adapter.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	// Fall back to null logger if file logging fails
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		logger = adapter.NullLogger()
	}
	a.logger = logger
	a.closer = closer
	slog.SetDefault(logger)

	repo, err := source.NewCollectionFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	launcher := adapter.NewLauncher(cfg.Browser.Command, cfg.Browser.Args, logger)
	a.collection = service.NewCollectionService(repo, logger)
	a.viewer = service.NewViewerService(launcher, cfg.API.ImageBaseURL, logger)
	return nil
}

func (a *app) close() {
	if a.closer != nil {
		a.closer.Close()
		a.closer = nil
	}
}

func (a *app) collator() (*view.Collator, error) {
	coll, err := view.NewCollator(a.cfg.UI.Language)
	if err != nil {
		return nil, fmt.Errorf("invalid ui.language: %w", err)
	}
	return coll, nil
}

func (a *app) runTUI(openPath string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	if openPath == "" {
		openPath = "/" + strings.ToLower(a.cfg.UI.DefaultView)
	}
	route, err := tui.ParseRoute(openPath)
	if err != nil {
		return err
	}

	coll, err := a.collator()
	if err != nil {
		return err
	}

	a.logger.Info("starting vitrine", "version", Version, "route", route.Path())

	model := tui.NewModel(a.collection, a.viewer, tui.Options{
		Collator:       coll,
		RequestTimeout: a.cfg.API.Timeout,
		GalleryColumns: a.cfg.UI.GalleryColumns,
		InitialRoute:   route,
		Logger:         a.logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}

// loadCollection fetches the collection for the plain commands
func (a *app) loadCollection(cmd *cobra.Command) ([]domain.ArtworkSummary, error) {
	ctx := cmd.Context()
	items, err := a.collection.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s (%w)", tui.CollectionErrorText, err)
	}
	return items, nil
}
