package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pawlist/internal/catalog"
	"pawlist/internal/config"
	"pawlist/internal/logging"
	"pawlist/internal/mcpserver"
	"pawlist/ui/console"
	"pawlist/ui/tui"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath  string
	logPath     string
	logLevel    string
	noMouse     bool
	noAltScreen bool

	cfg    config.Config
	log    *slog.Logger
	source catalog.Source
}

// NewRootCommand builds the pawlist command tree.
func NewRootCommand() *cobra.Command {
	a := &app{source: catalog.Static{}}

	root := &cobra.Command{
		Use:           "pawlist",
		Short:         "Browse animals available for adoption",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			closeLog, err := a.openLog()
			if err != nil {
				return err
			}
			defer closeLog()
			return tui.Start(a.source, a.cfg, a.log)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "pawlist.toml", "path to a TOML config file")
	flags.StringVar(&a.logPath, "log-file", "", "append the JSON log to this file")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	root.Flags().BoolVar(&a.noMouse, "no-mouse", false, "ignore mouse taps")
	root.Flags().BoolVar(&a.noAltScreen, "no-alt-screen", false, "draw inline instead of in the alternate screen")

	root.AddCommand(
		newListCommand(a),
		newShowCommand(a),
		newMCPCommand(a),
	)
	return root
}

// setup loads the config and layers the command line flags over it. The log
// stays discarded until a long-running command opens the file.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.logPath != "" {
		cfg = cfg.WithLogPath(a.logPath)
	}
	if a.logLevel != "" {
		cfg = cfg.WithLogLevel(a.logLevel)
	}
	if a.noMouse {
		cfg = cfg.WithMouse(false)
	}
	if a.noAltScreen {
		cfg = cfg.WithAltScreen(false)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.Discard()
	return nil
}

// openLog points a.log at the configured file. The returned func closes it.
func (a *app) openLog() (func() error, error) {
	log, f, err := logging.Open(a.cfg.LogPath, a.cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	a.log = log
	return f.Close, nil
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			console.Print(cmd.OutOrStdout(), a.source.Animals())
			return nil
		},
	}
}

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|id>",
		Short: "Print every attribute of one animal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd.OutOrStdout(), a.source, args[0])
		},
	}
}

func show(w io.Writer, src catalog.Source, ref string) error {
	animal, err := catalog.Lookup(src.Animals(), ref)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	console.PrintDetail(w, animal)
	return nil
}

func newMCPCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the catalog as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			closeLog, err := a.openLog()
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := mcpserver.NewServer(mcpserver.Config{
				ServerName:    a.cfg.ServerName,
				ServerVersion: a.cfg.ServerVersion,
			}, a.source, a.log)

			if err := srv.Start(ctx); err != nil && ctx.Err() == nil {
				return fmt.Errorf("mcp server: %w", err)
			}
			return nil
		},
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
