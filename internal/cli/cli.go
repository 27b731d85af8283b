// Package cli wires configuration, logging and the backend client into the
// studypal command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/csheth/studypal/internal/config"
	"github.com/csheth/studypal/internal/logging"
	"github.com/csheth/studypal/internal/studyapi"
	"github.com/csheth/studypal/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// ErrReported means the command already told the user what went wrong.
var ErrReported = errors.New("reported")

// App holds the CLI application state.
type App struct {
	root *cobra.Command

	configPath string
	endpoint   string
	logFile    string
	noAlt      bool
	verbose    bool

	cfg    *config.Config
	log    zerolog.Logger
	closer io.Closer
}

// NewApp creates the command tree.
func NewApp() *App {
	a := &App{log: zerolog.Nop()}

	a.root = &cobra.Command{
		Use:   "studypal",
		Short: "Beginner-friendly explanations and PDF summaries from your StudyPal backend",
		Long: `StudyPal explains any topic in plain language and summarizes PDF notes.

Run without arguments to open the interactive terminal UI. The backend
(FastAPI + Ollama) must be listening on the configured endpoint.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultConfigPath(), "path to the TOML config file")
	flags.StringVar(&a.endpoint, "endpoint", "", "backend origin (overrides config and STUDYPAL_ENDPOINT)")
	flags.StringVar(&a.logFile, "log-file", "", "diagnostic log path (overrides config)")
	flags.BoolVar(&a.noAlt, "no-alt-screen", false, "disable the alternate screen buffer")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging (to stderr for one-shot commands)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.explainCmd())
	a.root.AddCommand(a.summarizeCmd())
	a.root.AddCommand(a.doctorCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "studypal %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close flushes the diagnostic log.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.endpoint != "" {
		cfg.Service.Endpoint = a.endpoint
	}
	if a.logFile != "" {
		cfg.Logging.File = a.logFile
	}
	if a.noAlt {
		cfg.UI.AltScreen = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	level, _ := cfg.LogLevel()
	opts := logging.Options{File: cfg.Logging.File, Level: level, Verbose: a.verbose}
	if a.verbose && cmd != a.root {
		opts.Console = true
		opts.Writer = cmd.ErrOrStderr()
	}
	logger, closer, err := logging.New(opts)
	if err != nil {
		return err
	}
	a.log = logger.With().Str("cmd", cmd.Name()).Logger()
	a.closer = closer
	a.log.Debug().
		Str("config", a.configPath).
		Str("endpoint", cfg.Service.Endpoint).
		Msg("configuration loaded")
	return nil
}

func (a *App) client() *studyapi.Client {
	timeout, _ := a.cfg.RequestTimeout()
	return studyapi.New(studyapi.Config{
		BaseURL: a.cfg.Service.Endpoint,
		Timeout: timeout,
	})
}

func (a *App) runTUI() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("studypal needs an interactive terminal; try `studypal explain <topic>`")
	}
	client := a.client()
	opts := []tea.ProgramOption{}
	if a.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Service:    client,
			Summarizer: client,
			Logger:     a.log,
			Endpoint:   client.BaseURL(),
		}),
		opts...,
	)

	started := time.Now()
	a.log.Info().Msg("tui started")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	a.log.Info().Dur("session", time.Since(started)).Msg("tui exited")
	return nil
}
