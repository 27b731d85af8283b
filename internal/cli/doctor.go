package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

const healthTimeout = 5 * time.Second

func (a *App) doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and backend reachability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			source := a.configPath
			if _, err := os.Stat(a.configPath); os.IsNotExist(err) {
				source += " (not found, using defaults)"
			}
			timeout, _ := a.cfg.RequestTimeout()
			fmt.Fprintf(out, "config     %s\n", source)
			fmt.Fprintf(out, "endpoint   %s\n", a.cfg.Service.Endpoint)
			fmt.Fprintf(out, "timeout    %s\n", timeout)
			fmt.Fprintf(out, "log file   %s\n", a.cfg.Logging.File)
			fmt.Fprintf(out, "pdf limit  %s\n", pdfSizeLimit())

			ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
			defer cancel()
			started := time.Now()
			if err := a.client().Health(ctx); err != nil {
				a.log.Error().Err(err).Msg("health check failed")
				fmt.Fprintln(out, colorError.Sprintf("✗ backend unreachable: %v", err))
				return ErrReported
			}
			fmt.Fprintln(out, colorSuccess.Sprintf("✓ backend healthy (%s)", time.Since(started).Round(time.Millisecond)))
			return nil
		},
	}
}

func (a *App) configCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, file and environment are merged.

Use --write to create the config file with these values if it does not exist.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if write {
				if _, err := os.Stat(a.configPath); err == nil {
					return fmt.Errorf("%s already exists", a.configPath)
				}
				if err := a.cfg.SaveTo(a.configPath); err != nil {
					return err
				}
				fmt.Fprintf(out, "Created %s\n\n", a.configPath)
			}
			data, err := toml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "write the config file if missing")
	return cmd
}
