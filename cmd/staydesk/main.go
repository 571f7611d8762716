package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/staydesk/internal/api"
	"github.com/jask/staydesk/internal/config"
	"github.com/jask/staydesk/internal/logging"
	"github.com/jask/staydesk/internal/tui"
)

// cli carries state shared by every command once PersistentPreRunE has run.
type cli struct {
	configPath string
	cfg        config.Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "staydesk",
		Short: "Search and book hotel stays from the terminal",
		Long: `staydesk is a terminal front end for the hotel booking API.

Run without arguments to open the interactive booking screens.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			c.cfg, c.log = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $STAYDESK_CONFIG or ~/.config/staydesk/config.toml)")

	root.AddCommand(newSearchCmd(c))
	root.AddCommand(newCalendarCmd(c))
	return root
}

func (c *cli) client() *api.Client {
	return api.New(c.cfg.API.BaseURL,
		api.WithTimeout(c.cfg.API.Timeout),
		api.WithLogger(c.log.Named("api")),
	)
}

func (c *cli) runTUI(ctx context.Context) error {
	c.log.Info("starting", zap.String("api", c.cfg.API.BaseURL))
	model := tui.New(ctx, c.cfg, c.client(), c.log.Named("tui"))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
