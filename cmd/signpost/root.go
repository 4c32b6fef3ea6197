package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/signpost/internal/client"
	"github.com/MKhiriev/signpost/internal/config"
	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/models"
	"github.com/spf13/cobra"
)

type cli struct {
	buildInfo models.AppBuildInfo
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	c := &cli{buildInfo: buildInfo}

	root := &cobra.Command{
		Use:   "signpost",
		Short: "Manage short-lived announcements on a Signpost service",
		Long: `signpost reads, sets and deletes key-addressed announcements stored on a
Signpost service. Without a subcommand it starts the interactive TUI.

Configuration is read from the environment (ADAPTER_ADDRESS, STORAGE_DB_DSN,
APP_STORE_KEY, ...), then the flags below, with an optional JSON file (-c).`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         c.runTUI,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newTUICmd(c),
		newGetCmd(c),
		newSetCmd(c),
		newDeleteCmd(c),
		newSecretCmd(c),
		newPolicyCmd(c),
		newVersionCmd(c),
	)

	return root
}

func newTUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE:  c.runTUI,
	}
}

func (c *cli) runTUI(cmd *cobra.Command, _ []string) error {
	app, err := c.open(cmd, true)
	if err != nil {
		return err
	}
	return run(cmd.Context(), app)
}

func run(ctx context.Context, c client.Client) error {
	defer c.Close()
	return c.Run(ctx)
}

// open loads the configuration from cmd's flags and builds the client. The
// interactive client logs to a file so the terminal stays usable.
func (c *cli) open(cmd *cobra.Command, interactive bool) (*client.App, error) {
	cfg, err := config.GetClientConfig(config.FlagsConfig(cmd.Flags()))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var log *logger.Logger
	if interactive {
		log = logger.NewClientLogger("tui", cfg.App.LogFile)
	} else {
		log = logger.NewLogger("cli")
	}
	logger.SetLevel(cfg.App.LogLevel)

	app, err := client.NewApp(cmd.Context(), cfg, c.buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("init client: %w", err)
	}
	return app, nil
}
