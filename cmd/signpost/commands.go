package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/signpost/internal/app"
	"github.com/MKhiriev/signpost/internal/coordinator"
	"github.com/MKhiriev/signpost/internal/utils"
	"github.com/spf13/cobra"
)

func newGetCmd(c *cli) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print an announcement",
		Long: `Fetch the announcement stored under key and print its content, followed by
when it was created and when it expires. An announcement with empty content
prints nothing.

A missing key and a wrong secret are reported the same way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.open(cmd, false)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx := cmd.Context()
			client.Startup(ctx)

			coord := client.Coordinator()
			coord.Switch(coordinator.View)
			coord.ViewForm().Key = args[0]

			panel := coord.SubmitView(ctx)
			if panel.Err != nil {
				return panel.Err
			}
			printRecord(cmd.OutOrStdout(), panel, raw)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the content only")

	return cmd
}

func printRecord(w io.Writer, panel coordinator.ViewPanel, raw bool) {
	r := panel.Record
	if r == nil || r.Content == "" {
		return
	}

	fmt.Fprintln(w, r.Content)
	if raw {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Created: %s\n", utils.DescribeTimestamp(r.CreatedAt, "-"))
	fmt.Fprintf(w, "Expires: %s\n", utils.DescribeTimestamp(r.ExpiresAt, "never"))
	if r.Public != nil {
		fmt.Fprintf(w, "Public:  %s\n", utils.DescribePublic(r.Public, "-"))
	}
}

func newSetCmd(c *cli) *cobra.Command {
	var (
		expires string
		secret  string
		private bool
	)

	cmd := &cobra.Command{
		Use:   "set <key> [content]",
		Short: "Create or replace an announcement",
		Long: `Store content under key, replacing any previous announcement with that key.

--expires takes a local date-time (2026-10-20T18:00) or RFC 3339; without it
the announcement never expires. --secret overrides the saved secret for this
request.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.open(cmd, false)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx := cmd.Context()
			client.Startup(ctx)

			coord := client.Coordinator()
			coord.Switch(coordinator.AddModify)
			form := coord.SetForm()
			form.Key = args[0]
			if len(args) == 2 {
				form.Content = args[1]
			}
			form.Expiry = expires
			form.Secret = secret
			form.Public = !private

			panel := coord.SubmitSet(ctx)
			if !panel.Success {
				return errors.New(panel.Message)
			}
			fmt.Fprintln(cmd.OutOrStdout(), panel.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&expires, "expires", "", "Expiry date-time, empty for never")
	cmd.Flags().StringVar(&secret, "secret", "", "Secret for this request")
	cmd.Flags().BoolVar(&private, "private", false, "Require the secret to read the announcement")

	return cmd
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete an announcement",
		Long:  "Delete the announcement stored under key, authorized with the saved secret.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.open(cmd, false)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx := cmd.Context()
			client.Startup(ctx)

			coord := client.Coordinator()
			coord.Switch(coordinator.Delete)
			coord.DeleteForm().Key = args[0]

			panel := coord.SubmitDelete(ctx)
			if !panel.Confirmed {
				return errors.New(panel.Message)
			}
			fmt.Fprintln(cmd.OutOrStdout(), panel.Message)
			return nil
		},
	}
}

func newSecretCmd(c *cli) *cobra.Command {
	secretCmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage the saved secret",
	}

	secretCmd.AddCommand(&cobra.Command{
		Use:   "save <secret>",
		Short: "Save the secret used by later commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.open(cmd, false)
			if err != nil {
				return err
			}
			defer client.Close()

			if err = client.Services().CredentialService.Save(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s: %w", app.MsgSecretNotSaved, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.MsgSecretSaved)
			return nil
		},
	})

	return secretCmd
}

func newPolicyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print whether the instance is public or private",
		Long:  "Print the instance policy. An unreachable service is reported as public.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.open(cmd, false)
			if err != nil {
				return err
			}
			defer client.Close()

			startup := client.Startup(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), startup.Policy.String())
			return nil
		},
	}
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Build version: %s\n", c.buildInfo.BuildVersion())
			fmt.Fprintf(w, "Build date: %s\n", c.buildInfo.BuildDate())
			fmt.Fprintf(w, "Build commit: %s\n", c.buildInfo.BuildCommit())
		},
	}
}
