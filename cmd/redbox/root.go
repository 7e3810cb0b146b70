// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/red-box/internal/client"
	"github.com/MKhiriev/red-box/internal/config"
)

// NewRootCmd creates the redbox command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "redbox",
		Short: "Red Box, a biometric secure vault",
		Long: "Red Box keeps files encrypted in a local vault and releases them only after\n" +
			"face and voice verification. Two failed verifications of a retrieve or\n" +
			"delete permanently destroy the targeted entry.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newOpenCmd(),
		newEnrollCmd(),
		newAddCmd(),
		newListCmd(),
		newRetrieveCmd(),
		newDeleteCmd(),
		newAuditCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// runFunc is the body of a vault command.
type runFunc func(ctx context.Context, app *client.App, s *client.Session) error

// withVault loads the configuration from the command's flags, opens the
// vault and runs fn with a fresh locked session. SIGINT and SIGTERM cancel
// the context, which aborts any capture in progress.
func withVault(cmd *cobra.Command, opts client.Options, fn runFunc) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.In == nil {
		opts.In = cmd.InOrStdin()
	}
	if opts.Out == nil {
		opts.Out = cmd.OutOrStdout()
	}

	app, err := client.NewApp(ctx, cfg, opts)
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(ctx, app, app.Session())
}
