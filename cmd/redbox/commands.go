// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/red-box/internal/client"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Verify and start an interactive vault session",
		Long:  "Enrolls face and voice on first use, verifies both factors once and starts\nan interactive shell for adding, listing, retrieving and deleting files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withVault(cmd, client.Options{}, func(ctx context.Context, app *client.App, s *client.Session) error {
				app.Console().Banner()
				if err := s.Open(ctx); err != nil {
					return err
				}
				return s.Shell(ctx)
			})
		},
	}
}

func newEnrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "enroll [face|voice|all]",
		Short:     "Enroll or replace the biometric identity",
		Long:      "Captures and stores the face template and/or the voice sample. Replacing the\nidentity of a fully enrolled vault requires a successful verification first.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(client.FactorFace), string(client.FactorVoice), string(client.FactorAll)},
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			factor, err := client.ParseFactor(arg)
			if err != nil {
				return err
			}

			return withVault(cmd, client.Options{}, func(ctx context.Context, _ *client.App, s *client.Session) error {
				st, err := s.EnrollmentStatus(ctx)
				if err != nil {
					return err
				}
				if st.Complete() {
					if err := s.Open(ctx); err != nil {
						return err
					}
				}
				return s.Enroll(ctx, factor)
			})
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>...",
		Short: "Encrypt files into the vault and delete the originals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withVault(cmd, client.Options{}, func(ctx context.Context, _ *client.App, s *client.Session) error {
				if err := s.Open(ctx); err != nil {
					return err
				}
				for _, path := range args {
					if _, err := s.Add(ctx, path); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the stored entries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withVault(cmd, client.Options{}, func(ctx context.Context, app *client.App, s *client.Session) error {
				if err := s.Open(ctx); err != nil {
					return err
				}
				entries, err := s.List(ctx)
				if err != nil {
					return err
				}
				app.Console().Entries(entries)
				return nil
			})
		},
	}
}

func newRetrieveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retrieve <name>",
		Short: "Verify and decrypt an entry",
		Long: "Verifies face and voice and restores the entry. After the last failed\n" +
			"verification the entry is permanently deleted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, _ := cmd.Flags().GetString("to")
			return withVault(cmd, client.Options{RestoreDir: to}, func(ctx context.Context, _ *client.App, s *client.Session) error {
				_, err := s.Retrieve(ctx, args[0])
				return err
			})
		},
	}

	cmd.Flags().String("to", "", "directory to restore into (default: working directory)")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Verify and delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withVault(cmd, client.Options{}, func(ctx context.Context, _ *client.App, s *client.Session) error {
				return s.Delete(ctx, args[0])
			})
		},
	}
}

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recent verification events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return withVault(cmd, client.Options{}, func(ctx context.Context, app *client.App, s *client.Session) error {
				if err := s.Open(ctx); err != nil {
					return err
				}
				events, err := s.Audit(ctx, limit)
				if err != nil {
					return err
				}
				app.Console().AuditTrail(events)
				return nil
			})
		},
	}

	cmd.Flags().IntP("limit", "n", 0, "number of events to show (default 50)")
	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which biometric factors are enrolled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withVault(cmd, client.Options{}, func(ctx context.Context, app *client.App, s *client.Session) error {
				st, err := s.EnrollmentStatus(ctx)
				if err != nil {
					return err
				}
				app.Console().Status(st)
				return nil
			})
		},
	}
}
