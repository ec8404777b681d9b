// Package cli implements the merrymatch terminal client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/app/config"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/app/stores"
	trackerobs "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/adapters/observability"
	trackerapp "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application"
	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	trackerports "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
	platformobservability "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/observability"
)

// ServiceFactory builds the tracker service for one CLI invocation.
type ServiceFactory func(ctx context.Context) (trackerports.Service, func(), error)

// Options configures the root command.
type Options struct {
	Out        io.Writer
	Err        io.Writer
	NewService ServiceFactory
}

type app struct {
	opts    Options
	service trackerports.Service
	cleanup func()
}

// NewRootCommand builds the merrymatch command tree. The returned func
// releases whatever the service factory opened.
func NewRootCommand(opts Options) (*cobra.Command, func()) {
	if opts.NewService == nil {
		opts.NewService = DefaultServiceFactory(opts.Err)
	}
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:           "merrymatch",
		Short:         "Track holiday donations and wishes and match them up",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			service, cleanup, err := a.opts.NewService(cmd.Context())
			if err != nil {
				return err
			}
			a.service, a.cleanup = service, cleanup
			return nil
		},
	}
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", trackerapp.ErrInvalidInput, err)
	})

	root.AddCommand(
		a.newDonationCommand(),
		a.newWishCommand(),
		a.newMatchCommand(),
		a.newStatsCommand(),
		a.newSyncCommand(),
	)
	return root, a.close
}

func (a *app) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

// DefaultServiceFactory loads configuration, picks the record stores and
// loads the registry. Logs go to logOut so stdout stays clean for reports.
func DefaultServiceFactory(logOut io.Writer) ServiceFactory {
	return func(ctx context.Context) (trackerports.Service, func(), error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, err
		}
		if logOut == nil {
			logOut = io.Discard
		}
		logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: platformobservability.ParseLevel(cfg.LogLevel)}))
		recordStores, cleanup := stores.Build(ctx, cfg.Database, logger)
		service := trackerobs.New(
			trackerapp.NewService(recordStores.Donations, recordStores.Wishes),
			trackerobs.WithLogger(logger),
		)
		if err := service.Reload(ctx); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("load records: %w", err)
		}
		return service, cleanup, nil
	}
}

func (a *app) newMatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "match",
		Short: "Run one matching pass and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.service.RunMatching(cmd.Context())
			if err != nil {
				return err
			}
			for _, line := range result.Report() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func (a *app) newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show record counts and open quantities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := a.service.Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total Donations: %d\n", stats.TotalDonations)
			fmt.Fprintf(out, "Available Items: %d\n", stats.AvailableQuantity)
			fmt.Fprintf(out, "Total Wishes: %d\n", stats.TotalWishes)
			fmt.Fprintf(out, "Pending Items: %d\n", stats.PendingQuantity)
			return nil
		},
	}
}

func (a *app) newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Rewrite the record stores from the loaded registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.service.Sync(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Registry synced.")
			return nil
		},
	}
}

// exitCode maps command errors to process exit codes.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, trackerapp.ErrInvalidInput), errors.Is(err, trackerdomain.ErrInvalidCategory), errors.Is(err, trackerports.ErrNotFound):
		return 2
	default:
		return 1
	}
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context, opts Options, args []string) int {
	cmd, closeFn := NewRootCommand(opts)
	defer closeFn()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return exitCode(err)
}
