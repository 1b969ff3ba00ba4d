// Package cli implements the trackpad command-line client. Each invocation
// loads the stored lists, runs one command against the model and saves.
//
// A one-shot process keeps no filter between runs, so indexes always refer
// to the full lists as printed by "list". find prints those same indexes.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkordes/trackpad/internal/config"
	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/model"
	"github.com/pkordes/trackpad/internal/repo"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), domain.UserMessage(err))
		os.Exit(1)
	}
}

// options are the persistent flags shared by every subcommand.
type options struct {
	prefsPath string
	debug     bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "trackpad",
		Short:         "Plan attractions and day-by-day itineraries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.prefsPath, "prefs", "", "preferences file (default $PREFS_PATH or preferences.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log debug output to stderr")

	cmd.AddCommand(attractionCmd(opts))
	cmd.AddCommand(itineraryCmd(opts))
	return cmd
}

// session is one loaded model plus the stores it came from.
type session struct {
	model     *model.Model
	stores    repo.Stores
	prefsFile *repo.PrefsFile
	cmd       *cobra.Command
	out       io.Writer
	log       *slog.Logger
}

// openSession loads configuration, preferences and both lists. Unlike the
// server it refuses to start from unreadable data, since the next save
// would overwrite it.
func openSession(ctx context.Context, cmd *cobra.Command, opts *options) (*session, error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return nil, err
	}
	level := slog.LevelWarn
	if opts.debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	prefsPath := cfg.PrefsPath
	if opts.prefsPath != "" {
		prefsPath = opts.prefsPath
	}
	prefsFile := repo.NewPrefsFile(prefsPath)
	prefs, err := prefsFile.Load()
	if err != nil {
		return nil, err
	}

	var stores repo.Stores
	if cfg.DatabaseURL != "" {
		if stores, err = repo.OpenPostgres(ctx, cfg.DatabaseURL, log); err != nil {
			return nil, err
		}
	} else {
		stores = repo.OpenFiles(prefs)
	}

	as, its, err := stores.Load(ctx)
	if err != nil {
		stores.Close()
		return nil, err
	}
	m, err := model.New(as, its, prefs, log)
	if err != nil {
		stores.Close()
		return nil, err
	}
	return &session{model: m, stores: stores, prefsFile: prefsFile, cmd: cmd, out: cmd.OutOrStdout(), log: log}, nil
}

// save writes both lists and the preferences.
func (s *session) save(ctx context.Context) error {
	if err := s.stores.Save(ctx, s.model.Attractions(), s.model.Itineraries()); err != nil {
		return err
	}
	return s.prefsFile.Save(s.model.Prefs())
}

func (s *session) close() { s.stores.Close() }

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// withSession opens a session, runs fn and, when mutate is set, saves.
func withSession(opts *options, mutate bool, fn func(ctx context.Context, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		s, err := openSession(ctx, cmd, opts)
		if err != nil {
			return err
		}
		defer s.close()

		if err := fn(ctx, s, args); err != nil {
			return err
		}
		if mutate {
			return s.save(ctx)
		}
		return nil
	}
}
